package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-tennis/internal/engine"
	"github.com/vovakirdan/tui-tennis/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tennis/host_key.
	HostKeyPath string

	// DBPath is the path to the opponent profiles database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Opponent optionally names a stored profile every session plays
	// against. Empty means each session gets a random opponent.
	Opponent string

	// Match parameters for every session.
	BestOf     int
	Tuning     engine.Tuning
	Fatigue    engine.FatigueModel
	SkillRange engine.SkillRange
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.tennis/tennis.db",
		IdleTimeout: 30 * time.Minute,
		BestOf:      3,
		Tuning:      engine.DefaultTuning(),
		Fatigue:     engine.DefaultFatigueModel(),
		SkillRange:  engine.DefaultSkillRange(),
	}
}

// SSHServer wraps a Wish SSH server so matches can be played over SSH.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tennis-ssh",
	})

	if cfg.SkillRange.Max == 0 {
		cfg.SkillRange = engine.DefaultSkillRange()
	}

	// The profile store is optional: without it every session simply gets
	// random opponents.
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open profiles database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tennis", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model, err := NewMatchModel(s.matchFactory(sshSession.User()), pty.Window.Width, pty.Window.Height)
	if err != nil {
		s.logger.Error("cannot start match", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// matchFactory builds the per-session factory. Each match, including
// rematches, draws a fresh seed so no two sessions replay the same points.
func (s *SSHServer) matchFactory(user string) MatchFactory {
	return func() (*engine.Match, engine.Profile, error) {
		seed := time.Now().UnixNano()
		opponent, err := s.opponentProfile(seed)
		if err != nil {
			return nil, engine.Profile{}, err
		}

		player := engine.DefaultPlayerProfile()
		if user != "" {
			player.Name = user
		}

		match, err := engine.NewMatch(player, opponent, engine.MatchConfig{
			BestOf:  s.config.BestOf,
			Seed:    seed,
			Tuning:  s.config.Tuning,
			Fatigue: s.config.Fatigue,
		})
		if err != nil {
			return nil, engine.Profile{}, err
		}
		return match, opponent, nil
	}
}

// opponentProfile returns the configured stored opponent, or a random one.
func (s *SSHServer) opponentProfile(seed int64) (engine.Profile, error) {
	if s.config.Opponent != "" && s.store != nil {
		saved, err := s.store.ProfileByName(s.config.Opponent)
		if err != nil {
			return engine.Profile{}, err
		}
		if saved == nil {
			return engine.Profile{}, fmt.Errorf("no stored opponent named %q", s.config.Opponent)
		}
		return saved.Profile, nil
	}

	rng := rand.New(rand.NewSource(seed))
	return engine.RandomOpponent(rng, engine.OpponentName(rng), s.config.SkillRange), nil
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
