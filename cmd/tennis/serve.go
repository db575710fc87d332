package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  int
	flagSSHConfig    string
	flagSSHOpponent  string
	flagSSHBestOf    int
	flagSSHDifficult string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tennis SSH server",
	Long: `Start an SSH server that lets users connect and play matches.

Each SSH connection gets its own match against a freshly generated
opponent. Use --opponent to make every session face the same saved
opponent instead.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tennis/host_key

Examples:
  tennis serve                           # Listen on :23234 with auto-generated key
  tennis serve --ssh :2222               # Listen on port 2222
  tennis serve --host-key ./my_host_key  # Use specific host key
  tennis serve --opponent Marat          # Everyone plays Marat

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSSHConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().StringVar(&flagSSHOpponent, "opponent", "", "Saved opponent every session plays")
	serveCmd.Flags().IntVar(&flagSSHBestOf, "best-of", 0, "Sets to play, 3 or 5 (default from config)")
	serveCmd.Flags().StringVar(&flagSSHDifficult, "difficulty", "", "Difficulty preset: easy, normal, hard, pro")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagSSHConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagSSHDifficult != "" {
		preset, presetErr := config.ParsePreset(flagSSHDifficult)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	bestOf := cfg.Match.BestOf
	if flagSSHBestOf != 0 {
		bestOf = flagSSHBestOf
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Opponent:    flagSSHOpponent,
		BestOf:      bestOf,
		Tuning:      cfg.EngineTuning(),
		Fatigue:     cfg.EngineFatigue(),
		SkillRange:  cfg.OpponentSkillRange(),
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting tennis SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
