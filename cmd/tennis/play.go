package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/engine"
	"github.com/vovakirdan/tui-tennis/internal/platform/tui"
	"github.com/vovakirdan/tui-tennis/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBestOf     int
	flagOpponent   string
	flagSave       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match against a computer opponent.

By default the opponent is freshly generated: random per-shot skills,
two strength shots and a playing style. Use --opponent to face a saved
opponent instead, or --save to keep the generated one for a rematch.

Controls:
  Enter/Space - Serve
  1-9         - Pick a rally shot
  N           - New match (after match over)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Weak opponents (skills 0.2-0.5)
  normal - The configured skill range
  hard   - Strong opponents (skills 0.6-0.9)
  pro    - Tour-level opponents (skills 0.75-0.95)

Examples:
  tennis play
  tennis play --difficulty hard
  tennis play --best-of 5 --seed 42
  tennis play --opponent Marat
  tennis play --save
  tennis play --config ./my-tennis.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, pro")
	playCmd.Flags().IntVar(&flagBestOf, "best-of", 0, "Sets to play, 3 or 5 (default from config)")
	playCmd.Flags().StringVar(&flagOpponent, "opponent", "", "Play a saved opponent by name")
	playCmd.Flags().BoolVar(&flagSave, "save", false, "Save the generated opponent for rematches")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	bestOf := cfg.Match.BestOf
	if flagBestOf != 0 {
		bestOf = flagBestOf
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The opponent store is optional; play still works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open opponents database: %v\n", err)
		store = nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opponent, err := pickOpponent(store, cfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}

	if flagSave && flagOpponent == "" && store != nil {
		if _, saveErr := store.SaveProfile(opponent); saveErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save opponent: %v\n", saveErr)
		}
	}

	// Rematches reuse the opponent but reseed, so every match differs.
	matchSeed := seed
	factory := func() (*engine.Match, engine.Profile, error) {
		match, matchErr := engine.NewMatch(engine.DefaultPlayerProfile(), opponent, engine.MatchConfig{
			BestOf:  bestOf,
			Seed:    matchSeed,
			Tuning:  cfg.EngineTuning(),
			Fatigue: cfg.EngineFatigue(),
		})
		matchSeed = time.Now().UnixNano()
		return match, opponent, matchErr
	}

	runErr := tui.RunMatch(factory, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}

// pickOpponent loads the named saved opponent or generates a fresh one.
func pickOpponent(store *storage.Store, cfg config.Config, seed int64) (engine.Profile, error) {
	if flagOpponent != "" {
		if store == nil {
			return engine.Profile{}, fmt.Errorf("opponents database unavailable")
		}
		saved, err := store.ProfileByName(flagOpponent)
		if err != nil {
			return engine.Profile{}, err
		}
		if saved == nil {
			return engine.Profile{}, fmt.Errorf("no saved opponent named %q (run 'tennis profiles')", flagOpponent)
		}
		return saved.Profile, nil
	}

	rng := rand.New(rand.NewSource(seed))
	return engine.RandomOpponent(rng, engine.OpponentName(rng), cfg.OpponentSkillRange()), nil
}
