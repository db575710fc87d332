// tennis is a turn-based tennis simulation played in the terminal.
//
// Usage:
//
//	tennis play              - Play a match against a generated opponent
//	tennis serve             - Start SSH server for remote play
//	tennis profiles          - Browse and manage saved opponents
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.tennis/tennis.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tennis",
	Short: "TUI Tennis - Play simulated tennis matches in your terminal",
	Long: `TUI Tennis is a terminal-based tennis simulation. You pick every
serve and rally shot; the match plays out point by point against a
computer opponent with its own playing style.

Available commands:
  play      - Play a match against a generated or saved opponent
  serve     - Start SSH server for remote play
  profiles  - Browse and manage saved opponents

Examples:
  tennis play
  tennis play --difficulty hard --best-of 5
  tennis play --opponent Marat
  tennis serve --ssh :2222
  tennis profiles`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tennis/tennis.db", "Path to opponents database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(profilesCmd)
}
