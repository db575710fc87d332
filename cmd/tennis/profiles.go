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

var flagAddDifficulty string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Browse and manage saved opponents",
	Long: `Open an interactive browser over the saved opponent profiles, or
manage them from the command line with the subcommands.

Opponents are saved with 'tennis play --save' or 'tennis profiles add'
and can be faced again with 'tennis play --opponent <name>'.

Browser controls:
  Up/Down  - Scroll
  D/X      - Delete the selected opponent
  Q/Esc    - Quit

Examples:
  tennis profiles
  tennis profiles list
  tennis profiles add Marat --difficulty pro
  tennis profiles show Marat
  tennis profiles delete Marat`,
	Args: cobra.NoArgs,
	Run:  runProfiles,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved opponents",
	Args:  cobra.NoArgs,
	Run:   runProfilesList,
}

var profilesAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Generate and save a new opponent",
	Long: `Generate a random opponent at the given difficulty and save it.
Without a name the opponent is named automatically.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProfilesAdd,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved opponent's scouting report",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesShow,
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved opponent",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesDelete,
}

func init() {
	profilesAddCmd.Flags().StringVar(&flagAddDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, pro")

	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesAddCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}

// openStore opens the opponents database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening opponents database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runProfiles(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunProfiles(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runProfilesList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	profiles, err := store.ListProfiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(profiles) == 0 {
		fmt.Println("No opponents saved yet.")
		return
	}

	for _, sp := range profiles {
		fmt.Printf("%-18s %-14s saved %s\n",
			sp.Profile.Name, sp.Profile.Style, sp.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runProfilesAdd(_ *cobra.Command, args []string) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagAddDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagAddDifficulty)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" {
		name = engine.OpponentName(rng)
	}
	opponent := engine.RandomOpponent(rng, name, cfg.OpponentSkillRange())

	store := openStore()
	defer store.Close()

	if _, err := store.SaveProfile(opponent); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved opponent %q.\n\n", opponent.Name)
	printScoutingReport(opponent)
}

func runProfilesShow(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	saved, err := store.ProfileByName(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if saved == nil {
		fmt.Fprintf(os.Stderr, "No saved opponent named %q.\n", args[0])
		os.Exit(1)
	}

	printScoutingReport(saved.Profile)
}

func runProfilesDelete(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeleteProfile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %q.\n", args[0])
}

// printScoutingReport prints the profile the way a coach would read it.
func printScoutingReport(p engine.Profile) {
	fmt.Printf("%s  (%s)\n", p.Name, p.Style)
	for _, cat := range engine.SkillSummary {
		mark := "  "
		if p.IsStrength(cat.Shot) {
			mark = " *"
		}
		fmt.Printf("  %-10s %-13s%s\n", cat.Label, engine.SkillLabel(p.Skill(cat.Shot)), mark)
	}
	fmt.Println("  (* strength shot)")
}
