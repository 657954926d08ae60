package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagSetDifficulty string
	flagSetSound      bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change stored settings",
	Long: `Show the stored difficulty and sound settings, or change them.
'play' and 'menu' use these unless overridden by flags. Values never
stored come from breakout.yaml (difficulty, sound).

Examples:
  breakout settings
  breakout settings --difficulty hard
  breakout settings --sound=false`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagSetDifficulty, "difficulty", "", "Default difficulty: easy, normal, hard")
	settingsCmd.Flags().BoolVar(&flagSetSound, "sound", true, "Play sound effects")
}

func runSettings(cmd *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	st, err := store.LoadSettingsOver(fileSettings(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		os.Exit(1)
	}

	changed := false
	if cmd.Flags().Changed("difficulty") {
		d, err := config.ParseDifficulty(flagSetDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		st.Difficulty = d
		changed = true
	}
	if cmd.Flags().Changed("sound") {
		st.Sound = flagSetSound
		changed = true
	}

	if changed {
		if err := store.SaveSettings(st); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("difficulty: %s\n", st.Difficulty)
	fmt.Printf("sound:      %t\n", st.Sound)
}
