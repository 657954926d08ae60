package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagDifficulty string
	flagSound      bool
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing breakout.

The variant is breakout-easy, breakout or breakout-hard. Without one,
--difficulty or the stored setting picks it.

Controls:
  Left/Right, A/D  - Move paddle
  Space/Enter      - Launch
  P/Esc            - Pause
  R/N              - New game (paused or game over)
  B                - Leave (paused or game over)
  Q/Ctrl+C         - Quit (an unfinished game is saved)

Examples:
  breakout play
  breakout play breakout-hard
  breakout play --difficulty easy --sound=false
  breakout play --resume
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard (default: stored setting)")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects (default: stored setting)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the saved game for this variant")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	settings := loadSettings(store, logger)

	difficulty := settings.Difficulty
	if cmd.Flags().Changed("difficulty") {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	}
	gameID := breakout.VariantID(difficulty)
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available variants.")
			os.Exit(1)
		}
	}

	sound := settings.Sound
	if cmd.Flags().Changed("sound") {
		sound = flagSound
	}
	player, closeSound := audio.New(sound, logger)
	defer closeSound()

	var opts []tui.ModelOption
	if flagResume {
		data, err := savedGame(store, gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, tui.WithResume(data))
	}

	if err := playGame(gameID, store, player, logger, runtimeConfig(), opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playGame creates the variant and runs it until the player leaves.
func playGame(gameID string, store *storage.Store, sound core.SoundPlayer, logger *log.Logger, cfg core.RuntimeConfig, opts ...tui.ModelOption) error {
	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Sound:      sound,
		Logger:     logger.With("game", gameID),
	})
	if err != nil {
		return err
	}

	logger.Info("game started", "game", gameID, "resume", len(opts) > 0)
	opts = append(opts, tui.WithLogger(logger))
	return tui.Run(game, store, cfg, opts...)
}

func savedGame(store *storage.Store, gameID string) ([]byte, error) {
	if store == nil {
		return nil, errors.New("no database, nothing to resume")
	}
	saved, err := store.LoadGame(storage.LocalOwner, gameID)
	if errors.Is(err, storage.ErrNoSavedGame) {
		return nil, fmt.Errorf("no saved game for %s", gameID)
	}
	if err != nil {
		return nil, err
	}
	return saved.Snapshot, nil
}
