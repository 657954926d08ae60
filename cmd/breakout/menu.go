package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play. A variant with a
saved game continues it; N starts over. After a game you return to
the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play or continue
  N            - New game
  Tab          - High scores
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	settings := loadSettings(store, logger)

	player, closeSound := audio.New(settings.Sound, logger)
	defer closeSound()

	cfg := runtimeConfig()
	preferred := breakout.VariantID(settings.Difficulty)

	for {
		menuResult, err := tui.RunMenu(store, cfg, preferred)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}
		preferred = gameID

		var opts []tui.ModelOption
		if menuResult.Resume {
			if data, err := savedGame(store, gameID); err == nil {
				opts = append(opts, tui.WithResume(data))
			} else {
				logger.Warn("starting a new game", "game", gameID, "err", err)
			}
		}

		if err := playGame(gameID, store, player, logger, cfg, opts...); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
