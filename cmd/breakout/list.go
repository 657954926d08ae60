package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Long:  `Shows every registered variant with its ball speed and paddle width.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-18s  %-5s  %s\n", maxIDLen, "ID", "Title", "Speed", "Paddle")
	fmt.Printf("  %-*s  %-18s  %-5s  %s\n", maxIDLen, "--", "-----", "-----", "------")

	for _, g := range games {
		speed, paddle := "", ""
		for _, d := range config.Difficulties {
			if breakout.VariantID(d) == g.ID {
				speed = fmt.Sprintf("x%.2f", d.BallSpeedRatio())
				paddle = fmt.Sprintf("x%.2f", d.PaddleWidthRatio())
			}
		}
		fmt.Printf("  %-*s  %-18s  %-5s  %s\n", maxIDLen, g.ID, g.Title, speed, paddle)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play <id>' to play a variant.")
}
