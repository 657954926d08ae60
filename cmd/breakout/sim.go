package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagSimTicks      int
	flagSimDifficulty string
	flagSimRender     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autopilot",
	Long: `Run the simulation without a terminal UI. The autopilot launches
the ball and keeps the paddle under it. Prints the final score, state
and snapshot hash; the same flags always print the same hash.

Examples:
  breakout sim
  breakout sim --ticks 20000 --difficulty hard
  breakout sim --render`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Maximum ticks to simulate")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "normal", "Difficulty: easy, normal, hard")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
}

func runSim(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	d, err := config.ParseDifficulty(flagSimDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := breakout.New(d, registry.Options{ConfigPath: flagConfig, Logger: logger})
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	game.Reset(cfg)

	w := game.World()
	for game.Tick() < uint64(flagSimTicks) && !w.IsEnd() {
		game.Step(game.Autopilot())
	}

	snap := game.Snapshot()
	state := game.State()
	fmt.Printf("variant: %s\n", game.ID())
	fmt.Printf("ticks:   %d\n", game.Tick())
	fmt.Printf("state:   %s\n", w.State())
	fmt.Printf("score:   %d\n", state.Score)
	fmt.Printf("round:   %d\n", state.Round)
	fmt.Printf("balls:   %d\n", state.Lives)
	fmt.Printf("bricks:  %d\n", w.WallLen())
	fmt.Printf("hash:    %016x\n", snap.Hash())

	if flagSimRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println(screen.String())
	}
}
