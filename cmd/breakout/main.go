// breakout is a brick-breaker for the terminal.
//
// Usage:
//
//	breakout play [variant]    - Play a game (resume with --resume)
//	breakout menu              - Pick a difficulty interactively
//	breakout serve             - Start SSH server for remote play
//	breakout scores [variant]  - Show high scores
//	breakout list              - List game variants
//	breakout settings          - Show or change stored settings
//	breakout sim               - Run a headless autopilot game
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--config <path>    - Use a custom breakout.yaml
//	--log-file <path>  - Write logs here (default: ~/.arcade/breakout.log)
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal brick-breaker. Two walls, six rows each,
five balls. The top rows score more and the first hit on them
doubles the ball speed.

Available commands:
  play      - Play a game directly
  menu      - Interactive difficulty picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  list      - Show game variants
  settings  - Show or change stored settings
  sim       - Headless autopilot run

Examples:
  breakout play
  breakout play breakout-hard
  breakout play --resume
  breakout serve --ssh :2222 --qr
  breakout sim --ticks 20000 --difficulty hard`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.arcade/breakout.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(simCmd)
}
