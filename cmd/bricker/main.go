// bricker is a terminal brick breaker whose bricks fight back: every brick
// carries a collision strategy that may spawn pucks, an extra paddle, a
// falling heart or a chain explosion.
//
// Usage:
//
//	bricker [columns rows]   - Play (default grid 8x7)
//	bricker list             - List game modes
//	bricker scores [mode]    - Browse past sessions
//	bricker serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bricker/bricker.db)
//	--config <path>       - Custom YAML config
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log <path>          - Write debug logs to a file
//	--mode <id>           - Game mode (default: bricker)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MattiBlue123/Bricker-Game/internal/games/bricker"
	"github.com/MattiBlue123/Bricker-Game/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagMode       string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricker [columns rows]",
	Short: "Bricker - break bricks in your terminal",
	Long: `Bricker is a brick breaker for the terminal. Some bricks are special:
they release pucks, lend you a second paddle, drop a heart, explode into
their neighbors, or do several of those at once.

Controls:
  Left/Right, A/D   - Move the paddle
  P                 - Pause
  R                 - Play again (after win or loss)
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Examples:
  bricker
  bricker 10 5
  bricker --mode bricker_chaos --difficulty hard
  bricker scores
  bricker serve --ssh :2222`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to session database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	flags.StringVar(&flagMode, "mode", bricker.ModeClassic.ID, "Game mode (see 'bricker list')")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
