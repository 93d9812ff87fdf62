package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MattiBlue123/Bricker-Game/internal/platform/tui"
	"github.com/MattiBlue123/Bricker-Game/internal/registry"
	"github.com/MattiBlue123/Bricker-Game/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show past sessions",
	Long: `Browse stored sessions in an interactive table. When a mode is given, or
stdout is not a terminal, the top 10 sessions of that mode are printed instead.

Examples:
  bricker scores
  bricker scores bricker_chaos
  bricker scores bricker --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored sessions of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := flagMode
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'bricker list' to see available modes", mode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(mode); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared sessions of %s.\n", mode)
		return nil
	}

	if len(args) == 0 && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		return tui.RunScoreboard(store, width, height)
	}
	return printScores(cmd.OutOrStdout(), store, mode)
}

func printScores(w io.Writer, store *storage.Store, mode string) error {
	sessions, err := store.TopSessions(mode, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", mode)
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'bricker --mode %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Result", "Grid", "Lives", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "------", "----", "-----", "----")
	for i, s := range sessions {
		grid := fmt.Sprintf("%dx%d", s.Columns, s.Rows)
		fmt.Fprintf(w, "  %-4d  %-6d  %-6s  %-6s  %-5d  %s\n",
			i+1, s.Score, s.Outcome, grid, s.LivesLeft, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(mode); err == nil && stats.Sessions > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  |  Played: %d  |  Won: %d  |  Avg: %.1f\n",
			stats.HighScore, stats.Sessions, stats.Wins, stats.AvgScore)
	}
	return nil
}
