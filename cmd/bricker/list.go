package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MattiBlue123/Bricker-Game/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered game mode.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printModes(cmd.OutOrStdout(), registry.List())
	},
}

func printModes(w io.Writer, modes []registry.GameInfo) {
	if len(modes) == 0 {
		fmt.Fprintln(w, "No game modes available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range modes {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintln(w, "Game modes:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range modes {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bricker --mode <id>' to play a mode.")
}
