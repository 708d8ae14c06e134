package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chainblast/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available game modes",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	width := len("ID")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", width, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", width, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", width, g.ID, g.Title)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'chainblast play <id>' to play a mode.")
}
