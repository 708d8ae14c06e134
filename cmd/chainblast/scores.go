package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chainblast/internal/platform/tui"
	"github.com/vovakirdan/chainblast/internal/registry"
	"github.com/vovakirdan/chainblast/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for a mode. Without a mode, show a summary
of every mode.

Examples:
  chainblast scores
  chainblast scores chainblast_rush --limit 20
  chainblast scores chainblast --limit 0     # every recorded game
  chainblast scores --interactive
  chainblast scores chainblast --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown mode %q, run 'chainblast list' to see available modes", gameID)
		}
	}
	if flagClear && gameID == "" {
		return errors.New("--clear needs a mode, e.g. 'chainblast scores chainblast --clear'")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		w, h := 80, 24
		if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			w, h = tw, th
		}
		_, err := tui.RunScoreboard(store, w, h)
		return err
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores for %s.\n", registry.Title(gameID))
		return nil
	}

	if gameID == "" {
		return printSummary(cmd, store)
	}
	return printScores(cmd, store, gameID)
}

func printSummary(cmd *cobra.Command, store *storage.Store) error {
	out := cmd.OutOrStdout()
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-20s  %-6s  %-10s  %-5s  %-8s  %s\n", "Mode", "Games", "Best", "Chain", "Average", "Last played")
	fmt.Fprintf(out, "  %-20s  %-6s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "----", "-----", "-------", "-----------")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			fmt.Fprintf(out, "  %-20s  %-6d  %-10s  %-5s  %-8s  %s\n", g.Title, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-20s  %-6d  %-10d  %-5d  %-8.0f  %s\n",
			g.Title, st.GamesCount, st.HighScore, st.BestChain, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'chainblast scores <mode>' for the full table.")
	return nil
}

func printScores(cmd *cobra.Command, store *storage.Store, gameID string) error {
	out := cmd.OutOrStdout()
	var scores []storage.ScoreEntry
	var err error
	if flagLimit > 0 {
		scores, err = store.TopScores(gameID, flagLimit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", registry.Title(gameID))
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'chainblast play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Chain", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.MaxChain, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d   Best chain: %d   Games: %d\n", stats.HighScore, stats.BestChain, stats.GamesCount)
	return nil
}
