// chainblast is a terminal arcade game: dodge flocks of blocks, then blow
// yourself up to take them with you in a chain reaction.
//
// Usage:
//
//	chainblast               - Pick a mode interactively
//	chainblast play [mode]   - Play a mode directly (default: chainblast)
//	chainblast list          - List available modes
//	chainblast scores [mode] - Show high scores
//	chainblast serve         - Start SSH server for remote play
//	chainblast config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.chainblast/scores.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write debug logs to a file
//	--mute                - Disable audio
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game modes.
	_ "github.com/vovakirdan/chainblast/internal/games/chainblast"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chainblast",
	Short: "Chain Blast - a chain reaction arcade game for your terminal",
	Long: `Chain Blast is a survival arcade game played in the terminal.

Flocks of blocks fly in from the edges of the board. Dodge them, then
blow yourself up: every block caught in the blast explodes too, and
every explosion can catch more. Longer chains score more.

Available commands:
  play     - Play a mode directly
  list     - Show all available modes
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Run without a command to pick a mode from a menu.

Examples:
  chainblast
  chainblast play
  chainblast play chainblast_rush --difficulty hard
  chainblast serve --ssh :2222
  chainblast scores --interactive`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.chainblast/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound and music")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
