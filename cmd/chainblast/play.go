package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chainblast/internal/games/chainblast"
	"github.com/vovakirdan/chainblast/internal/platform/tui"
	"github.com/vovakirdan/chainblast/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode, chainblast by default.

Controls:
  Arrows/WASD - Move
  Space       - Explode
  Any key     - Start / play again
  Esc/Q       - Quit
  Ctrl+S      - Save a screenshot

Modes:
  chainblast       - Classic: 6 lives, difficulty from config
  chainblast_rush  - Difficulty climbs with your score

Difficulty options:
  easy   - Progression from the lowest level, 8 lives
  normal - Progression from 30%
  hard   - Progression from 70%, 4 lives
  fixed  - No progression

Examples:
  chainblast play
  chainblast play chainblast_rush
  chainblast play --difficulty hard --seed 42
  chainblast play --config ./my-chainblast.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := chainblast.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'chainblast list' to see available modes", gameID)
	}

	e, err := openEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	return playOnce(e, gameID)
}

// playOnce runs gameID full screen until the player quits.
func playOnce(e *env, gameID string) error {
	cfg := e.cfg
	deps := registry.Deps{
		Config: &cfg,
		Audio:  e.audio,
		Logger: e.logger,
	}
	session, err := tui.NewSession(gameID, deps, runtimeConfig(), e.store)
	if err != nil {
		return err
	}

	release := time.Duration(cfg.Input.ReleaseAfterMS) * time.Millisecond
	if err := tui.Run(context.Background(), session, release); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
