package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chainblast/internal/platform/tui"
)

// runMenu loops between the mode picker, the game and the scoreboard until
// the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	e, err := openEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	rc := runtimeConfig()
	for {
		result, err := tui.RunMenu(e.store, rc)
		if err != nil {
			return err
		}
		rc = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(e.store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case result.GameID != "":
			if err := playOnce(e, result.GameID); err != nil {
				return err
			}
		}
	}
}
