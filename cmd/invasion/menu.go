package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invasion/internal/platform/tui"
)

// runMenu loops between the launcher menu, sessions and the recordings
// browser until the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	store, _ := openStore(false)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, gameID, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuPlay, tui.MenuPlayRecorded:
			res, err := playSession(store, cfg, result.Choice == tui.MenuPlayRecorded)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			} else if res.RecordingID != 0 {
				logger.Info("recording saved", "id", res.RecordingID)
			}

		case tui.MenuRecordings:
			if err := browseRecordings(store, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		default:
			return nil
		}
	}
}
