package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/platform/tui"
	"github.com/vovakirdan/tui-invasion/internal/registry"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

var (
	flagRecord bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Invasion",
	Long: `Start a session directly, skipping the launcher menu.

Controls:
  Left/A, Right/D  - Steer
  Space/W          - Fire
  Enter            - Start from the title screen
  P/Esc            - Pause
  F3/` + "`" + `             - Debug overlay
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

With --record the session's inputs are saved on quit and can be replayed
with 'invasion replay <id>'.

Examples:
  invasion play
  invasion play --record
  invasion play --seed 42
  invasion play --config ./my-invasion.yaml`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session for replay")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with the recording (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	var store *storage.Store
	if flagRecord {
		s, err := openStore(true)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	res, err := playSession(store, runtimeConfig(), flagRecord)
	if err != nil {
		return err
	}
	printSummary(res)
	return nil
}

// playSession runs one interactive session of the game.
func playSession(store *storage.Store, cfg core.RuntimeConfig, record bool) (tui.Result, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return tui.Result{}, err
	}

	player := flagPlayer
	if player == "" {
		player = localPlayer()
	}

	res, err := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		Record: record,
		Player: player,
	})
	if err != nil {
		return res, fmt.Errorf("error running game: %w", err)
	}
	return res, nil
}

func printSummary(res tui.Result) {
	fmt.Printf("Best score: %d\n", res.BestScore)
	if res.RecordingID != 0 {
		fmt.Printf("Saved recording #%d (%d ticks). Replay with: invasion replay %d\n",
			res.RecordingID, res.Ticks, res.RecordingID)
	}
}
