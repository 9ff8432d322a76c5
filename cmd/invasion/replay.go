package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/engine"
	"github.com/vovakirdan/tui-invasion/internal/platform/tui"
	"github.com/vovakirdan/tui-invasion/internal/registry"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a saved session",
	Long: `Replay a recorded session at its original speed.

With --headless the session is simulated as fast as possible and the
final tick, score and state hash are printed. The command fails if the
replayed score differs from the recorded one, which happens when the
tuning changed since the session was recorded.

Examples:
  invasion replay 12
  invasion replay 12 --headless`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Simulate without a terminal and verify the result")
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recording id %q", args[0])
	}

	store, err := openStore(true)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Recording(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no recording with id %d", id)
	}
	if err := registry.CheckTickRate(rec.GameID, rec.TickRate); err != nil {
		return fmt.Errorf("recording #%d: %w", id, err)
	}

	if flagHeadless {
		return verifyRecording(rec)
	}
	return watchRecording(rec, runtimeConfig())
}

// watchRecording plays a recording back in the terminal.
func watchRecording(rec *storage.Recording, cfg core.RuntimeConfig) error {
	game, err := registry.Create(rec.GameID)
	if err != nil {
		return err
	}

	logger.Info("replaying recording", "id", rec.ID, "ticks", rec.Ticks)
	if _, err := tui.Run(game, cfg, tui.Options{Logger: logger, Playback: rec}); err != nil {
		return fmt.Errorf("error running replay: %w", err)
	}
	return nil
}

// verifyRecording simulates a recording without pacing and checks that it
// reproduces the recorded score.
func verifyRecording(rec *storage.Recording) error {
	game, err := registry.Create(rec.GameID)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:  core.DefaultConfig().ScreenW,
		ScreenH:  core.DefaultConfig().ScreenH,
		TickRate: rec.TickRate,
		Seed:     rec.Seed,
	}

	best := 0
	state, ticks := engine.Replay(game, cfg, engine.Script(rec.Inputs), func(_ int, res core.StepResult) bool {
		best = max(best, res.State.Score)
		return true
	})

	fmt.Printf("Recording #%d: %d ticks, seed %d\n", rec.ID, ticks, rec.Seed)
	fmt.Printf("  score %d (recorded %d), best %d (recorded %d)\n", state.Score, rec.FinalScore, best, rec.BestScore)
	if h, ok := game.(registry.Hasher); ok {
		fmt.Printf("  state hash %016x\n", h.StateHash())
	}

	if state.Score != rec.FinalScore || best != rec.BestScore {
		logger.Warn("replay diverged", "id", rec.ID, "score", state.Score, "recorded", rec.FinalScore)
		return fmt.Errorf("replay diverged from recording #%d", rec.ID)
	}
	fmt.Println("  ok")
	return nil
}
