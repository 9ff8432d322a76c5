package main

import (
	"testing"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/engine"
	"github.com/vovakirdan/tui-invasion/internal/logging"
	"github.com/vovakirdan/tui-invasion/internal/registry"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

// recordSession plays a short scripted session: start, hold fire, steer.
func recordSession(t *testing.T) *storage.Recording {
	t.Helper()

	game, err := registry.Create(gameID)
	if err != nil {
		t.Fatalf("registry.Create() failed: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99}
	game.Reset(cfg)

	var rec engine.Recorder
	best := 0
	var state core.GameState
	for i := range 900 {
		in := core.NewInputFrame()
		switch {
		case i == 0:
			in.Set(core.ActionConfirm)
		case i%20 == 0:
			in.Set(core.ActionFire)
		case i%300 < 150:
			in.Set(core.ActionLeft)
		default:
			in.Set(core.ActionRight)
		}
		rec.Record(in)
		state = game.Step(in).State
		best = max(best, state.Score)
	}

	return &storage.Recording{
		ID:         1,
		GameID:     gameID,
		Seed:       cfg.Seed,
		TickRate:   cfg.TickRate,
		Ticks:      rec.Len(),
		FinalScore: state.Score,
		BestScore:  best,
		Inputs:     []byte(rec.Script()),
	}
}

func TestVerifyRecording(t *testing.T) {
	logger = logging.Discard()
	rec := recordSession(t)

	if err := verifyRecording(rec); err != nil {
		t.Errorf("faithful replay reported %v", err)
	}

	rec.BestScore += 10
	if err := verifyRecording(rec); err == nil {
		t.Error("a tampered recording should fail verification")
	}
}
