package engine

import (
	"testing"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

func TestRecorderRoundTrip(t *testing.T) {
	var r Recorder
	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)

	r.Record(left)
	r.Record(core.NewInputFrame())
	r.Record(fire)

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", r.Len())
	}

	p := NewPlayer(r.Script())
	want := []core.Action{core.ActionLeft, core.ActionNone, core.ActionFire}
	for i, a := range want {
		in, ok := p.Next()
		if !ok {
			t.Fatalf("frame %d missing", i)
		}
		if a != core.ActionNone && !in.Has(a) {
			t.Errorf("frame %d lost %s", i, a)
		}
	}
	if !p.Done() {
		t.Error("player should be exhausted")
	}
	if _, ok := p.Next(); ok {
		t.Error("Next past the end should report false")
	}

	r.Reset()
	if r.Len() != 0 {
		t.Error("Reset should discard frames")
	}
}

func TestReplayFeedsEveryFrame(t *testing.T) {
	g := &countingGame{}
	script := Script{0, 1 << 2, 0, 1 << 2}

	state, ticks := Replay(g, core.DefaultConfig(), script, nil)

	if ticks != 4 || len(g.inputs) != 4 {
		t.Errorf("ran %d ticks, game saw %d, expected 4", ticks, len(g.inputs))
	}
	if state.Score != 20 {
		t.Errorf("score = %d, expected 20", state.Score)
	}
	if g.resets != 1 {
		t.Errorf("replay should reset the game once, got %d", g.resets)
	}
}

func TestReplayStopsEarly(t *testing.T) {
	g := &countingGame{}
	script := make(Script, 100)

	_, ticks := Replay(g, core.DefaultConfig(), script, func(tick int, _ core.StepResult) bool {
		return tick < 10
	})

	if ticks != 10 {
		t.Errorf("ran %d ticks, expected 10", ticks)
	}
}

func TestPlayerPeekDoesNotAdvance(t *testing.T) {
	p := NewPlayer(Script{1 << 2, 0})

	in, ok := p.Peek()
	if !ok || !in.Has(core.ActionFire) {
		t.Fatal("Peek should return the first frame")
	}
	if played, total := p.Progress(); played != 0 || total != 2 {
		t.Errorf("Progress() = %d/%d after Peek, expected 0/2", played, total)
	}

	p.Next()
	p.Next()
	if _, ok := p.Peek(); ok {
		t.Error("Peek past the end should report false")
	}
}
