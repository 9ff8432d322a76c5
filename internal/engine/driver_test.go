package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// countingGame records every step it receives.
type countingGame struct {
	resets int
	inputs []uint8
	score  int
}

func (g *countingGame) ID() string    { return "counting" }
func (g *countingGame) Title() string { return "Counting" }

func (g *countingGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.inputs = nil
	g.score = 0
}

func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Bits())
	if in.Has(core.ActionFire) {
		g.score += 10
	}
	return core.StepResult{State: g.State()}
}

func (g *countingGame) Render(*core.Screen) {}

func (g *countingGame) State() core.GameState {
	return core.GameState{Score: g.score}
}

func TestDriverStepsOncePerTick(t *testing.T) {
	t0 := time.Unix(100, 0)
	g := &countingGame{}
	d := NewDriver(g, 60, t0)
	tick := d.Interval()

	// Refresh at roughly twice the tick rate for one simulated second.
	now := t0
	for range 120 {
		now = now.Add(tick / 2)
		d.Pump(now, core.NewInputFrame())
	}

	if len(g.inputs) < 55 || len(g.inputs) > 60 {
		t.Errorf("got %d steps in one second, expected about 60", len(g.inputs))
	}
	if d.Steps() != uint64(len(g.inputs)) {
		t.Errorf("Steps() = %d, game saw %d", d.Steps(), len(g.inputs))
	}
}

func TestDriverNeverCatchesUp(t *testing.T) {
	t0 := time.Unix(100, 0)
	g := &countingGame{}
	d := NewDriver(g, 60, t0)

	// A long stall still yields a single step.
	if _, ok := d.Pump(t0.Add(time.Second), core.NewInputFrame()); !ok {
		t.Fatal("expected a step after a stall")
	}
	if _, ok := d.Pump(t0.Add(time.Second), core.NewInputFrame()); ok {
		t.Error("second pump at the same instant should not step")
	}
	if len(g.inputs) != 1 {
		t.Errorf("game stepped %d times, expected 1", len(g.inputs))
	}
}

func TestDriverPassesInputThrough(t *testing.T) {
	t0 := time.Unix(100, 0)
	g := &countingGame{}
	d := NewDriver(g, 60, t0)

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	res, ok := d.Pump(t0.Add(20*time.Millisecond), in)
	if !ok {
		t.Fatal("expected a step")
	}
	if res.State.Score != 10 {
		t.Errorf("score = %d, expected 10", res.State.Score)
	}
}

func TestDriverRestart(t *testing.T) {
	t0 := time.Unix(100, 0)
	g := &countingGame{}
	d := NewDriver(g, 60, t0)
	d.Pump(t0.Add(20*time.Millisecond), core.NewInputFrame())

	t1 := t0.Add(time.Minute)
	d.Restart(core.DefaultConfig(), t1)

	if g.resets != 1 || d.Steps() != 0 {
		t.Errorf("resets=%d steps=%d after restart", g.resets, d.Steps())
	}
	if _, ok := d.Pump(t1.Add(time.Millisecond), core.NewInputFrame()); ok {
		t.Error("restart should discard pending time")
	}
}
