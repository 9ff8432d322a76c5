// Package engine paces games against the wall clock and replays recorded input.
package engine

import (
	"time"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/registry"
)

// Driver runs a game at a fixed tick rate from a faster display loop.
// The platform calls Pump on every refresh; Pump steps the game only when a
// tick of real time has passed, so the simulation speed does not depend on
// how often the display refreshes.
type Driver struct {
	game  registry.Game
	clock *core.TickClock
	steps uint64
}

// NewDriver creates a driver for an already reset game.
func NewDriver(game registry.Game, tickRate int, now time.Time) *Driver {
	return &Driver{
		game:  game,
		clock: core.NewTickClock(tickRate, now),
	}
}

// Pump steps the game once if a tick is due. It never runs more than one
// step per call; after a long stall the simulation slows down rather than
// jumping ahead.
func (d *Driver) Pump(now time.Time, in core.InputFrame) (core.StepResult, bool) {
	if !d.clock.Advance(now) {
		return core.StepResult{}, false
	}
	d.steps++
	return d.game.Step(in), true
}

// Restart resets the game and the clock together.
func (d *Driver) Restart(cfg core.RuntimeConfig, now time.Time) {
	d.game.Reset(cfg)
	d.clock.Reset(now)
	d.steps = 0
}

// Steps returns the number of steps taken since the driver was created or restarted.
func (d *Driver) Steps() uint64 {
	return d.steps
}

// Interval is the fixed duration of one tick.
func (d *Driver) Interval() time.Duration {
	return d.clock.Tick()
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game {
	return d.game
}
