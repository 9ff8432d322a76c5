package core

import "time"

// TickClock gates a fixed-timestep simulation against wall-clock time.
//
// Advance is meant to be called once per display refresh. It reports true at
// most once per call, and only when more than one tick of real time has
// elapsed since the last consumed tick. The fractional remainder is carried
// into the next tick so timing drift does not compound.
type TickClock struct {
	tick  time.Duration
	start time.Time
}

// NewTickClock creates a clock that fires at the given rate, starting at now.
// Non-positive rates fall back to 60 ticks per second.
func NewTickClock(tickRate int, now time.Time) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{
		tick:  time.Second / time.Duration(tickRate),
		start: now,
	}
}

// Tick returns the fixed tick duration.
func (c *TickClock) Tick() time.Duration {
	return c.tick
}

// Advance reports whether a simulation step is due at now and, if so,
// consumes exactly one tick's worth of elapsed time.
func (c *TickClock) Advance(now time.Time) bool {
	elapsed := now.Sub(c.start)
	if elapsed <= c.tick {
		return false
	}
	c.start = now.Add(-(elapsed % c.tick))
	return true
}

// Reset restarts the accumulator at now, discarding any pending time.
func (c *TickClock) Reset(now time.Time) {
	c.start = now
}
