package engine

import (
	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/registry"
)

// Script is a recorded input stream, one packed frame per tick.
type Script []uint8

// Recorder accumulates the inputs fed to a game.
type Recorder struct {
	frames Script
}

// Record appends the frame for the current tick.
func (r *Recorder) Record(in core.InputFrame) {
	r.frames = append(r.frames, in.Bits())
}

// Script returns the recorded frames.
func (r *Recorder) Script() Script {
	return r.frames
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Reset discards the recording.
func (r *Recorder) Reset() {
	r.frames = r.frames[:0]
}

// StepFunc observes each replayed step. Returning false stops the replay.
type StepFunc func(tick int, res core.StepResult) bool

// Replay resets game with cfg and feeds it the script as fast as possible.
// It returns the final state and the number of ticks actually run.
func Replay(game registry.Game, cfg core.RuntimeConfig, script Script, fn StepFunc) (core.GameState, int) {
	game.Reset(cfg)
	state := game.State()
	for i, bits := range script {
		res := game.Step(core.FrameFromBits(bits))
		state = res.State
		if fn != nil && !fn(i+1, res) {
			return state, i + 1
		}
	}
	return state, len(script)
}

// Player feeds a script to a game one tick at a time, for paced playback.
type Player struct {
	script Script
	pos    int
}

// NewPlayer creates a playback cursor over script.
func NewPlayer(script Script) *Player {
	return &Player{script: script}
}

// Peek returns the next recorded frame without consuming it.
func (p *Player) Peek() (core.InputFrame, bool) {
	if p.pos >= len(p.script) {
		return core.InputFrame{}, false
	}
	return core.FrameFromBits(p.script[p.pos]), true
}

// Next returns the next recorded frame, or false when the script is exhausted.
func (p *Player) Next() (core.InputFrame, bool) {
	if p.pos >= len(p.script) {
		return core.InputFrame{}, false
	}
	in := core.FrameFromBits(p.script[p.pos])
	p.pos++
	return in, true
}

// Done reports whether every frame has been played.
func (p *Player) Done() bool {
	return p.pos >= len(p.script)
}

// Progress returns the number of frames played and the script length.
func (p *Player) Progress() (int, int) {
	return p.pos, len(p.script)
}
