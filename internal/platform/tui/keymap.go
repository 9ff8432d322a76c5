package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Debug      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire, k.Confirm},
		{k.Pause, k.Debug, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "steer right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f3", "`"),
			key.WithHelp("f3", "debug"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Debug):
		return core.ActionDebug
	}
	return core.ActionNone
}

// Terminals deliver key presses and auto-repeats but no releases. A steering
// key counts as held for holdInitial after the first press, which covers the
// keyboard's repeat delay, and for holdRepeat after each repeat.
const (
	holdInitial = 550 * time.Millisecond
	holdRepeat  = 120 * time.Millisecond
)

// heldInput turns key presses into per-tick input frames.
// Steering keys are level-triggered through the hold window; every other
// action is edge-triggered and stays pending until a tick consumes it.
type heldInput struct {
	leftUntil  time.Time
	rightUntil time.Time
	lastLeft   time.Time
	lastRight  time.Time
	pending    core.InputFrame
}

func newHeldInput() *heldInput {
	return &heldInput{pending: core.NewInputFrame()}
}

// Press records a key press at now.
func (h *heldInput) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.leftUntil = now.Add(holdFor(h.lastLeft, now))
		h.lastLeft = now
		h.rightUntil = time.Time{}
	case core.ActionRight:
		h.rightUntil = now.Add(holdFor(h.lastRight, now))
		h.lastRight = now
		h.leftUntil = time.Time{}
	case core.ActionNone, core.ActionQuit:
	default:
		h.pending.Set(a)
	}
}

func holdFor(last, now time.Time) time.Duration {
	if !last.IsZero() && now.Sub(last) < holdInitial {
		return holdRepeat
	}
	return holdInitial
}

// Frame builds the input frame for a tick at now without consuming it.
func (h *heldInput) Frame(now time.Time) core.InputFrame {
	frame := h.pending.Clone()
	if now.Before(h.leftUntil) {
		frame.Set(core.ActionLeft)
	}
	if now.Before(h.rightUntil) {
		frame.Set(core.ActionRight)
	}
	return frame
}

// Consume clears the one-shot actions after a tick used them.
func (h *heldInput) Consume() {
	h.pending.Clear()
}

// Release drops every held and pending input.
func (h *heldInput) Release() {
	h.leftUntil = time.Time{}
	h.rightUntil = time.Time{}
	h.pending.Clear()
}
