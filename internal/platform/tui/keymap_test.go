package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"a steers left", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d steers right", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w fires", runeKey('w'), core.ActionFire},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"backtick toggles debug", runeKey('`'), core.ActionDebug},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestHeldInputSteeringWindow(t *testing.T) {
	t0 := time.Unix(100, 0)
	h := newHeldInput()

	h.Press(core.ActionLeft, t0)
	if !h.Frame(t0.Add(100 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("left should be held right after the press")
	}
	if h.Frame(t0.Add(holdInitial + time.Millisecond)).Has(core.ActionLeft) {
		t.Error("left should release once the initial window passes")
	}

	// An auto-repeat shortens the window to the repeat interval.
	repeat := t0.Add(500 * time.Millisecond)
	h.Press(core.ActionLeft, repeat)
	if !h.Frame(repeat.Add(holdRepeat - time.Millisecond)).Has(core.ActionLeft) {
		t.Error("left should be held within the repeat window")
	}
	if h.Frame(repeat.Add(holdRepeat + time.Millisecond)).Has(core.ActionLeft) {
		t.Error("left should release after the repeat window")
	}
}

func TestHeldInputOppositeCancels(t *testing.T) {
	t0 := time.Unix(100, 0)
	h := newHeldInput()

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	frame := h.Frame(t0.Add(20 * time.Millisecond))
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("expected only right held, got left=%v right=%v",
			frame.Has(core.ActionLeft), frame.Has(core.ActionRight))
	}
}

func TestHeldInputOneShotsWaitForConsume(t *testing.T) {
	t0 := time.Unix(100, 0)
	h := newHeldInput()

	h.Press(core.ActionFire, t0)
	if !h.Frame(t0).Has(core.ActionFire) || !h.Frame(t0.Add(time.Second)).Has(core.ActionFire) {
		t.Fatal("fire should stay pending until a tick consumes it")
	}

	h.Consume()
	if h.Frame(t0).Has(core.ActionFire) {
		t.Error("fire should be cleared after Consume")
	}

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionPause, t0)
	h.Release()
	frame := h.Frame(t0)
	if frame.Has(core.ActionRight) || frame.Has(core.ActionPause) {
		t.Error("Release should drop held and pending input")
	}
}
