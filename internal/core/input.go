package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer left (held)
	ActionRight          // D, Right arrow - steer right (held)
	ActionFire           // Space, W, Up - fire (edge)
	ActionConfirm        // Enter - leave the title screen (edge)
	ActionPause          // P, Esc - pause/unpause game (edge)
	ActionDebug          // F3, backtick - toggle debug overlay
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// A zero InputFrame is valid and means "no input".
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// recordedActions are the actions that reach the simulation and therefore
// need to survive a record/replay round trip. Bit i encodes recordedActions[i].
var recordedActions = [...]Action{
	ActionLeft,
	ActionRight,
	ActionFire,
	ActionConfirm,
	ActionPause,
}

// Bits packs the simulation-relevant actions of the frame into a bitmask.
func (f InputFrame) Bits() uint8 {
	var b uint8
	for i, a := range recordedActions {
		if f.Has(a) {
			b |= 1 << i
		}
	}
	return b
}

// FrameFromBits is the inverse of InputFrame.Bits.
func FrameFromBits(b uint8) InputFrame {
	frame := NewInputFrame()
	for i, a := range recordedActions {
		if b&(1<<i) != 0 {
			frame.Set(a)
		}
	}
	return frame
}
