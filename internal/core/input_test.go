package core

import "testing"

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero InputFrame should report no actions")
	}
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set on a zero InputFrame should work")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionFire)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) || f.Has(ActionFire) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) || !clone.Has(ActionFire) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameBits(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
	}{
		{"empty", nil},
		{"left only", []Action{ActionLeft}},
		{"right and fire", []Action{ActionRight, ActionFire}},
		{"everything recorded", []Action{ActionLeft, ActionRight, ActionFire, ActionConfirm, ActionPause}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			decoded := FrameFromBits(f.Bits())
			for _, a := range tc.actions {
				if !decoded.Has(a) {
					t.Errorf("decoded frame lost %v", a)
				}
			}
			if len(decoded.Actions) != len(tc.actions) {
				t.Errorf("decoded %d actions, expected %d", len(decoded.Actions), len(tc.actions))
			}
		})
	}
}

func TestInputFrameBitsIgnorePlatformActions(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionQuit)
	f.Set(ActionDebug)
	if f.Bits() != 0 {
		t.Errorf("platform-only actions should not be recorded, got %08b", f.Bits())
	}
}
