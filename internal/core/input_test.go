package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("empty frame should not report ActionUp")
	}

	f.Set(ActionUp)
	f.Set(ActionStickDown)

	if !f.Has(ActionUp) || !f.Has(ActionStickDown) {
		t.Error("frame should report actions that were set")
	}
	if f.Has(ActionDown) {
		t.Error("frame should not report actions that were not set")
	}
}

func TestInputFrameClearKeepsDrag(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.SetPointer(40, 12)

	f.Clear()

	if f.Has(ActionLeft) {
		t.Error("Clear should drop per-frame actions")
	}
	// A drag spans many frames; Clear between ticks must not end it
	if !f.Pointer.Dragging {
		t.Error("Clear should not release an active drag")
	}
	if f.Pointer.X != 40 || f.Pointer.Y != 12 {
		t.Errorf("Clear should keep pointer position, got (%d, %d)", f.Pointer.X, f.Pointer.Y)
	}

	f.ReleasePointer()
	if f.Pointer.Dragging {
		t.Error("ReleasePointer should end the drag")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionStickUp)
	f.SetPointer(10, 5)

	c := f.Clone()
	c.Set(ActionDown)

	if f.Has(ActionDown) {
		t.Error("mutating a clone must not affect the original")
	}
	if !c.Has(ActionStickUp) || !c.Pointer.Dragging {
		t.Error("clone should carry actions and pointer state")
	}
}

func TestActionString(t *testing.T) {
	if ActionStickDown.String() != "StickDown" {
		t.Errorf("ActionStickDown.String() = %q", ActionStickDown.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
