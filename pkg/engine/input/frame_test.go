package input

import (
	"math"
	"testing"
)

func key(code string) RawInput {
	return RawInput{Device: DeviceKeyboard, Code: code}
}

func TestMapToIntent(t *testing.T) {
	cases := map[string]Action{
		"w":          ActionMoveNorth,
		"arrow_left": ActionMoveWest,
		"shift":      ActionFast,
		"e":          ActionInteract,
		"escape":     ActionQuit,
		"unbound":    ActionNone,
	}
	for code, want := range cases {
		if got := MapToIntent(key(code)).Action; got != want {
			t.Errorf("MapToIntent(%q) = %s, want %s", code, ActionName(got), ActionName(want))
		}
	}
}

func TestFrame_DiagonalIsNormalized(t *testing.T) {
	s := NewState()
	s.Press(key("d"))
	s.Press(key("s"))
	f := s.Frame()
	if l := math.Hypot(f.DX, f.DY); math.Abs(l-1) > 1e-12 {
		t.Errorf("diagonal length = %v, want 1", l)
	}
	if !(f.DX > 0 && f.DY > 0) {
		t.Errorf("frame = %+v, want south-east", f)
	}
}

func TestFrame_OpposingKeysCancel(t *testing.T) {
	s := NewState()
	s.Press(key("a"))
	s.Press(key("d"))
	if f := s.Frame(); f.Moving() {
		t.Errorf("frame = %+v, want no movement", f)
	}
}

func TestFrame_HeldPersistsAndReleases(t *testing.T) {
	s := NewState()
	s.Press(key("arrow_up"))
	s.Press(key("shift"))
	for i := 0; i < 3; i++ {
		f := s.Frame()
		if f.DY != -1 || !f.Fast {
			t.Fatalf("frame %d = %+v, want held north and fast", i, f)
		}
	}
	s.Release(key("arrow_up"))
	if f := s.Frame(); f.Moving() {
		t.Errorf("frame after release = %+v", f)
	}
	s.ReleaseAll()
	if s.Held(ActionFast) {
		t.Error("fast still held after ReleaseAll")
	}
}

func TestFrame_InteractIsConsumed(t *testing.T) {
	s := NewState()
	s.Press(key("e"))
	if f := s.Frame(); !f.Interact {
		t.Error("first frame should carry interact")
	}
	if f := s.Frame(); f.Interact {
		t.Error("interact should be consumed after one frame")
	}
}

func TestSetSingleBinding_KeepsReserved(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	defer func() { bindings = saved }()

	SetSingleBinding(ActionMoveNorth, "i")
	if MapToIntent(key("w")).Action != ActionNone {
		t.Error("old binding w should be removed")
	}
	if MapToIntent(key("i")).Action != ActionMoveNorth {
		t.Error("new binding i should move north")
	}
	if MapToIntent(key("arrow_up")).Action != ActionMoveNorth {
		t.Error("reserved arrow_up binding should survive")
	}
	SetSingleBinding(ActionQuit, "e")
	if MapToIntent(key("e")).Action != ActionInteract {
		t.Error("reserved e must not be rebound")
	}
}
