package input

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Frame is the per-tick input sampled by the world. DX and DY form a
// direction vector of length 0 or 1, so diagonals are not faster.
type Frame struct {
	DX, DY   float64
	Fast     bool
	Interact bool
	Cancel   bool
	Quit     bool
}

// Moving reports whether the frame carries a movement direction
func (f Frame) Moving() bool {
	return f.DX != 0 || f.DY != 0
}

// State accumulates device events between ticks. Movement and fast are
// level-triggered (held); interact, cancel and quit are edge-triggered and
// consumed by the next Frame call.
type State struct {
	held    mapset.Set[Action]
	pending mapset.Set[Action]
}

// NewState creates an empty input state
func NewState() *State {
	return &State{
		held:    mapset.New[Action](),
		pending: mapset.New[Action](),
	}
}

// Press records a key-down for a raw input.
func (s *State) Press(ev RawInput) {
	act := MapToIntent(ev).Action
	switch act {
	case ActionNone:
		return
	case ActionInteract, ActionCancel, ActionQuit:
		s.pending.Put(act)
	default:
		s.held.Put(act)
	}
}

// Release records a key-up for a raw input.
func (s *State) Release(ev RawInput) {
	s.held.Remove(MapToIntent(ev).Action)
}

// ReleaseAll clears every held action. Used by backends that do not report
// key-up events.
func (s *State) ReleaseAll() {
	s.held = mapset.New[Action]()
}

// Held reports whether an action is currently held
func (s *State) Held(a Action) bool {
	return s.held.Has(a)
}

// Frame samples the current state and consumes edge-triggered actions.
func (s *State) Frame() Frame {
	var f Frame
	if s.held.Has(ActionMoveWest) {
		f.DX--
	}
	if s.held.Has(ActionMoveEast) {
		f.DX++
	}
	if s.held.Has(ActionMoveNorth) {
		f.DY--
	}
	if s.held.Has(ActionMoveSouth) {
		f.DY++
	}
	if f.DX != 0 && f.DY != 0 {
		f.DX /= math.Sqrt2
		f.DY /= math.Sqrt2
	}
	f.Fast = s.held.Has(ActionFast)
	f.Interact = s.pending.Has(ActionInteract)
	f.Cancel = s.pending.Has(ActionCancel)
	f.Quit = s.pending.Has(ActionQuit)
	s.pending = mapset.New[Action]()
	return f
}
