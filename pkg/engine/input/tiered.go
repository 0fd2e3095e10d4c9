package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high-level intent of the player.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	ActionFast     // Held to multiply walking speed
	ActionInteract // Enter the activity of the region under the avatar
	ActionQuit
	ActionCancel // Stop auto-travel
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// bindings maps raw codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,
	"l":           ActionMoveEast,

	"shift": ActionFast,

	"e":     ActionInteract,
	"enter": ActionInteract,
	"space": ActionInteract,

	"q":      ActionQuit,
	"escape": ActionQuit,

	"x": ActionCancel,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveNorth,
	"gamepad_dpad_down":  ActionMoveSouth,
	"gamepad_dpad_left":  ActionMoveWest,
	"gamepad_dpad_right": ActionMoveEast,
	"gamepad_a":          ActionInteract,
	"gamepad_b":          ActionCancel,
	"gamepad_rb":         ActionFast,
	"gamepad_start":      ActionQuit,
}

// reserved codes keep their binding regardless of SetSingleBinding.
var reserved = map[string]bool{
	"arrow_up": true, "arrow_down": true, "arrow_left": true, "arrow_right": true,
	"e": true, "enter": true, "gamepad_a": true,
}

// MapToIntent applies the current bindings to a raw input.
func MapToIntent(ev RawInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionFast:
		return "Fast"
	case ActionInteract:
		return "Interact"
	case ActionQuit:
		return "Quit"
	case ActionCancel:
		return "Cancel Travel"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for the given action
// with a single code. Reserved codes cannot be rebound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
