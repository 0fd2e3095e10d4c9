package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	engineinput "islandnav/pkg/engine/input"
)

var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyShiftLeft:  "shift",
	ebiten.KeyShiftRight: "shift",
	ebiten.KeyEnter:      "enter",
	ebiten.KeySpace:      "space",
	ebiten.KeyEscape:     "escape",
}

var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:       "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:    "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:      "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:     "gamepad_dpad_right",
	ebiten.StandardGamepadButtonRightBottom:   "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:    "gamepad_b",
	ebiten.StandardGamepadButtonFrontTopRight: "gamepad_rb",
	ebiten.StandardGamepadButtonCenterRight:   "gamepad_start",
}

// keyCode returns the binding code for an Ebiten key, or "" if it has none.
func keyCode(k ebiten.Key) string {
	if code, ok := keyCodes[k]; ok {
		return code
	}
	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		return string(rune('a' + int(k-ebiten.KeyA)))
	}
	return ""
}

// Update samples input and advances the world one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if err := e.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	e.pollKeyboard()
	e.pollGamepads()
	frame := e.input.Frame()
	e.applyStick(&frame)

	if frame.Quit {
		return ebiten.Termination
	}
	w := e.world
	if w.ActivityActive() {
		if frame.Interact {
			w.CompleteActivity()
		}
		return nil
	}
	if n, ok := justPressedDigit(); ok {
		regions := w.Regions().Regions()
		if n < len(regions) {
			if err := w.TravelTo(e.ctx, regions[n].Name); err != nil {
				e.log.Warn("travel failed", zap.Error(err))
			}
		}
	}
	w.Tick(1/float64(ebiten.TPS()), frame)
	return nil
}

func (e *EbitenRenderer) pollKeyboard() {
	var keys []ebiten.Key
	for _, k := range inpututil.AppendJustPressedKeys(keys) {
		if code := keyCode(k); code != "" {
			e.input.Press(engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code})
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(keys[:0]) {
		if code := keyCode(k); code != "" {
			e.input.Release(engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code})
		}
	}
}

func (e *EbitenRenderer) pollGamepads() {
	var ids []ebiten.GamepadID
	for _, id := range ebiten.AppendGamepadIDs(ids) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, code := range gamepadCodes {
			raw := engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code}
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				e.input.Press(raw)
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, b) {
				e.input.Release(raw)
			}
		}
	}
}

// applyStick lets the left stick override digital movement with an analog direction.
func (e *EbitenRenderer) applyStick(f *engineinput.Frame) {
	var ids []ebiten.GamepadID
	for _, id := range ebiten.AppendGamepadIDs(ids) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(x, y) < gamepadDeadZone {
			continue
		}
		f.DX, f.DY = x, y
		return
	}
}

// justPressedDigit maps the number row 1-9 to a zero-based region index.
func justPressedDigit() (int, bool) {
	for k := ebiten.KeyDigit1; k <= ebiten.KeyDigit9; k++ {
		if inpututil.IsKeyJustPressed(k) {
			return int(k - ebiten.KeyDigit1), true
		}
	}
	return 0, false
}
