package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "islandnav/pkg/engine/input"
)

func TestKeyCode(t *testing.T) {
	cases := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyW, "w"},
		{ebiten.KeyA, "a"},
		{ebiten.KeyZ, "z"},
		{ebiten.KeyArrowLeft, "arrow_left"},
		{ebiten.KeyShiftRight, "shift"},
		{ebiten.KeyF1, ""},
	}
	for _, c := range cases {
		if got := keyCode(c.key); got != c.want {
			t.Errorf("keyCode(%v) = %q, want %q", c.key, got, c.want)
		}
	}
}

func TestGamepadCodesAreBound(t *testing.T) {
	for b, code := range gamepadCodes {
		if engineinput.MapToIntent(engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code}).Action == engineinput.ActionNone {
			t.Errorf("gamepad button %v code %q has no binding", b, code)
		}
	}
}
