package terminal

import "testing"

func TestGetSize_FallsBackToDefaults(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize = %d x %d, want positive", w, h)
	}
	if !IsTerminal() && (w != DefaultWidth || h != DefaultHeight) {
		t.Errorf("GetSize without a terminal = %d x %d, want %d x %d", w, h, DefaultWidth, DefaultHeight)
	}
}
