package activity

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogDispatcher_AcceptsAndLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	d := NewLogDispatcher(zap.New(core))
	if err := d.Launch(Request{Region: "arcadeCove", ActivityID: "rhythmGame"}); err != nil {
		t.Fatalf("Launch error: %v", err)
	}
	entries := logs.FilterMessage("activity launched").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d launch entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["activity"]; got != "rhythmGame" {
		t.Errorf("logged activity = %v, want rhythmGame", got)
	}
}

func TestLuaDispatcher_ShippedScript(t *testing.T) {
	d, err := NewLuaDispatcher(filepath.Join("..", "..", "..", "scripts", "activities.lua"), nil)
	if err != nil {
		t.Fatalf("NewLuaDispatcher error: %v", err)
	}
	defer d.Close()

	if err := d.Launch(Request{Region: "internetPoint", ActivityID: "networkQuiz"}); err != nil {
		t.Errorf("networkQuiz rejected: %v", err)
	}
	err = d.Launch(Request{Region: "nowhere", ActivityID: "chess"})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("unknown activity error = %v, want ErrRejected", err)
	}
	if !strings.Contains(err.Error(), "unknown activity chess") {
		t.Errorf("rejection reason missing from %q", err)
	}
}

func TestLuaDispatcher_ReceivesRequestFields(t *testing.T) {
	src := `
function launch(req)
  return req.region == "mobileBay" and req.activity == "phoneWeight" and req.seed == "42"
end`
	d, err := NewLuaDispatcherString(src, nil)
	if err != nil {
		t.Fatalf("NewLuaDispatcherString error: %v", err)
	}
	defer d.Close()
	if err := d.Launch(Request{Region: "mobileBay", ActivityID: "phoneWeight", Seed: 42}); err != nil {
		t.Errorf("matching request rejected: %v", err)
	}
	if err := d.Launch(Request{Region: "mobileBay", ActivityID: "phoneWeight", Seed: 7}); !errors.Is(err, ErrRejected) {
		t.Errorf("mismatched request error = %v, want ErrRejected", err)
	}
}

func TestLuaDispatcher_ScriptErrors(t *testing.T) {
	if _, err := NewLuaDispatcherString("x = 1", nil); err == nil {
		t.Error("script without launch should fail to load")
	}
	if _, err := NewLuaDispatcherString("function launch(", nil); err == nil {
		t.Error("syntax error should fail to load")
	}
	d, err := NewLuaDispatcherString(`function launch(req) error("boom") end`, nil)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	defer d.Close()
	if err := d.Launch(Request{ActivityID: "x"}); err == nil || errors.Is(err, ErrRejected) {
		t.Errorf("runtime error = %v, want a non-rejection error", err)
	}
}

func TestLuaDispatcher_SeedKeepsAllDigits(t *testing.T) {
	src := `
function launch(req)
  return req.seed == "1760000000123456789"
end`
	d, err := NewLuaDispatcherString(src, nil)
	if err != nil {
		t.Fatalf("NewLuaDispatcherString error: %v", err)
	}
	defer d.Close()
	if err := d.Launch(Request{Seed: 1760000000123456789}); err != nil {
		t.Errorf("large seed rejected: %v", err)
	}
}
