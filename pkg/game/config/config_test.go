package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "islandnav.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.World.Cols != 100 || cfg.World.TileSize != 32 {
		t.Errorf("default world = %d cols, tile %v; want 100 cols, tile 32", cfg.World.Cols, cfg.World.TileSize)
	}
	if cfg.Camera.Margin != 64 {
		t.Errorf("default camera margin = %v, want 64", cfg.Camera.Margin)
	}
	if cfg.Regions.HitRadius != 2 {
		t.Errorf("default hit radius = %d, want 2", cfg.Regions.HitRadius)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
seed = 42

[world]
cols = 60
island_radius = 25.5

[camera]
smoothing = 0.25

[display]
renderer = "tui"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.World.Cols != 60 || cfg.World.Rows != 100 {
		t.Errorf("world = %dx%d, want 60x100", cfg.World.Cols, cfg.World.Rows)
	}
	if cfg.World.IslandRadius != 25.5 {
		t.Errorf("island radius = %v, want 25.5", cfg.World.IslandRadius)
	}
	if cfg.Camera.Smoothing != 0.25 {
		t.Errorf("smoothing = %v, want 0.25", cfg.Camera.Smoothing)
	}
	if cfg.Avatar.Speed != 360 {
		t.Errorf("avatar speed = %v, want default 360", cfg.Avatar.Speed)
	}
	if cfg.Display.Renderer != "tui" {
		t.Errorf("renderer = %q, want tui", cfg.Display.Renderer)
	}
}

func TestLoad_ReportsAllInvalidFields(t *testing.T) {
	path := writeConfig(t, `
[world]
cols = 0
tile_size = -1

[camera]
smoothing = 1.5
`)
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load error = %v, want ErrInvalid", err)
	}
	for _, field := range []string{"world size", "world.tile_size", "camera.smoothing"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestLoad_BadSyntax(t *testing.T) {
	path := writeConfig(t, "[world\ncols = 3")
	if _, err := Load(path); err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Load error = %v, want a parse error", err)
	}
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "..", "islandnav.example.toml"))
	if err != nil {
		t.Fatalf("Load example error: %v", err)
	}
	def := Default()
	if cfg.World != def.World || cfg.Camera != def.Camera || cfg.Avatar != def.Avatar {
		t.Errorf("example world/camera/avatar differ from defaults: %+v", cfg)
	}
	if cfg.Regions.File != "data/regions.yaml" || cfg.Activity.Script != "scripts/activities.lua" {
		t.Errorf("example regions/activity = %+v / %+v", cfg.Regions, cfg.Activity)
	}
}
