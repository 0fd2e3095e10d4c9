package renderer

import (
	"context"
	"errors"
	"testing"

	engineworld "islandnav/pkg/engine/world"
	"islandnav/pkg/game/config"
	"islandnav/pkg/game/world"
)

func TestHeadless_VisitsEveryRegion(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	cfg.World.Cols, cfg.World.Rows = 48, 48
	w, err := world.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("world.New error: %v", err)
	}
	defer w.Close()

	h := NewHeadless(nil)
	SetRenderer(h)
	defer SetRenderer(nil)
	if err := Run(context.Background(), w); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got, want := len(h.Visited), len(w.Regions().Regions()); got != want {
		t.Errorf("visited %d regions (%v), want %d", got, h.Visited, want)
	}
	if w.ActivityActive() {
		t.Error("activity left active after tour")
	}
}

func TestRun_NoRenderer(t *testing.T) {
	SetRenderer(nil)
	if err := Run(context.Background(), nil); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("Run error = %v, want ErrNoRenderer", err)
	}
}

func TestTileGlyph_BridgeDiffersFromPath(t *testing.T) {
	path := TileGlyph(engineworld.Tile{Type: engineworld.Path})
	bridge := TileGlyph(engineworld.Tile{Type: engineworld.Path, Bridge: true})
	if path == bridge {
		t.Errorf("bridge and path share glyph %q", path)
	}
	for _, tt := range engineworld.AllTileTypes() {
		if g := TileGlyph(engineworld.Tile{Type: tt}); g == IconUnknown {
			t.Errorf("tile type %s has no glyph", tt)
		}
	}
}
