package world

import (
	"errors"
	"math"
	"testing"
)

// makeGrid builds a cols×rows grid of grass with the listed points set to water.
func makeGrid(t *testing.T, cols, rows int, tileSize float64, water ...Point) *Grid {
	t.Helper()
	b, err := NewBuilder(cols, rows, tileSize, Grass)
	if err != nil {
		t.Fatalf("NewBuilder(%d, %d, %v) error: %v", cols, rows, tileSize, err)
	}
	for _, p := range water {
		b.SetType(p, Water)
	}
	return b.Grid()
}

func TestNewBuilder_RejectsNonPositiveDimensions(t *testing.T) {
	cases := []struct {
		cols, rows int
		size       float64
	}{
		{0, 10, 32},
		{10, -1, 32},
		{10, 10, 0},
		{10, 10, math.NaN()},
	}
	for _, c := range cases {
		if _, err := NewBuilder(c.cols, c.rows, c.size, Water); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewBuilder(%d, %d, %v) error = %v, want ErrInvalidDimensions", c.cols, c.rows, c.size, err)
		}
	}
}

func TestTileType_Walkable(t *testing.T) {
	want := map[TileType]bool{
		Water:    false,
		Grass:    true,
		Sand:     true,
		Path:     true,
		Building: false,
		Obstacle: false,
	}
	for _, tt := range AllTileTypes() {
		if got := tt.Walkable(); got != want[tt] {
			t.Errorf("%v.Walkable() = %v, want %v", tt, got, want[tt])
		}
	}
	bridge := Tile{Type: Path, Bridge: true}
	if !bridge.Walkable() {
		t.Error("bridge tile should be walkable")
	}
}

func TestIsWalkable_SubTileCoordinates(t *testing.T) {
	g := makeGrid(t, 4, 4, 32, Point{Col: 1, Row: 0})

	if !g.IsWalkable(0.5, 31.999) {
		t.Error("IsWalkable(0.5, 31.999) = false, want true (grass tile 0,0)")
	}
	if g.IsWalkable(32, 0) {
		t.Error("IsWalkable(32, 0) = true, want false (water tile 1,0)")
	}
	if g.IsWalkable(63.9, 10) {
		t.Error("IsWalkable(63.9, 10) = true, want false (water tile 1,0)")
	}
	if !g.IsWalkable(64, 10) {
		t.Error("IsWalkable(64, 10) = false, want true (grass tile 2,0)")
	}
}

func TestIsWalkable_OutOfBoundsIsFalse(t *testing.T) {
	g := makeGrid(t, 5, 3, 16)
	w, h := g.WorldSize()
	outside := [][2]float64{
		{-0.001, 1}, {1, -0.001}, {w, 1}, {1, h}, {w + 100, h + 100},
		{-1e9, -1e9}, {math.NaN(), 1}, {1, math.Inf(1)},
	}
	for _, p := range outside {
		if g.IsWalkable(p[0], p[1]) {
			t.Errorf("IsWalkable(%v, %v) = true, want false", p[0], p[1])
		}
	}
	// Every in-bounds position on an all-grass grid is walkable.
	for x := 0.0; x < w; x += 3.7 {
		for y := 0.0; y < h; y += 3.1 {
			if !g.IsWalkable(x, y) {
				t.Fatalf("IsWalkable(%v, %v) = false, want true", x, y)
			}
		}
	}
}

func TestTileCenterRoundTrip(t *testing.T) {
	g := makeGrid(t, 7, 9, 32)
	g.ForEachTile(func(p Point, _ Tile) {
		c := g.TileCenter(p)
		got, ok := g.TileAt(c.X, c.Y)
		if !ok || got != p {
			t.Errorf("TileAt(TileCenter(%v)) = %v, %v", p, got, ok)
		}
	})
}

func TestBuilder_GridIsDetached(t *testing.T) {
	b, err := NewBuilder(2, 2, 1, Water)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Set(Point{Col: 1, Row: 1}, Tile{Type: Path, Bridge: true}) {
		t.Fatal("Set in bounds returned false")
	}
	if b.Set(Point{Col: 2, Row: 0}, Tile{Type: Path}) {
		t.Error("Set out of bounds returned true")
	}
	g := b.Grid()
	tile, ok := g.Tile(Point{Col: 1, Row: 1})
	if !ok || tile.Type != Path || !tile.Bridge {
		t.Errorf("Tile(1,1) = %+v, %v; want bridge path", tile, ok)
	}
	if g.Count(Water) != 3 {
		t.Errorf("Count(Water) = %d, want 3", g.Count(Water))
	}
}
