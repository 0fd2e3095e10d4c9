package region

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"islandnav/pkg/engine/world"
)

func newIndex(t *testing.T, regions []Region) *Index {
	t.Helper()
	idx, err := NewIndex(regions, 100, 100, 32, DefaultHitRadius)
	if err != nil {
		t.Fatalf("NewIndex error: %v", err)
	}
	return idx
}

// tileCenter returns the world position at the middle of tile (c, r) on a 32 unit grid.
func tileCenter(c, r int) (float64, float64) {
	return (float64(c) + 0.5) * 32, (float64(r) + 0.5) * 32
}

func TestEndpoints_FloorOfFraction(t *testing.T) {
	idx := newIndex(t, Default())
	want := []world.Point{
		{Col: 20, Row: 15}, {Col: 80, Row: 15},
		{Col: 20, Row: 70}, {Col: 80, Row: 70},
		{Col: 20, Row: 40}, {Col: 80, Row: 40},
	}
	if got := idx.Endpoints(); !reflect.DeepEqual(got, want) {
		t.Errorf("Endpoints() = %v, want %v", got, want)
	}
}

func TestQuery_HitRadius(t *testing.T) {
	idx := newIndex(t, Default())

	x, y := tileCenter(80, 40)
	if r, ok := idx.Query(x, y); !ok || r.Name != "internetPoint" {
		t.Errorf("Query at endpoint = %v, %v; want internetPoint", r.Name, ok)
	}
	x, y = tileCenter(82, 38)
	if r, ok := idx.Query(x, y); !ok || r.Name != "internetPoint" {
		t.Errorf("Query at Chebyshev 2 = %v, %v; want internetPoint", r.Name, ok)
	}
	x, y = tileCenter(83, 40)
	if r, ok := idx.Query(x, y); ok {
		t.Errorf("Query at distance 3 = %v, want none", r.Name)
	}
}

func TestQuery_OffMap(t *testing.T) {
	regions := []Region{{Name: "corner", FX: 0, FY: 0}}
	idx := newIndex(t, regions)
	for _, p := range [][2]float64{{-1, 5}, {5, -0.1}, {3200, 0}, {0, 3200}} {
		if _, ok := idx.Query(p[0], p[1]); ok {
			t.Errorf("Query(%v, %v) matched off the map", p[0], p[1])
		}
	}
	if _, ok := idx.Query(0, 0); !ok {
		t.Error("Query(0, 0) should hit the corner region")
	}
}

func TestQuery_OverlapResolvesToDeclarationOrder(t *testing.T) {
	regions := []Region{
		{Name: "first", FX: 0.50, FY: 0.50},
		{Name: "second", FX: 0.52, FY: 0.50},
	}
	idx := newIndex(t, regions)
	// Tile 52 is distance 2 from first and 0 from second.
	x, y := tileCenter(52, 50)
	if r, _ := idx.Query(x, y); r.Name != "first" {
		t.Errorf("overlap resolved to %q, want first", r.Name)
	}
}

func TestEndpoint_FractionOneStaysOnGrid(t *testing.T) {
	idx := newIndex(t, []Region{{Name: "edge", FX: 1, FY: 1}})
	if p, _ := idx.Endpoint("edge"); p != (world.Point{Col: 99, Row: 99}) {
		t.Errorf("endpoint = %v, want (99, 99)", p)
	}
}

func TestLookupAndPositions(t *testing.T) {
	idx := newIndex(t, Default())
	r, ok := idx.Lookup("consoleIsland")
	if !ok || r.ActivityID != "consoleGuess" {
		t.Fatalf("Lookup(consoleIsland) = %+v, %v", r, ok)
	}
	if _, ok := idx.Lookup("atlantis"); ok {
		t.Error("Lookup of unknown region succeeded")
	}
	if pos := idx.Position(r); pos != (world.Vec2{X: 2560, Y: 2240}) {
		t.Errorf("Position = %v, want (2560, 2240)", pos)
	}
	if c, _ := idx.EndpointWorld(r); c != (world.Vec2{X: 2576, Y: 2256}) {
		t.Errorf("EndpointWorld = %v, want (2576, 2256)", c)
	}
}

func TestNewIndex_Invalid(t *testing.T) {
	cases := [][]Region{
		{{Name: "", FX: 0.5, FY: 0.5}},
		{{Name: "a", FX: 0.5, FY: 0.5}, {Name: "a", FX: 0.1, FY: 0.1}},
		{{Name: "a", FX: 1.5, FY: 0.5}},
		{{Name: "a", FX: 0.5, FY: -0.1}},
	}
	for i, regions := range cases {
		if _, err := NewIndex(regions, 10, 10, 1, 2); !errors.Is(err, ErrInvalidRegion) {
			t.Errorf("case %d: error = %v, want ErrInvalidRegion", i, err)
		}
	}
	if _, err := NewIndex(Default(), 0, 10, 1, 2); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("zero cols: error = %v, want ErrInvalidRegion", err)
	}
}

func TestLoad_CatalogMatchesDefault(t *testing.T) {
	regions, err := Load(filepath.Join("..", "..", "..", "data", "regions.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(regions, Default()) {
		t.Errorf("catalog = %+v\nwant %+v", regions, Default())
	}
}

func TestLoad_RejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	body := "- {name: a, x: 0.1, y: 0.1}\n- {name: a, x: 0.2, y: 0.2}\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("Load error = %v, want ErrInvalidRegion", err)
	}
}
