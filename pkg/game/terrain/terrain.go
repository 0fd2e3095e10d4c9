// Package terrain generates the island: tile grid, carved paths between the
// island center and every region endpoint, landmark buildings, obstacles and
// cosmetic decorations.
package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"islandnav/pkg/engine/world"
)

// ErrInvalidParams is wrapped by every parameter validation failure.
var ErrInvalidParams = errors.New("invalid terrain params")

const (
	DefaultSandWidth  = 2.0
	DefaultPathRadius = 1
	DefaultMaxBend    = 6

	// radiusFactor sizes the island when Params.IslandRadius is zero.
	radiusFactor = 0.45
)

// Params controls one generation run.
type Params struct {
	Cols, Rows int
	TileSize   float64

	// IslandRadius in tiles; 0 selects 0.45 * min(Cols, Rows). Larger than
	// min(Cols, Rows)/2 is clamped to that.
	IslandRadius float64
	SandWidth    float64
	// PathRadius is the half-width of the carving kernel; 1 gives 3x3.
	PathRadius int
	// MaxBend caps how far the pivot of a carved path strays from a straight line.
	MaxBend int

	// Endpoints are the region tiles to connect to the island center.
	// Indices outside the grid are clamped onto it.
	Endpoints []world.Point

	// Seed 0 picks a time-based seed, recorded in Terrain.Seed.
	Seed int64

	Landmarks bool
	Obstacles int
}

// DefaultParams returns params for a cols x rows island with the default
// sand band, kernel and bend.
func DefaultParams(cols, rows int, tileSize float64) Params {
	return Params{
		Cols:       cols,
		Rows:       rows,
		TileSize:   tileSize,
		SandWidth:  DefaultSandWidth,
		PathRadius: DefaultPathRadius,
		MaxBend:    DefaultMaxBend,
	}
}

func (p Params) validate() error {
	if p.Cols <= 0 || p.Rows <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidParams, p.Cols, p.Rows)
	}
	if !(p.TileSize > 0) || math.IsInf(p.TileSize, 0) {
		return fmt.Errorf("%w: tile size %v", ErrInvalidParams, p.TileSize)
	}
	if p.IslandRadius < 0 || math.IsNaN(p.IslandRadius) || math.IsInf(p.IslandRadius, 0) {
		return fmt.Errorf("%w: island radius %v", ErrInvalidParams, p.IslandRadius)
	}
	if p.SandWidth < 0 || math.IsNaN(p.SandWidth) {
		return fmt.Errorf("%w: sand width %v", ErrInvalidParams, p.SandWidth)
	}
	if p.PathRadius < 0 || p.MaxBend < 0 || p.Obstacles < 0 {
		return fmt.Errorf("%w: path radius %d, max bend %d, obstacles %d",
			ErrInvalidParams, p.PathRadius, p.MaxBend, p.Obstacles)
	}
	return nil
}

// radius resolves the effective island radius in tiles.
func (p Params) radius() float64 {
	limit := float64(min(p.Cols, p.Rows)) / 2
	r := p.IslandRadius
	if r == 0 {
		r = radiusFactor * float64(min(p.Cols, p.Rows))
	}
	return math.Min(r, limit)
}

// Terrain is the immutable result of generation.
type Terrain struct {
	Grid *world.Grid
	// Paths holds every carved tile, bridges included.
	Paths mapset.Set[world.Point]
	// Endpoints are the clamped region tiles the paths lead to.
	Endpoints []world.Point
	// Landmarks are the top-left corners of placed 3x3 buildings.
	Landmarks []world.Point

	Seed   int64
	Center world.Point
	Radius float64
}

// IsPath reports whether p was carved
func (t *Terrain) IsPath(p world.Point) bool {
	return t.Paths.Has(p)
}

// Bridges counts carved tiles that replaced water
func (t *Terrain) Bridges() int {
	n := 0
	t.Grid.ForEachTile(func(_ world.Point, tile world.Tile) {
		if tile.Bridge {
			n++
		}
	})
	return n
}

// clampPoint moves p onto the grid
func clampPoint(p world.Point, cols, rows int) world.Point {
	return world.Point{Col: clampInt(p.Col, 0, cols-1), Row: clampInt(p.Row, 0, rows-1)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
