// Package region maps named points of interest onto the grid and answers
// which region, if any, a world position is standing in.
package region

import (
	"errors"
	"fmt"
	"math"

	"islandnav/pkg/engine/world"
)

// DefaultHitRadius is the Chebyshev distance, in tiles, at which a region
// endpoint is considered reached.
const DefaultHitRadius = 2

// ErrInvalidRegion is wrapped by every region validation failure.
var ErrInvalidRegion = errors.New("invalid region")

// Region is a named point of interest. FX and FY are fractions of the map
// width and height.
type Region struct {
	Name       string  `yaml:"name"`
	Label      string  `yaml:"label"`
	ActivityID string  `yaml:"activity"`
	FX         float64 `yaml:"x"`
	FY         float64 `yaml:"y"`
}

// Index resolves world positions to regions. Overlapping hit areas resolve
// to the region declared first.
type Index struct {
	regions   []Region
	endpoints []world.Point
	byName    map[string]int

	cols, rows int
	tileSize   float64
	hitRadius  int
}

// NewIndex validates regions and computes their endpoint tiles on a
// cols x rows grid.
func NewIndex(regions []Region, cols, rows int, tileSize float64, hitRadius int) (*Index, error) {
	if cols <= 0 || rows <= 0 || !(tileSize > 0) || math.IsInf(tileSize, 0) {
		return nil, fmt.Errorf("%w: grid %dx%d tile %v", ErrInvalidRegion, cols, rows, tileSize)
	}
	if hitRadius < 0 {
		return nil, fmt.Errorf("%w: hit radius %d", ErrInvalidRegion, hitRadius)
	}
	if err := Validate(regions); err != nil {
		return nil, err
	}
	idx := &Index{
		regions:   append([]Region(nil), regions...),
		endpoints: make([]world.Point, len(regions)),
		byName:    make(map[string]int, len(regions)),
		cols:      cols,
		rows:      rows,
		tileSize:  tileSize,
		hitRadius: hitRadius,
	}
	for i, r := range regions {
		idx.endpoints[i] = world.Point{
			Col: endpointIndex(r.FX, cols),
			Row: endpointIndex(r.FY, rows),
		}
		idx.byName[r.Name] = i
	}
	return idx, nil
}

// endpointIndex is floor(f*n), kept on the grid when f is 1.
func endpointIndex(f float64, n int) int {
	return min(int(math.Floor(f*float64(n))), n-1)
}

// Validate checks names are unique and non-empty and positions lie in [0,1].
func Validate(regions []Region) error {
	seen := make(map[string]bool, len(regions))
	for i, r := range regions {
		if r.Name == "" {
			return fmt.Errorf("%w: region %d has no name", ErrInvalidRegion, i)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidRegion, r.Name)
		}
		seen[r.Name] = true
		if !(r.FX >= 0 && r.FX <= 1 && r.FY >= 0 && r.FY <= 1) {
			return fmt.Errorf("%w: %q position (%v, %v) outside [0,1]", ErrInvalidRegion, r.Name, r.FX, r.FY)
		}
	}
	return nil
}

// Query returns the first region whose endpoint is within the hit radius of
// the tile containing (x, y). Positions off the map never match.
func (idx *Index) Query(x, y float64) (Region, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || x < 0 || y < 0 {
		return Region{}, false
	}
	c, r := x/idx.tileSize, y/idx.tileSize
	if c >= float64(idx.cols) || r >= float64(idx.rows) {
		return Region{}, false
	}
	return idx.QueryTile(world.Point{Col: int(c), Row: int(r)})
}

// QueryTile is Query for a tile address.
func (idx *Index) QueryTile(p world.Point) (Region, bool) {
	for i, e := range idx.endpoints {
		if world.ChebyshevDistance(p, e) <= idx.hitRadius {
			return idx.regions[i], true
		}
	}
	return Region{}, false
}

// Regions returns the regions in declaration order
func (idx *Index) Regions() []Region {
	return append([]Region(nil), idx.regions...)
}

// Endpoints returns the endpoint tile of every region, in declaration order
func (idx *Index) Endpoints() []world.Point {
	return append([]world.Point(nil), idx.endpoints...)
}

// Lookup finds a region by name
func (idx *Index) Lookup(name string) (Region, bool) {
	i, ok := idx.byName[name]
	if !ok {
		return Region{}, false
	}
	return idx.regions[i], true
}

// Endpoint returns the endpoint tile of the named region
func (idx *Index) Endpoint(name string) (world.Point, bool) {
	i, ok := idx.byName[name]
	if !ok {
		return world.Point{}, false
	}
	return idx.endpoints[i], true
}

// EndpointWorld returns the world-space center of the region's endpoint tile.
func (idx *Index) EndpointWorld(r Region) (world.Vec2, bool) {
	p, ok := idx.Endpoint(r.Name)
	if !ok {
		return world.Vec2{}, false
	}
	return world.Vec2{
		X: (float64(p.Col) + 0.5) * idx.tileSize,
		Y: (float64(p.Row) + 0.5) * idx.tileSize,
	}, true
}

// Position returns the region's normalized position scaled to world units.
// Labels are drawn here.
func (idx *Index) Position(r Region) world.Vec2 {
	return world.Vec2{
		X: r.FX * float64(idx.cols) * idx.tileSize,
		Y: r.FY * float64(idx.rows) * idx.tileSize,
	}
}

// HitRadius returns the Chebyshev hit radius in tiles
func (idx *Index) HitRadius() int {
	return idx.hitRadius
}
