package world

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions is returned when a grid is requested with a
// non-positive size or tile size.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Grid is a fixed-size map of tiles. It is read-only once built; use a
// Builder to construct one.
type Grid struct {
	tiles    []Tile
	cols     int
	rows     int
	tileSize float64
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// TileSize returns the size of one tile in world units
func (g *Grid) TileSize() float64 {
	return g.tileSize
}

// WorldSize returns the width and height of the grid in world units
func (g *Grid) WorldSize() (width, height float64) {
	return float64(g.cols) * g.tileSize, float64(g.rows) * g.tileSize
}

// InBounds checks if a tile position is within grid bounds
func (g *Grid) InBounds(p Point) bool {
	return p.Col >= 0 && p.Col < g.cols && p.Row >= 0 && p.Row < g.rows
}

// CenterPosition returns the tile at the center of the grid
func (g *Grid) CenterPosition() Point {
	return Point{Col: g.cols / 2, Row: g.rows / 2}
}

// Tile returns the tile at p. The second result is false when p is out of bounds.
func (g *Grid) Tile(p Point) (Tile, bool) {
	if !g.InBounds(p) {
		return Tile{}, false
	}
	return g.tiles[g.index(p)], true
}

// TypeAt returns the tile type at p, or Water when p is out of bounds.
func (g *Grid) TypeAt(p Point) TileType {
	t, _ := g.Tile(p)
	return t.Type
}

// Index returns the dense index of an in-bounds point, row-major.
func (g *Grid) Index(p Point) int {
	return g.index(p)
}

// PointAt is the inverse of Index.
func (g *Grid) PointAt(i int) Point {
	return Point{Col: i % g.cols, Row: i / g.cols}
}

// Len returns the number of tiles in the grid
func (g *Grid) Len() int {
	return len(g.tiles)
}

func (g *Grid) index(p Point) int {
	return p.Row*g.cols + p.Col
}

// TileAt converts a world position to the tile containing it.
// The second result is false for positions outside the grid or non-finite input.
func (g *Grid) TileAt(x, y float64) (Point, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return Point{}, false
	}
	w, h := g.WorldSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return Point{}, false
	}
	p := Point{Col: int(math.Floor(x / g.tileSize)), Row: int(math.Floor(y / g.tileSize))}
	// Guard against rounding pushing x just below w into column cols.
	if !g.InBounds(p) {
		return Point{}, false
	}
	return p, true
}

// TileCenter returns the world position of the center of tile p.
func (g *Grid) TileCenter(p Point) Vec2 {
	return Vec2{
		X: float64(p.Col)*g.tileSize + g.tileSize/2,
		Y: float64(p.Row)*g.tileSize + g.tileSize/2,
	}
}

// IsTileWalkable returns true if p is in bounds and its tile is walkable
func (g *Grid) IsTileWalkable(p Point) bool {
	t, ok := g.Tile(p)
	return ok && t.Walkable()
}

// IsWalkable reports whether a character may stand at the world position
// (x, y). Out-of-bounds and non-finite coordinates are never walkable.
func (g *Grid) IsWalkable(x, y float64) bool {
	p, ok := g.TileAt(x, y)
	if !ok {
		return false
	}
	return g.tiles[g.index(p)].Walkable()
}

// ForEachTile iterates over all tiles in row-major order
func (g *Grid) ForEachTile(fn func(p Point, t Tile)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p := Point{Col: col, Row: row}
			fn(p, g.tiles[g.index(p)])
		}
	}
}

// Count returns the number of tiles of the given type
func (g *Grid) Count(t TileType) int {
	n := 0
	for _, tile := range g.tiles {
		if tile.Type == t {
			n++
		}
	}
	return n
}

// Builder assembles a Grid. It is the only way to mutate tiles.
type Builder struct {
	grid *Grid
}

// NewBuilder creates a builder for a cols×rows grid with every tile set to fill.
func NewBuilder(cols, rows int, tileSize float64, fill TileType) (*Builder, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}
	if !(tileSize > 0) || math.IsInf(tileSize, 0) {
		return nil, fmt.Errorf("%w: tile size %v", ErrInvalidDimensions, tileSize)
	}
	g := &Grid{
		tiles:    make([]Tile, cols*rows),
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
	}
	for i := range g.tiles {
		g.tiles[i] = Tile{Type: fill}
	}
	return &Builder{grid: g}, nil
}

// View exposes the grid under construction for reads.
func (b *Builder) View() *Grid {
	return b.grid
}

// Set replaces the tile at p. Returns false if out of bounds.
func (b *Builder) Set(p Point, t Tile) bool {
	if !b.grid.InBounds(p) {
		return false
	}
	b.grid.tiles[b.grid.index(p)] = t
	return true
}

// SetType changes the type at p and clears the bridge flag. Returns false if out of bounds.
func (b *Builder) SetType(p Point, t TileType) bool {
	return b.Set(p, Tile{Type: t})
}

// Grid finishes construction. The builder must not be used afterwards.
func (b *Builder) Grid() *Grid {
	g := b.grid
	b.grid = nil
	return g
}
