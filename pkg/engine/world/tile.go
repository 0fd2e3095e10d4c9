// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// TileType identifies the terrain carried by a tile.
type TileType uint8

// Tile types. Every tile carries exactly one.
const (
	Water TileType = iota
	Grass
	Sand
	Path
	Building
	Obstacle
)

// AllTileTypes returns every tile type in declaration order
func AllTileTypes() []TileType {
	return []TileType{Water, Grass, Sand, Path, Building, Obstacle}
}

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case Water:
		return "water"
	case Grass:
		return "grass"
	case Sand:
		return "sand"
	case Path:
		return "path"
	case Building:
		return "building"
	case Obstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// IsValid returns true if the tile type is one of the known kinds
func (t TileType) IsValid() bool {
	return t <= Obstacle
}

// Walkable reports whether a moving character may occupy a tile of this type.
func (t TileType) Walkable() bool {
	switch t {
	case Grass, Sand, Path:
		return true
	default:
		return false
	}
}

// Tile represents a single cell of the grid.
type Tile struct {
	Type TileType

	// Bridge marks a path tile carved over what would have been water.
	// It only affects presentation; walkability comes from Type.
	Bridge bool
}

// Walkable returns true if a character may stand on this tile
func (t Tile) Walkable() bool {
	return t.Type.Walkable()
}
