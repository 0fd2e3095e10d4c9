package pathfind

import "islandnav/pkg/engine/world"

// Smooth drops intermediate waypoints that can be skipped with a straight
// walk over walkable tiles. The first and last waypoints are always kept.
func Smooth(g *world.Grid, path []world.Vec2) []world.Vec2 {
	if len(path) <= 2 {
		return path
	}
	tiles := make([]world.Point, len(path))
	for i, v := range path {
		p, ok := g.TileAt(v.X, v.Y)
		if !ok {
			return path
		}
		tiles[i] = p
	}

	out := []world.Vec2{path[0]}
	anchor := 0
	for i := 2; i < len(path); i++ {
		if !world.HasLineOfSight(g, tiles[anchor], tiles[i]) {
			anchor = i - 1
			out = append(out, path[anchor])
		}
	}
	return append(out, path[len(path)-1])
}
