// Package pathfind implements A* search over the walkable tiles of a grid.
package pathfind

import (
	"container/heap"
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"islandnav/pkg/engine/telemetry"
	"islandnav/pkg/engine/world"
)

// cancelCheckInterval is how many node expansions run between context checks.
const cancelCheckInterval = 256

// node is the per-search record for one tile. It only lives for one FindPath call.
type node struct {
	g, h      int
	parent    int32
	heapIndex int
	state     nodeState
}

type nodeState uint8

const (
	unseen nodeState = iota
	open
	closed
)

// openSet is a binary heap of tile indices ordered by f = g + h, with ties
// broken toward lower h. It tracks heap positions so entries can be
// relaxed in place with heap.Fix instead of pushed twice.
type openSet struct {
	items []int32
	nodes []node
}

func (s *openSet) Len() int { return len(s.items) }

func (s *openSet) Less(i, j int) bool {
	a, b := &s.nodes[s.items[i]], &s.nodes[s.items[j]]
	fa, fb := a.g+a.h, b.g+b.h
	if fa != fb {
		return fa < fb
	}
	return a.h < b.h
}

func (s *openSet) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.nodes[s.items[i]].heapIndex = i
	s.nodes[s.items[j]].heapIndex = j
}

func (s *openSet) Push(x any) {
	idx := x.(int32)
	s.nodes[idx].heapIndex = len(s.items)
	s.items = append(s.items, idx)
}

func (s *openSet) Pop() any {
	last := len(s.items) - 1
	idx := s.items[last]
	s.items = s.items[:last]
	s.nodes[idx].heapIndex = -1
	return idx
}

// Finder runs A* searches against one immutable grid. It holds no per-search
// state, so concurrent searches on the same Finder are safe.
type Finder struct {
	grid   *world.Grid
	tracer trace.Tracer
}

// NewFinder creates a pathfinder for the given grid
func NewFinder(grid *world.Grid) *Finder {
	return &Finder{grid: grid, tracer: telemetry.Tracer("pathfind")}
}

// Grid returns the grid searched by this finder
func (f *Finder) Grid() *world.Grid {
	return f.grid
}

// FindPath returns the waypoints (tile centers) from the tile containing
// start to the tile containing goal, both included. It returns nil when
// either end is out of bounds or not walkable, or when no path exists.
func (f *Finder) FindPath(start, goal world.Vec2) []world.Vec2 {
	path, _ := f.FindPathContext(context.Background(), start, goal)
	return path
}

// FindPathContext is FindPath with cancellation. The error is non-nil only
// when ctx ended before the search finished.
func (f *Finder) FindPathContext(ctx context.Context, start, goal world.Vec2) ([]world.Vec2, error) {
	s, ok := f.grid.TileAt(start.X, start.Y)
	if !ok {
		return nil, nil
	}
	e, ok := f.grid.TileAt(goal.X, goal.Y)
	if !ok {
		return nil, nil
	}
	tiles, err := f.FindTilePathContext(ctx, s, e)
	if err != nil || len(tiles) == 0 {
		return nil, err
	}
	waypoints := make([]world.Vec2, len(tiles))
	for i, p := range tiles {
		waypoints[i] = f.grid.TileCenter(p)
	}
	return waypoints, nil
}

// FindTilePath returns the tiles of a shortest 4-directional path from start
// to goal, both included, or nil if there is none.
func (f *Finder) FindTilePath(start, goal world.Point) []world.Point {
	path, _ := f.FindTilePathContext(context.Background(), start, goal)
	return path
}

// FindTilePathContext is FindTilePath with cancellation.
func (f *Finder) FindTilePathContext(ctx context.Context, start, goal world.Point) ([]world.Point, error) {
	g := f.grid
	if !g.IsTileWalkable(start) || !g.IsTileWalkable(goal) {
		return nil, nil
	}
	if start == goal {
		return []world.Point{start}, nil
	}

	_, span := f.tracer.Start(ctx, "pathfind.find")
	defer span.End()

	nodes := make([]node, g.Len())
	set := &openSet{nodes: nodes}

	startIdx := int32(g.Index(start))
	goalIdx := int32(g.Index(goal))
	nodes[startIdx] = node{g: 0, h: world.ManhattanDistance(start, goal), parent: -1, state: open}
	heap.Push(set, startIdx)

	expanded := 0
	for set.Len() > 0 {
		if expanded%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				span.SetAttributes(attribute.Bool("pathfind.cancelled", true))
				return nil, err
			}
		}
		expanded++

		current := heap.Pop(set).(int32)
		nodes[current].state = closed

		if current == goalIdx {
			path := reconstruct(g, nodes, current)
			span.SetAttributes(
				attribute.Int("pathfind.expanded", expanded),
				attribute.Int("pathfind.length", len(path)),
			)
			return path, nil
		}

		cp := g.PointAt(int(current))
		for _, dir := range world.AllDirections() {
			np := cp.Step(dir)
			if !g.IsTileWalkable(np) {
				continue
			}
			ni := int32(g.Index(np))
			n := &nodes[ni]
			if n.state == closed {
				continue
			}
			tentative := nodes[current].g + 1
			switch n.state {
			case unseen:
				*n = node{g: tentative, h: world.ManhattanDistance(np, goal), parent: current, state: open}
				heap.Push(set, ni)
			case open:
				if tentative < n.g {
					n.g = tentative
					n.parent = current
					heap.Fix(set, n.heapIndex)
				}
			}
		}
	}

	span.SetAttributes(attribute.Int("pathfind.expanded", expanded), attribute.Bool("pathfind.unreachable", true))
	return nil, nil
}

// reconstruct walks parent links back from end and returns the path in
// start-to-end order.
func reconstruct(g *world.Grid, nodes []node, end int32) []world.Point {
	var path []world.Point
	for i := end; i != -1; i = nodes[i].parent {
		path = append(path, g.PointAt(int(i)))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
