package terrain

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"islandnav/pkg/engine/telemetry"
	"islandnav/pkg/engine/world"
)

// Independent random streams derived from one seed, so changing decoration
// quotas never changes the tile grid.
const (
	terrainStream    = 0x1f2e3d4c
	decorationStream = 0x5b6a7988
)

// obstacleAttempts bounds rejection sampling per requested obstacle.
const obstacleAttempts = 20

// IslandGenerator builds a circular island with carved paths.
type IslandGenerator struct {
	straight bool
}

// Name returns the registry name of the generator
func (g *IslandGenerator) Name() string {
	if g.straight {
		return "spokes"
	}
	return "island"
}

// streamRand returns a generator for one named stream of seed.
func streamRand(seed, stream int64) *rand.Rand {
	return rand.New(rand.NewSource(seed ^ stream))
}

// resolveSeed replaces a zero seed with a time-based one.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano()
	if s == 0 {
		s = 1
	}
	return s
}

// Generate builds the island grid and carves paths to every endpoint.
func (g *IslandGenerator) Generate(ctx context.Context, p Params) (*Terrain, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("terrain")
	_, span := tracer.Start(ctx, "terrain.generate")
	defer span.End()
	startTime := time.Now()

	seed := resolveSeed(p.Seed)
	rng := streamRand(seed, terrainStream)

	b, err := world.NewBuilder(p.Cols, p.Rows, p.TileSize, world.Water)
	if err != nil {
		return nil, err
	}

	t := &Terrain{
		Paths:  mapset.New[world.Point](),
		Seed:   seed,
		Center: world.Point{Col: p.Cols / 2, Row: p.Rows / 2},
		Radius: p.radius(),
	}

	maskIsland(b, t.Radius, p.SandWidth)

	for _, e := range p.Endpoints {
		end := clampPoint(e, p.Cols, p.Rows)
		t.Endpoints = append(t.Endpoints, end)
		route := g.route(t.Center, end, p, rng)
		carve(b, t.Paths, route, p.PathRadius)
	}

	if p.Landmarks {
		for _, e := range t.Endpoints {
			if corner, ok := placeLandmark(b, e, p.PathRadius); ok {
				t.Landmarks = append(t.Landmarks, corner)
			}
		}
	}
	placed := scatterObstacles(b, t.Paths, p.Obstacles, rng)

	t.Grid = b.Grid()

	span.SetAttributes(
		attribute.Int("terrain.cols", p.Cols),
		attribute.Int("terrain.rows", p.Rows),
		attribute.Int64("terrain.seed", seed),
		attribute.Float64("terrain.radius", t.Radius),
		attribute.Int("terrain.path_tiles", t.Paths.Size()),
		attribute.Int("terrain.landmarks", len(t.Landmarks)),
		attribute.Int("terrain.obstacles", placed),
		attribute.Int64("terrain.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return t, nil
}

// maskIsland turns every tile whose center lies within radius of the grid
// center into land: sand in the outer band of width sandWidth, grass inside.
func maskIsland(b *world.Builder, radius, sandWidth float64) {
	g := b.View()
	midC := float64(g.Cols()) / 2
	midR := float64(g.Rows()) / 2
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			d := math.Hypot(float64(c)+0.5-midC, float64(r)+0.5-midR)
			if d >= radius {
				continue
			}
			t := world.Grass
			if d >= radius-sandWidth {
				t = world.Sand
			}
			b.SetType(world.Point{Col: c, Row: r}, t)
		}
	}
}

// route returns the tiles from start to end, bent through one pivot unless
// the generator is straight. One random value is drawn per route either way.
func (g *IslandGenerator) route(start, end world.Point, p Params, rng *rand.Rand) []world.Point {
	offset := rng.Float64()*2 - 1
	if g.straight || start == end {
		return world.Line(start, end)
	}

	dx := float64(end.Col - start.Col)
	dy := float64(end.Row - start.Row)
	length := math.Hypot(dx, dy)
	bend := math.Min(float64(p.MaxBend), length/4)
	if bend < 1 {
		return world.Line(start, end)
	}

	// Perpendicular to the segment, scaled by the signed bend.
	mx := float64(start.Col+end.Col)/2 - dy/length*offset*bend
	my := float64(start.Row+end.Row)/2 + dx/length*offset*bend
	pivot := clampPoint(world.Point{Col: int(math.Round(mx)), Row: int(math.Round(my))}, p.Cols, p.Rows)

	first := world.Line(start, pivot)
	return append(first, world.Line(pivot, end)[1:]...)
}

// carve stamps the kernel on every route tile. Diagonal steps also stamp the
// shared corner so the carved set stays 4-connected for any kernel size.
// Tiles that were water are marked as bridges.
func carve(b *world.Builder, paths mapset.Set[world.Point], route []world.Point, radius int) {
	for i, p := range route {
		if i > 0 {
			prev := route[i-1]
			if prev.Col != p.Col && prev.Row != p.Row {
				stamp(b, paths, world.Point{Col: p.Col, Row: prev.Row}, radius)
			}
		}
		stamp(b, paths, p, radius)
	}
}

func stamp(b *world.Builder, paths mapset.Set[world.Point], center world.Point, radius int) {
	g := b.View()
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			q := center.Add(dc, dr)
			if !g.InBounds(q) || paths.Has(q) {
				continue
			}
			b.Set(q, world.Tile{Type: world.Path, Bridge: g.TypeAt(q) == world.Water})
			paths.Put(q)
		}
	}
}

// placeLandmark puts a 3x3 building one tile clear of the carved kernel
// around end, trying east, west, south and north in that order. The
// footprint never comes within two tiles of end.
func placeLandmark(b *world.Builder, end world.Point, pathRadius int) (world.Point, bool) {
	gap := max(pathRadius+2, 3)
	corners := []world.Point{
		end.Add(gap, -1),
		end.Add(-gap-2, -1),
		end.Add(-1, gap),
		end.Add(-1, -gap-2),
	}
	g := b.View()
	for _, corner := range corners {
		if !footprintFits(g, corner) {
			continue
		}
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				b.SetType(corner.Add(dc, dr), world.Building)
			}
		}
		return corner, true
	}
	return world.Point{}, false
}

func footprintFits(g *world.Grid, corner world.Point) bool {
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			switch g.TypeAt(corner.Add(dc, dr)) {
			case world.Grass, world.Sand:
			default:
				return false
			}
		}
	}
	return true
}

// scatterObstacles rejection-samples up to n obstacle tiles on grass that
// does not touch a carved tile, returning how many were placed.
func scatterObstacles(b *world.Builder, paths mapset.Set[world.Point], n int, rng *rand.Rand) int {
	g := b.View()
	placed := 0
	for attempt := 0; placed < n && attempt < n*obstacleAttempts; attempt++ {
		p := world.Point{Col: rng.Intn(g.Cols()), Row: rng.Intn(g.Rows())}
		if g.TypeAt(p) != world.Grass || touchesPath(paths, p) {
			continue
		}
		b.SetType(p, world.Obstacle)
		placed++
	}
	return placed
}

func touchesPath(paths mapset.Set[world.Point], p world.Point) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if paths.Has(p.Add(dc, dr)) {
				return true
			}
		}
	}
	return false
}
