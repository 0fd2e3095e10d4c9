package terrain

import (
	"context"
	"math"
	"math/rand"

	"islandnav/pkg/engine/world"
)

// Kind is a cosmetic decoration category.
type Kind uint8

const (
	Tree Kind = iota
	Palm
	Bamboo
	Mountain
	House
	Bird
)

func (k Kind) String() string {
	switch k {
	case Tree:
		return "tree"
	case Palm:
		return "palm"
	case Bamboo:
		return "bamboo"
	case Mountain:
		return "mountain"
	case House:
		return "house"
	case Bird:
		return "bird"
	default:
		return "unknown"
	}
}

// Biome returns the tile types a decoration of this kind may stand on.
func (k Kind) Biome() []world.TileType {
	switch k {
	case Tree, Bamboo, Mountain:
		return []world.TileType{world.Grass}
	case Palm, House:
		return []world.TileType{world.Sand}
	case Bird:
		return []world.TileType{world.Water}
	default:
		return nil
	}
}

// Allows reports whether t is in the kind's biome
func (k Kind) Allows(t world.TileType) bool {
	for _, b := range k.Biome() {
		if b == t {
			return true
		}
	}
	return false
}

// Visual carries renderer hints; it has no effect on the world.
type Visual struct {
	Size    float64 // world units
	Variant int
}

// Decoration is a cosmetic object. It never takes part in collision.
type Decoration struct {
	Kind Kind
	X, Y float64
	Visual
}

// Quota asks for Count decorations of Kind at polar offsets between
// MinRadius and MaxRadius tiles from an anchor.
type Quota struct {
	Kind                 Kind
	Count                int
	MinRadius, MaxRadius float64
}

// attemptFactor bounds rejection sampling at Count*attemptFactor draws.
const attemptFactor = 10

// RegionQuotas are scattered around every region endpoint.
var RegionQuotas = []Quota{
	{Kind: Tree, Count: 6, MinRadius: 3, MaxRadius: 9},
	{Kind: Bamboo, Count: 3, MinRadius: 3, MaxRadius: 7},
	{Kind: Palm, Count: 4, MinRadius: 2, MaxRadius: 10},
	{Kind: House, Count: 1, MinRadius: 3, MaxRadius: 8},
	{Kind: Mountain, Count: 1, MinRadius: 5, MaxRadius: 10},
}

// fieldQuotas are scattered across the whole island; radii are fractions
// of the island radius.
var fieldQuotas = []Quota{
	{Kind: Tree, Count: 200, MinRadius: 0.5, MaxRadius: 1},
	{Kind: House, Count: 50, MinRadius: 0.9, MaxRadius: 1},
	{Kind: Bird, Count: 8, MinRadius: 1, MaxRadius: 1.15},
}

// Scatter places decorations around each anchor and across the island by
// rejection sampling: a polar offset is drawn and accepted only when the
// tile under it is in the kind's biome and not carved. The result depends
// only on t and the state of rng.
func Scatter(t *Terrain, anchors []world.Point, rng *rand.Rand) []Decoration {
	var out []Decoration
	g := t.Grid
	for _, a := range anchors {
		origin := g.TileCenter(a)
		for _, q := range RegionQuotas {
			out = sample(out, t, origin, q, g.TileSize(), rng)
		}
	}

	origin := world.Vec2{X: float64(g.Cols()) / 2 * g.TileSize(), Y: float64(g.Rows()) / 2 * g.TileSize()}
	scale := t.Radius * g.TileSize()
	for _, q := range fieldQuotas {
		out = sample(out, t, origin, q, scale, rng)
	}
	return out
}

func sample(out []Decoration, t *Terrain, origin world.Vec2, q Quota, scale float64, rng *rand.Rand) []Decoration {
	g := t.Grid
	placed := 0
	for attempt := 0; placed < q.Count && attempt < q.Count*attemptFactor; attempt++ {
		angle := rng.Float64() * 2 * math.Pi
		r := (q.MinRadius + rng.Float64()*(q.MaxRadius-q.MinRadius)) * scale
		x := origin.X + math.Cos(angle)*r
		y := origin.Y + math.Sin(angle)*r
		p, ok := g.TileAt(x, y)
		if !ok || t.IsPath(p) || !q.Kind.Allows(g.TypeAt(p)) {
			continue
		}
		out = append(out, Decoration{
			Kind:   q.Kind,
			X:      x,
			Y:      y,
			Visual: visualFor(q.Kind, g.TileSize(), rng),
		})
		placed++
	}
	return out
}

func visualFor(k Kind, tileSize float64, rng *rand.Rand) Visual {
	var lo, hi float64
	switch k {
	case Tree, Palm:
		lo, hi = 0.25, 0.5
	case Bamboo:
		lo, hi = 0.5, 1
	case Mountain:
		lo, hi = 1.5, 2.5
	case House:
		lo, hi = 1, 1
	case Bird:
		lo, hi = 0.5, 0.5
	}
	return Visual{
		Size:    (lo + rng.Float64()*(hi-lo)) * tileSize,
		Variant: rng.Intn(3),
	}
}

// Build generates terrain with DefaultGenerator and scatters decorations
// from an independent stream of the same seed.
func Build(ctx context.Context, p Params) (*Terrain, []Decoration, error) {
	return BuildWith(ctx, DefaultGenerator, p)
}

// BuildWith is Build with an explicit generator.
func BuildWith(ctx context.Context, gen Generator, p Params) (*Terrain, []Decoration, error) {
	t, err := gen.Generate(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	decos := Scatter(t, t.Endpoints, streamRand(t.Seed, decorationStream))
	return t, decos, nil
}
