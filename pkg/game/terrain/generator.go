package terrain

import (
	"context"
	"fmt"
	"sort"
)

// Generator is an interface for island generation algorithms
type Generator interface {
	Generate(ctx context.Context, p Params) (*Terrain, error)
	Name() string
}

// Available generators
var (
	// Island bends every path through a random pivot.
	Island = &IslandGenerator{}
	// Spokes carves straight paths from the center, as the first island did.
	Spokes = &IslandGenerator{straight: true}
)

// DefaultGenerator is the default island generator
var DefaultGenerator Generator = Island

var generators = map[string]Generator{
	Island.Name(): Island,
	Spokes.Name(): Spokes,
}

// Lookup returns the generator registered under name. An empty name selects
// DefaultGenerator.
func Lookup(name string) (Generator, error) {
	if name == "" {
		return DefaultGenerator, nil
	}
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown generator %q (have %v)", ErrInvalidParams, name, Names())
	}
	return g, nil
}

// Names lists the registered generators in sorted order
func Names() []string {
	names := make([]string, 0, len(generators))
	for n := range generators {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Generate runs DefaultGenerator.
func Generate(ctx context.Context, p Params) (*Terrain, error) {
	return DefaultGenerator.Generate(ctx, p)
}
