// Package renderer defines the display backends that drive a world and
// the glyphs and colors they share.
package renderer

import (
	"context"
	"errors"

	"islandnav/pkg/game/world"
)

// ErrNoRenderer is returned by Run when no backend has been set.
var ErrNoRenderer = errors.New("no renderer set")

// Renderer is a display backend. Run owns the frame loop: it samples input,
// ticks the world and draws the scene until the player quits or ctx ends.
// Implementations include a terminal UI (tcell), a window (Ebiten) and a
// headless tour used for smoke runs.
type Renderer interface {
	// Init prepares the backend (screen, window, fonts)
	Init() error

	// Run drives w until quit. It returns nil on a normal quit.
	Run(ctx context.Context, w *world.World) error

	// Close releases the backend
	Close()

	// Name identifies the backend in logs and config
	Name() string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Run initializes the current renderer and drives w with it.
func Run(ctx context.Context, w *world.World) error {
	if Current == nil {
		return ErrNoRenderer
	}
	if err := Current.Init(); err != nil {
		return err
	}
	defer Current.Close()
	return Current.Run(ctx, w)
}
