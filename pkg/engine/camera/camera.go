// Package camera implements a smoothed, optionally clamped viewport that
// follows a focal point across a bounded world.
package camera

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMargin is how far outside the viewport a point still counts as visible.
const DefaultMargin = 64.0

// referenceStep is the frame interval a smoothing factor is calibrated for.
const referenceStep = 1.0 / 60.0

// ErrInvalidOptions is returned for unusable camera settings.
var ErrInvalidOptions = errors.New("invalid camera options")

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle, edges on the
// min side inclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Expand returns the rectangle grown by m on every side
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Options configures a Camera.
type Options struct {
	ViewportW, ViewportH float64
	WorldW, WorldH       float64

	// Smoothing in (0, 1]; 1 snaps to the target on every tick.
	Smoothing float64

	// Clamp keeps the viewport inside the world.
	Clamp bool

	// Margin for InView. Zero selects DefaultMargin; negative is invalid.
	Margin float64
}

// Camera tracks the viewport position for scrolling a large world.
// X, Y is the top-left corner of the viewport in world coordinates.
type Camera struct {
	x, y             float64
	w, h             float64
	targetX, targetY float64
	smoothing        float64

	worldW, worldH float64
	clamp          bool
	margin         float64
}

// New creates a camera whose viewport starts at the world origin.
func New(opts Options) (*Camera, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	margin := opts.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	return &Camera{
		w:         opts.ViewportW,
		h:         opts.ViewportH,
		smoothing: opts.Smoothing,
		worldW:    opts.WorldW,
		worldH:    opts.WorldH,
		clamp:     opts.Clamp,
		margin:    margin,
	}, nil
}

func (o Options) validate() error {
	if !positive(o.ViewportW) || !positive(o.ViewportH) {
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalidOptions, o.ViewportW, o.ViewportH)
	}
	if !positive(o.WorldW) || !positive(o.WorldH) {
		return fmt.Errorf("%w: world %vx%v", ErrInvalidOptions, o.WorldW, o.WorldH)
	}
	if !(o.Smoothing > 0 && o.Smoothing <= 1) {
		return fmt.Errorf("%w: smoothing %v not in (0,1]", ErrInvalidOptions, o.Smoothing)
	}
	if o.Margin < 0 || math.IsNaN(o.Margin) {
		return fmt.Errorf("%w: margin %v", ErrInvalidOptions, o.Margin)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// SetTarget records the desired focal point
func (c *Camera) SetTarget(x, y float64) {
	c.targetX = x
	c.targetY = y
}

// Target returns the current focal point
func (c *Camera) Target() (x, y float64) {
	return c.targetX, c.targetY
}

// Smoothing returns the per-tick smoothing factor
func (c *Camera) Smoothing() float64 {
	return c.smoothing
}

// Tick moves the viewport one step toward centering the target:
// viewport += (desired - viewport) * smoothing.
func (c *Camera) Tick() {
	c.step(c.smoothing)
}

// Update is the variable-timestep form of Tick. The factor is scaled so the
// response is the same at any frame rate, and equals Tick at 60 frames per second.
func (c *Camera) Update(dt float64) {
	if !(dt > 0) {
		return
	}
	alpha := 1.0
	if c.smoothing < 1 {
		alpha = 1 - math.Pow(1-c.smoothing, dt/referenceStep)
	}
	c.step(alpha)
}

// SnapTo centers the viewport on (x, y) immediately.
func (c *Camera) SnapTo(x, y float64) {
	c.SetTarget(x, y)
	c.step(1)
}

func (c *Camera) step(alpha float64) {
	desiredX := c.targetX - c.w/2
	desiredY := c.targetY - c.h/2
	if alpha >= 1 {
		c.x, c.y = desiredX, desiredY
	} else {
		c.x += (desiredX - c.x) * alpha
		c.y += (desiredY - c.y) * alpha
	}
	if c.clamp {
		c.x = clampAxis(c.x, c.w, c.worldW)
		c.y = clampAxis(c.y, c.h, c.worldH)
	}
}

// clampAxis keeps a viewport of size view inside a world of size world.
// When the world is smaller than the viewport the range [0, world-view]
// would be inverted, so the world is centered instead.
func clampAxis(pos, view, world float64) float64 {
	limit := world - view
	if limit < 0 {
		return limit / 2
	}
	if pos < 0 {
		return 0
	}
	if pos > limit {
		return limit
	}
	return pos
}

// Resize changes the viewport dimensions, keeping the current target.
func (c *Camera) Resize(w, h float64) error {
	if !positive(w) || !positive(h) {
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalidOptions, w, h)
	}
	c.w, c.h = w, h
	if c.clamp {
		c.x = clampAxis(c.x, c.w, c.worldW)
		c.y = clampAxis(c.y, c.h, c.worldH)
	}
	return nil
}

// Viewport returns the visible rectangle in world coordinates
func (c *Camera) Viewport() Rect {
	return Rect{X: c.x, Y: c.y, W: c.w, H: c.h}
}

// Margin returns the in-view margin
func (c *Camera) Margin() float64 {
	return c.margin
}

// InView reports whether a world point falls inside the viewport expanded
// by the margin on every side.
func (c *Camera) InView(x, y float64) bool {
	return InView(c.Viewport(), c.margin, x, y)
}

// InView is the viewport test used by both the camera and scene culling.
func InView(view Rect, margin, x, y float64) bool {
	return x >= view.X-margin && x <= view.X+view.W+margin &&
		y >= view.Y-margin && y <= view.Y+view.H+margin
}

// ToScreen converts a world position to viewport-relative coordinates.
func (c *Camera) ToScreen(x, y float64) (sx, sy float64) {
	return x - c.x, y - c.y
}

// ToWorld converts viewport-relative coordinates to a world position.
func (c *Camera) ToWorld(sx, sy float64) (x, y float64) {
	return sx + c.x, sy + c.y
}
