package world

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"islandnav/pkg/engine/input"
	"islandnav/pkg/engine/pathfind"
	"islandnav/pkg/engine/world"
)

// maxTickDt caps one tick so a stalled frame cannot fling the avatar.
const maxTickDt = 0.25

// arriveEpsilon is how close to a waypoint counts as reaching it.
const arriveEpsilon = 1e-6

type travelState struct {
	target  string
	pending *pathfind.Future
	route   []world.Vec2
	next    int
}

func (t *travelState) active() bool {
	return t.pending != nil || t.next < len(t.route)
}

// Tick advances the world by dt seconds. It does nothing while an activity
// is running.
func (w *World) Tick(dt float64, in input.Frame) {
	if w.active != nil {
		return
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	dt = math.Min(dt, maxTickDt)

	if in.Cancel {
		w.cancelTravel()
	}
	w.pollTravel()

	speed := w.speed
	if in.Fast {
		speed *= w.fastMult
	}
	budget := speed * dt

	w.avatar.Fast = in.Fast
	w.avatar.Moving = false
	dir := world.Vec2{X: in.DX, Y: in.DY}
	switch {
	case in.Moving() && dir.IsFinite():
		w.cancelTravel()
		if l := dir.Len(); l > 1 {
			dir = dir.Scale(1 / l)
		}
		w.face(dir)
		w.avatar.Moving = w.walk(dir.Scale(budget)) != walkBlocked
	case w.travel.next < len(w.travel.route):
		w.followRoute(budget)
	}

	w.camera.SetTarget(w.avatar.Pos.X, w.avatar.Pos.Y)
	w.camera.Update(dt)
	w.updateRegion()

	if in.Interact {
		if _, _, err := w.Interact(); err != nil {
			w.messages.Add(err.Error())
		}
	}
}

type walkResult int

const (
	walkFull walkResult = iota
	walkSlid
	walkBlocked
)

// walk moves the avatar by delta in strides of at most half a tile. Each
// stride tries the full move, then its X part, then its Y part.
func (w *World) walk(delta world.Vec2) walkResult {
	dist := delta.Len()
	if dist == 0 {
		return walkFull
	}
	steps := int(math.Ceil(dist / w.maxStride))
	stride := delta.Scale(1 / float64(steps))
	g := w.terrain.Grid
	result := walkFull
	for i := 0; i < steps; i++ {
		pos := w.avatar.Pos
		switch next := pos.Add(stride); {
		case g.IsWalkable(next.X, next.Y):
			w.avatar.Pos = next
		case stride.X != 0 && g.IsWalkable(next.X, pos.Y):
			w.avatar.Pos = world.Vec2{X: next.X, Y: pos.Y}
			result = walkSlid
		case stride.Y != 0 && g.IsWalkable(pos.X, next.Y):
			w.avatar.Pos = world.Vec2{X: pos.X, Y: next.Y}
			result = walkSlid
		default:
			if i == 0 {
				return walkBlocked
			}
			return walkSlid
		}
	}
	return result
}

// face points the avatar along the dominant axis of dir.
func (w *World) face(dir world.Vec2) {
	if d, ok := world.DirectionOf(dir.X, dir.Y); ok {
		w.avatar.Facing = d
	}
}

// TravelTo plans a route to the named region in the background; the avatar
// walks it on later ticks. Manual movement or a new TravelTo cancels it.
func (w *World) TravelTo(ctx context.Context, name string) error {
	r, ok := w.regions.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}
	goal, _ := w.regions.EndpointWorld(r)
	w.travel = travelState{
		target:  name,
		pending: w.planner.Request(ctx, w.avatar.Pos, goal),
	}
	w.messages.Add(w.catalog.Getf("TRAVELLING_TO", w.catalog.RegionLabel(r.Name, r.Label)))
	w.log.Debug("travel requested", zap.String("region", name))
	return nil
}

// Travelling reports whether a route is being planned or walked
func (w *World) Travelling() bool {
	return w.travel.active()
}

// WaitRoute blocks until a pending travel search has finished. The route is
// picked up by the next Tick.
func (w *World) WaitRoute(ctx context.Context) error {
	f := w.travel.pending
	if f == nil {
		return nil
	}
	_, err := f.Wait(ctx)
	return err
}

// Route returns the waypoints still ahead of the avatar
func (w *World) Route() []world.Vec2 {
	return append([]world.Vec2(nil), w.travel.route[w.travel.next:]...)
}

func (w *World) cancelTravel() {
	if w.travel.pending != nil {
		w.travel.pending.Cancel()
	}
	w.travel = travelState{}
}

// pollTravel picks up a finished background search without blocking.
func (w *World) pollTravel() {
	f := w.travel.pending
	if f == nil {
		return
	}
	path, done := f.Result()
	if !done {
		return
	}
	w.travel.pending = nil
	if len(path) == 0 {
		w.log.Info("no route", zap.String("region", w.travel.target), zap.Error(f.Err()))
		w.messages.Add(w.catalog.Getf("NO_ROUTE", w.travelLabel()))
		w.travel = travelState{}
		return
	}
	w.travel.route = path
	// The first waypoint is the center of the tile the avatar started on.
	w.travel.next = 0
}

// travelLabel is the display name of the travel target.
func (w *World) travelLabel() string {
	r, ok := w.regions.Lookup(w.travel.target)
	if !ok {
		return w.travel.target
	}
	return w.catalog.RegionLabel(r.Name, r.Label)
}

// followRoute spends up to budget world units walking toward the next waypoints.
func (w *World) followRoute(budget float64) {
	for budget > 0 && w.travel.next < len(w.travel.route) {
		target := w.travel.route[w.travel.next]
		seg := target.Sub(w.avatar.Pos)
		d := seg.Len()
		if d <= arriveEpsilon {
			w.travel.next++
			continue
		}
		w.face(seg)
		step := seg
		if d > budget {
			step = seg.Scale(budget / d)
		}
		if w.walk(step) != walkFull {
			w.log.Debug("travel blocked", zap.String("region", w.travel.target))
			w.cancelTravel()
			return
		}
		w.avatar.Moving = true
		if d <= budget {
			w.avatar.Pos = target
			w.travel.next++
		}
		budget -= math.Min(d, budget)
	}
	if w.travel.next >= len(w.travel.route) && len(w.travel.route) > 0 {
		w.log.Debug("travel arrived", zap.String("region", w.travel.target))
		w.travel = travelState{}
	}
}
