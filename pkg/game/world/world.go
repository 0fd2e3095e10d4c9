// Package world is the game-side facade over the island: it owns the terrain,
// regions, camera and pathfinder, moves the avatar each tick and produces
// culled scenes for renderers.
package world

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"islandnav/pkg/engine/camera"
	"islandnav/pkg/engine/pathfind"
	"islandnav/pkg/engine/world"
	"islandnav/pkg/game/activity"
	"islandnav/pkg/game/config"
	"islandnav/pkg/game/i18n"
	"islandnav/pkg/game/region"
	"islandnav/pkg/game/terrain"
)

// ErrNotWalkable is returned when the avatar is asked to stand on a blocked tile.
var ErrNotWalkable = errors.New("position is not walkable")

// ErrUnknownRegion is returned by TravelTo for a name not in the region index.
var ErrUnknownRegion = errors.New("unknown region")

// Avatar is the player-controlled walker.
type Avatar struct {
	Pos    world.Vec2
	Facing world.Direction
	Moving bool
	Fast   bool
}

// Option customizes a World at construction.
type Option func(*World)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) { w.log = log }
}

// WithDispatcher sets where region activities are launched.
func WithDispatcher(d activity.Dispatcher) Option {
	return func(w *World) { w.dispatcher = d }
}

// WithRegions overrides the configured region catalog.
func WithRegions(regions []region.Region) Option {
	return func(w *World) { w.regionList = regions }
}

// WithCatalog sets the translation catalog used for labels and messages.
func WithCatalog(c *i18n.Catalog) Option {
	return func(w *World) { w.catalog = c }
}

// World owns one island and everything moving on it. It is not safe for
// concurrent use; one goroutine drives Tick and QueryScene.
type World struct {
	id  string
	log *zap.Logger

	terrain     *terrain.Terrain
	decorations []terrain.Decoration
	regions     *region.Index
	regionList  []region.Region
	camera      *camera.Camera
	finder      *pathfind.Finder
	planner     *pathfind.Planner
	dispatcher  activity.Dispatcher
	catalog     *i18n.Catalog

	avatar    Avatar
	speed     float64
	fastMult  float64
	maxStride float64

	current  region.Region
	inRegion bool
	active   *activity.Request

	travel   travelState
	messages MessageLog
}

// New generates the island described by cfg and places the avatar at its center.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{id: uuid.New().String()}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		w.log = zap.NewNop()
	}
	w.log = w.log.With(zap.String("world", w.id))
	if w.dispatcher == nil {
		w.dispatcher = activity.NewLogDispatcher(w.log)
	}
	if w.catalog == nil {
		w.catalog = i18n.New("", "")
	}

	if w.regionList == nil {
		regions, err := loadRegions(cfg.Regions)
		if err != nil {
			return nil, err
		}
		w.regionList = regions
	}

	wc := cfg.World
	idx, err := region.NewIndex(w.regionList, wc.Cols, wc.Rows, wc.TileSize, cfg.Regions.HitRadius)
	if err != nil {
		return nil, err
	}
	w.regions = idx

	gen, err := terrain.Lookup(wc.Generator)
	if err != nil {
		return nil, err
	}
	params := terrain.Params{
		Cols:         wc.Cols,
		Rows:         wc.Rows,
		TileSize:     wc.TileSize,
		IslandRadius: wc.IslandRadius,
		SandWidth:    wc.SandWidth,
		PathRadius:   wc.PathRadius,
		MaxBend:      wc.MaxBend,
		Endpoints:    idx.Endpoints(),
		Seed:         cfg.Seed,
		Landmarks:    wc.Landmarks,
		Obstacles:    wc.Obstacles,
	}
	w.terrain, w.decorations, err = terrain.BuildWith(ctx, gen, params)
	if err != nil {
		return nil, fmt.Errorf("generate terrain: %w", err)
	}

	worldW, worldH := w.terrain.Grid.WorldSize()
	w.camera, err = camera.New(camera.Options{
		ViewportW: cfg.Camera.ViewportW,
		ViewportH: cfg.Camera.ViewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		Smoothing: cfg.Camera.Smoothing,
		Clamp:     cfg.Camera.Clamp,
		Margin:    cfg.Camera.Margin,
	})
	if err != nil {
		return nil, err
	}

	w.finder = pathfind.NewFinder(w.terrain.Grid)
	w.planner = pathfind.NewPlanner(w.finder, true)

	w.speed = cfg.Avatar.Speed
	w.fastMult = cfg.Avatar.FastMultiplier
	w.maxStride = wc.TileSize / 2
	w.avatar = Avatar{Pos: w.terrain.Grid.TileCenter(w.terrain.Center), Facing: world.South}
	w.camera.SnapTo(w.avatar.Pos.X, w.avatar.Pos.Y)
	w.updateRegion()

	w.log.Info("world created",
		zap.Int64("seed", w.terrain.Seed),
		zap.String("generator", gen.Name()),
		zap.Int("cols", wc.Cols),
		zap.Int("rows", wc.Rows),
		zap.Int("path_tiles", w.terrain.Paths.Size()),
		zap.Int("bridges", w.terrain.Bridges()),
		zap.Int("landmarks", len(w.terrain.Landmarks)),
		zap.Int("decorations", len(w.decorations)),
		zap.Int("regions", len(w.regionList)),
	)
	return w, nil
}

func loadRegions(cfg config.RegionsConfig) ([]region.Region, error) {
	if cfg.File == "" {
		return region.Default(), nil
	}
	return region.Load(cfg.File)
}

// Close cancels any background path search
func (w *World) Close() {
	w.planner.CancelAll()
}

// ID returns the unique identifier of this world instance
func (w *World) ID() string {
	return w.id
}

// Seed returns the seed that reproduces this island
func (w *World) Seed() int64 {
	return w.terrain.Seed
}

// Terrain returns the generated terrain
func (w *World) Terrain() *terrain.Terrain {
	return w.terrain
}

// Decorations returns every scattered decoration
func (w *World) Decorations() []terrain.Decoration {
	return w.decorations
}

// Regions returns the region index
func (w *World) Regions() *region.Index {
	return w.regions
}

// Camera returns the world's camera
func (w *World) Camera() *camera.Camera {
	return w.camera
}

// Avatar returns a copy of the avatar state
func (w *World) Avatar() Avatar {
	return w.avatar
}

// Catalog returns the translation catalog
func (w *World) Catalog() *i18n.Catalog {
	return w.catalog
}

// Messages returns the recent status messages
func (w *World) Messages() []string {
	return w.messages.All()
}

// CurrentRegion returns the region the avatar is standing in, if any
func (w *World) CurrentRegion() (region.Region, bool) {
	return w.current, w.inRegion
}

// ActivityActive reports whether a region activity is running
func (w *World) ActivityActive() bool {
	return w.active != nil
}

// Teleport moves the avatar to (x, y) without travel, if the spot is walkable.
func (w *World) Teleport(x, y float64) error {
	if !w.terrain.Grid.IsWalkable(x, y) {
		return fmt.Errorf("%w: (%v, %v)", ErrNotWalkable, x, y)
	}
	w.cancelTravel()
	w.avatar.Pos = world.Vec2{X: x, Y: y}
	w.camera.SnapTo(x, y)
	w.updateRegion()
	return nil
}

// FindPath returns tile-center waypoints between two world positions, or
// nil when either end is blocked or no route exists.
func (w *World) FindPath(from, to world.Vec2) []world.Vec2 {
	return w.finder.FindPath(from, to)
}

// Interact launches the activity of the region under the avatar. It returns
// false with a nil error when there is no region here or an activity is
// already running.
func (w *World) Interact() (region.Region, bool, error) {
	if w.active != nil {
		return region.Region{}, false, nil
	}
	r, ok := w.regions.Query(w.avatar.Pos.X, w.avatar.Pos.Y)
	if !ok {
		return region.Region{}, false, nil
	}
	req := activity.Request{
		WorldID:    w.id,
		Region:     r.Name,
		Label:      w.catalog.RegionLabel(r.Name, r.Label),
		ActivityID: r.ActivityID,
		Seed:       w.terrain.Seed,
	}
	if err := w.dispatcher.Launch(req); err != nil {
		w.log.Warn("activity launch failed", zap.String("region", r.Name), zap.Error(err))
		return r, false, err
	}
	w.cancelTravel()
	w.active = &req
	w.avatar.Moving = false
	w.messages.Add(w.catalog.Getf("ACTIVITY_ACTIVE", req.Label))
	w.log.Info("activity started", zap.String("region", r.Name), zap.String("activity", r.ActivityID))
	return r, true, nil
}

// CompleteActivity resumes the world after an activity finishes.
func (w *World) CompleteActivity() {
	if w.active == nil {
		return
	}
	w.log.Info("activity completed", zap.String("activity", w.active.ActivityID))
	w.active = nil
}

// updateRegion refreshes the current region and logs transitions.
func (w *World) updateRegion() {
	r, ok := w.regions.Query(w.avatar.Pos.X, w.avatar.Pos.Y)
	switch {
	case ok && (!w.inRegion || r.Name != w.current.Name):
		if w.inRegion {
			w.log.Debug("region left", zap.String("region", w.current.Name))
		}
		w.current, w.inRegion = r, true
		label := w.catalog.RegionLabel(r.Name, r.Label)
		w.messages.Add(w.catalog.Getf("PRESS_INTERACT", label))
		w.log.Debug("region entered", zap.String("region", r.Name))
	case !ok && w.inRegion:
		w.log.Debug("region left", zap.String("region", w.current.Name))
		w.current, w.inRegion = region.Region{}, false
	}
}
