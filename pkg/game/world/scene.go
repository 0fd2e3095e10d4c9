package world

import (
	"math"

	"islandnav/pkg/engine/camera"
	"islandnav/pkg/engine/world"
	"islandnav/pkg/game/terrain"
)

// TileRecord is one visible tile. Screen coordinates are the tile's
// top-left corner relative to the viewport.
type TileRecord struct {
	Type             world.TileType
	Bridge           bool
	Col, Row         int
	ScreenX, ScreenY float64
}

// DecorationRecord is one visible decoration, positioned at its anchor.
type DecorationRecord struct {
	Kind             terrain.Kind
	ScreenX, ScreenY float64
	Visual           terrain.Visual
}

// Label is a region name drawn at the region's position.
type Label struct {
	Region           string
	Text             string
	ScreenX, ScreenY float64
	Current          bool
}

// AvatarRecord is the avatar as seen through the viewport.
type AvatarRecord struct {
	ScreenX, ScreenY float64
	Facing           world.Direction
	Moving           bool
	Fast             bool
}

// Scene is everything a renderer needs for one frame. While an activity
// runs the scene is empty apart from the Activity fields.
type Scene struct {
	View     camera.Rect
	TileSize float64
	Seed     int64

	Tiles       []TileRecord
	Decorations []DecorationRecord
	Labels      []Label
	Avatar      AvatarRecord
	// Route holds the screen positions of the remaining travel waypoints.
	Route []world.Vec2

	Region         string
	ActivityActive bool
	Activity       string
	ActivityLabel  string
	Messages       []string
}

// QueryScene returns the records visible through the world's camera.
func (w *World) QueryScene() Scene {
	if w.active != nil {
		return w.activityScene()
	}
	return w.QuerySceneIn(w.camera.Viewport())
}

func (w *World) activityScene() Scene {
	return Scene{ActivityActive: true, Activity: w.active.ActivityID, ActivityLabel: w.active.Label}
}

// QuerySceneIn culls against an arbitrary viewport, using the camera's margin.
func (w *World) QuerySceneIn(view camera.Rect) Scene {
	if w.active != nil {
		return w.activityScene()
	}
	g := w.terrain.Grid
	ts := g.TileSize()
	margin := w.camera.Margin()

	s := Scene{
		View:     view,
		TileSize: ts,
		Seed:     w.terrain.Seed,
		Messages: w.messages.All(),
	}

	// Tiles overlapping the viewport grown by the margin.
	area := view.Expand(margin)
	c0 := max(0, int(math.Floor(area.X/ts)))
	r0 := max(0, int(math.Floor(area.Y/ts)))
	c1 := min(g.Cols()-1, int(math.Ceil((area.X+area.W)/ts))-1)
	r1 := min(g.Rows()-1, int(math.Ceil((area.Y+area.H)/ts))-1)
	if c1 >= c0 && r1 >= r0 {
		s.Tiles = make([]TileRecord, 0, (c1-c0+1)*(r1-r0+1))
	}
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			p := world.Point{Col: c, Row: r}
			tile, _ := g.Tile(p)
			s.Tiles = append(s.Tiles, TileRecord{
				Type:    tile.Type,
				Bridge:  tile.Bridge,
				Col:     c,
				Row:     r,
				ScreenX: float64(c)*ts - view.X,
				ScreenY: float64(r)*ts - view.Y,
			})
		}
	}

	for _, d := range w.decorations {
		if !camera.InView(view, margin, d.X, d.Y) {
			continue
		}
		s.Decorations = append(s.Decorations, DecorationRecord{
			Kind:    d.Kind,
			ScreenX: d.X - view.X,
			ScreenY: d.Y - view.Y,
			Visual:  d.Visual,
		})
	}

	for _, r := range w.regions.Regions() {
		pos := w.regions.Position(r)
		if !camera.InView(view, margin, pos.X, pos.Y) {
			continue
		}
		s.Labels = append(s.Labels, Label{
			Region:  r.Name,
			Text:    w.catalog.RegionLabel(r.Name, r.Label),
			ScreenX: pos.X - view.X,
			ScreenY: pos.Y - view.Y,
			Current: w.inRegion && w.current.Name == r.Name,
		})
	}

	s.Avatar = AvatarRecord{
		ScreenX: w.avatar.Pos.X - view.X,
		ScreenY: w.avatar.Pos.Y - view.Y,
		Facing:  w.avatar.Facing,
		Moving:  w.avatar.Moving,
		Fast:    w.avatar.Fast,
	}
	for _, wp := range w.Route() {
		s.Route = append(s.Route, world.Vec2{X: wp.X - view.X, Y: wp.Y - view.Y})
	}
	if w.inRegion {
		s.Region = w.catalog.RegionLabel(w.current.Name, w.current.Label)
	}
	return s
}
