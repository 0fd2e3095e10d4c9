package pathfind

import (
	"context"
	"testing"
	"time"

	"islandnav/pkg/engine/world"
)

func TestSmooth_KeepsEndpointsAndDropsStraightRuns(t *testing.T) {
	g := buildGrid(t, 1,
		"......",
		"......",
		"......",
	)
	f := NewFinder(g)
	path := f.FindPath(world.Vec2{X: 0.5, Y: 0.5}, world.Vec2{X: 5.5, Y: 0.5})
	smoothed := Smooth(g, path)
	if len(smoothed) != 2 {
		t.Fatalf("len(smoothed) = %d, want 2: %v", len(smoothed), smoothed)
	}
	if smoothed[0] != path[0] || smoothed[1] != path[len(path)-1] {
		t.Errorf("smoothed endpoints %v, want %v and %v", smoothed, path[0], path[len(path)-1])
	}
}

func TestSmooth_KeepsCornerAroundObstacle(t *testing.T) {
	g := buildGrid(t, 1,
		"...",
		"##.",
		"...",
	)
	f := NewFinder(g)
	path := f.FindPath(world.Vec2{X: 0.5, Y: 0.5}, world.Vec2{X: 0.5, Y: 2.5})
	smoothed := Smooth(g, path)
	if len(smoothed) < 3 {
		t.Fatalf("smoothed path %v cuts through water", smoothed)
	}
	for i := 1; i < len(smoothed); i++ {
		a, _ := g.TileAt(smoothed[i-1].X, smoothed[i-1].Y)
		b, _ := g.TileAt(smoothed[i].X, smoothed[i].Y)
		if !world.HasLineOfSight(g, a, b) {
			t.Errorf("segment %v -> %v is not walkable", a, b)
		}
	}
}

func TestPlanner_DeliversResult(t *testing.T) {
	g := buildGrid(t, 1, "....", "....")
	p := NewPlanner(NewFinder(g), false)
	fut := p.Request(context.Background(), world.Vec2{X: 0.5, Y: 0.5}, world.Vec2{X: 3.5, Y: 1.5})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	path, err := fut.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait error: %v", err)
	}
	if len(path) != 5 {
		t.Errorf("len(path) = %d, want 5", len(path))
	}
	if got, ok := fut.Result(); !ok || len(got) != len(path) {
		t.Errorf("Result() = %v, %v after completion", got, ok)
	}
}

func TestPlanner_NewRequestSupersedesOld(t *testing.T) {
	g := buildGrid(t, 1, "....", "....")
	p := NewPlanner(NewFinder(g), false)

	parent, stop := context.WithCancel(context.Background())
	stop()
	// The first request starts with a dead context so it can only end cancelled.
	first := p.Request(parent, world.Vec2{X: 0.5, Y: 0.5}, world.Vec2{X: 3.5, Y: 1.5})
	second := p.Request(context.Background(), world.Vec2{X: 0.5, Y: 0.5}, world.Vec2{X: 3.5, Y: 0.5})

	if p.Current() != second {
		t.Error("Current() is not the latest request")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := first.Wait(ctx); err == nil {
		t.Error("superseded request finished without error")
	}
	path, err := second.Wait(ctx)
	if err != nil || len(path) != 4 {
		t.Errorf("second request = %v, %v; want 4 waypoints", path, err)
	}
}
