package pathfind

import (
	"context"
	"sync"

	"islandnav/pkg/engine/world"
)

// Future is the pending result of a background path request.
type Future struct {
	done   chan struct{}
	cancel context.CancelFunc
	path   []world.Vec2
	err    error
}

// Done is closed once the search has finished or been cancelled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result returns the path and true once the search has finished. A nil path
// with true means no route exists or the request was cancelled.
func (f *Future) Result() ([]world.Vec2, bool) {
	select {
	case <-f.done:
		return f.path, true
	default:
		return nil, false
	}
}

// Err reports why the search stopped early, if it did.
func (f *Future) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Wait blocks until the search finishes or ctx ends.
func (f *Future) Wait(ctx context.Context) ([]world.Vec2, error) {
	select {
	case <-f.done:
		return f.path, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cancel stops the search if it is still running.
func (f *Future) Cancel() {
	f.cancel()
}

// Planner runs searches off the caller's goroutine. Only the latest request
// matters: a new Request cancels the one before it.
type Planner struct {
	finder *Finder
	smooth bool

	mu      sync.Mutex
	current *Future
}

// NewPlanner creates a background planner. With smooth set, finished paths
// are passed through Smooth.
func NewPlanner(finder *Finder, smooth bool) *Planner {
	return &Planner{finder: finder, smooth: smooth}
}

// Request starts a search from start to goal and supersedes any search
// still in flight.
func (p *Planner) Request(ctx context.Context, start, goal world.Vec2) *Future {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future{done: make(chan struct{}), cancel: cancel}

	p.mu.Lock()
	if p.current != nil {
		p.current.Cancel()
	}
	p.current = f
	p.mu.Unlock()

	go func() {
		defer close(f.done)
		defer cancel()
		path, err := p.finder.FindPathContext(ctx, start, goal)
		if err != nil {
			f.err = err
			return
		}
		if p.smooth {
			path = Smooth(p.finder.Grid(), path)
		}
		f.path = path
	}()
	return f
}

// Current returns the most recent request, or nil if none was made.
func (p *Planner) Current() *Future {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// CancelAll cancels the in-flight request, if any.
func (p *Planner) CancelAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil {
		p.current.Cancel()
		p.current = nil
	}
}
