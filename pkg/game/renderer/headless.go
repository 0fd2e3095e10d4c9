package renderer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"islandnav/pkg/engine/input"
	"islandnav/pkg/game/world"
)

// tourStep is the fixed simulation step of the headless backend.
const tourStep = 1.0 / 60.0

// Headless visits every region in turn with no display: it travels there,
// launches the activity and completes it straight away.
type Headless struct {
	log *zap.Logger

	// MaxTicksPerLeg bounds each trip between regions.
	MaxTicksPerLeg int

	Visited []string
}

// NewHeadless creates a headless tour backend
func NewHeadless(log *zap.Logger) *Headless {
	if log == nil {
		log = zap.NewNop()
	}
	return &Headless{log: log, MaxTicksPerLeg: 60 * 60}
}

func (h *Headless) Init() error { return nil }
func (h *Headless) Close()      {}
func (h *Headless) Name() string { return "none" }

// Run tours the regions of w. A region that cannot be reached is logged and skipped.
func (h *Headless) Run(ctx context.Context, w *world.World) error {
	for _, r := range w.Regions().Regions() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.TravelTo(ctx, r.Name); err != nil {
			return err
		}
		if err := w.WaitRoute(ctx); err != nil {
			return err
		}
		ticks := 0
		for w.Travelling() && ticks < h.MaxTicksPerLeg {
			w.Tick(tourStep, input.Frame{})
			ticks++
		}
		cur, ok := w.CurrentRegion()
		if !ok || cur.Name != r.Name {
			h.log.Warn("region not reached", zap.String("region", r.Name), zap.Int("ticks", ticks))
			continue
		}
		if _, launched, err := w.Interact(); err != nil || !launched {
			h.log.Warn("activity not launched", zap.String("region", r.Name), zap.Error(err))
			continue
		}
		w.CompleteActivity()
		h.Visited = append(h.Visited, r.Name)
		h.log.Info("region visited", zap.String("region", r.Name), zap.Int("ticks", ticks))
	}
	if len(h.Visited) == 0 && len(w.Regions().Regions()) > 0 {
		return fmt.Errorf("headless tour reached none of %d regions", len(w.Regions().Regions()))
	}
	return nil
}
