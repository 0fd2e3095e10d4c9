package ebiten

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"islandnav/pkg/engine/input"
	"islandnav/pkg/game/world"
)

// EbitenRenderer is the windowed backend. It implements ebiten.Game.
type EbitenRenderer struct {
	log *zap.Logger
	ctx context.Context

	world *world.World
	input *input.State

	windowWidth  int
	windowHeight int

	fontSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace
}

// New creates a new Ebiten renderer with the given initial window size
func New(log *zap.Logger, width, height int) *EbitenRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &EbitenRenderer{
		log:          log,
		input:        input.NewState(),
		windowWidth:  width,
		windowHeight: height,
		faces:        make(map[float64]*text.GoTextFace),
	}
}

func (e *EbitenRenderer) Name() string { return "ebiten" }

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	src, err := loadFontSource()
	if err != nil {
		return err
	}
	e.fontSource = src
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Island")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Close is a no-op; Ebiten tears the window down when RunGame returns.
func (e *EbitenRenderer) Close() {}

// Run opens the window and blocks until it is closed or the player quits.
func (e *EbitenRenderer) Run(ctx context.Context, w *world.World) error {
	e.ctx = ctx
	e.world = w
	e.log.Info("window opening", zap.Int("width", e.windowWidth), zap.Int("height", e.windowHeight))
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Layout uses the window size as the logical screen and keeps the camera
// viewport in step with it.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
		if err := e.world.Camera().Resize(float64(outsideWidth), float64(outsideHeight)); err != nil {
			e.log.Warn("camera resize failed", zap.Error(err))
		}
	}
	return e.windowWidth, e.windowHeight
}
