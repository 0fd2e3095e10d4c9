// Package tui renders the island in a terminal with tcell, one tile per cell.
package tui

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"islandnav/pkg/engine/input"
	"islandnav/pkg/engine/terminal"
	"islandnav/pkg/game/renderer"
	"islandnav/pkg/game/world"
)

// ErrNotTerminal is returned by Init when stdout is not a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// hudRows is the number of terminal rows reserved below the map.
const hudRows = 3

const frameInterval = time.Second / 30

// TUIRenderer is the terminal backend
type TUIRenderer struct {
	log    *zap.Logger
	screen tcell.Screen
	input  *input.State
	events chan tcell.Event
	quit   chan struct{}
}

// New creates a new TUI renderer
func New(log *zap.Logger) *TUIRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &TUIRenderer{log: log, input: input.NewState()}
}

func (t *TUIRenderer) Name() string { return "tui" }

// Init takes over the terminal
func (t *TUIRenderer) Init() error {
	if !terminal.IsTerminal() {
		return ErrNotTerminal
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	t.screen = s
	t.events = make(chan tcell.Event, 64)
	t.quit = make(chan struct{})
	return nil
}

// Close restores the terminal
func (t *TUIRenderer) Close() {
	if t.screen == nil {
		return
	}
	close(t.quit)
	t.screen.Fini()
	t.screen = nil
}

// Run polls keys on a goroutine and ticks the world on a fixed frame clock.
// Terminals report no key-up, so held actions are released after every frame
// and key auto-repeat keeps the avatar walking.
func (t *TUIRenderer) Run(ctx context.Context, w *world.World) error {
	go t.pollEvents(t.screen, t.events, t.quit)
	t.resize(w)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-t.events:
			if done := t.handleEvent(ctx, w, ev); done {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			f := t.input.Frame()
			if f.Quit {
				return nil
			}
			if w.ActivityActive() {
				if f.Interact {
					w.CompleteActivity()
				}
			} else {
				w.Tick(dt, f)
			}
			t.input.ReleaseAll()
			t.draw(w)
		}
	}
}

func (t *TUIRenderer) pollEvents(s tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// handleEvent feeds one terminal event into the input state. It returns true on Ctrl-C.
func (t *TUIRenderer) handleEvent(ctx context.Context, w *world.World, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize(w)
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if n, ok := travelIndex(ev.Key(), ev.Rune()); ok {
			regions := w.Regions().Regions()
			if n < len(regions) && !w.ActivityActive() {
				if err := w.TravelTo(ctx, regions[n].Name); err != nil {
					t.log.Warn("travel failed", zap.Error(err))
				}
			}
			return false
		}
		for _, code := range KeyCodes(ev.Key(), ev.Rune(), ev.Modifiers()) {
			t.input.Press(input.RawInput{Device: input.DeviceTerminal, Code: code, Timestamp: ev.When()})
		}
	}
	return false
}

// resize fits the camera to the map area of the terminal.
func (t *TUIRenderer) resize(w *world.World) {
	cols, rows := t.screen.Size()
	rows = max(1, rows-hudRows)
	ts := w.Terrain().Grid.TileSize()
	if err := w.Camera().Resize(float64(cols)*ts, float64(rows)*ts); err != nil {
		t.log.Warn("camera resize failed", zap.Error(err))
	}
}

// KeyCodes converts a tcell key into the raw codes understood by the input
// bindings. An upper-case letter also reports shift.
func KeyCodes(k tcell.Key, r rune, mod tcell.ModMask) []string {
	var codes []string
	if mod&tcell.ModShift != 0 {
		codes = append(codes, "shift")
	}
	switch k {
	case tcell.KeyUp:
		codes = append(codes, "arrow_up")
	case tcell.KeyDown:
		codes = append(codes, "arrow_down")
	case tcell.KeyLeft:
		codes = append(codes, "arrow_left")
	case tcell.KeyRight:
		codes = append(codes, "arrow_right")
	case tcell.KeyEnter:
		codes = append(codes, "enter")
	case tcell.KeyEscape:
		codes = append(codes, "escape")
	case tcell.KeyRune:
		switch {
		case r == ' ':
			codes = append(codes, "space")
		case r >= 'A' && r <= 'Z':
			if mod&tcell.ModShift == 0 {
				codes = append(codes, "shift")
			}
			codes = append(codes, string(r-'A'+'a'))
		default:
			codes = append(codes, string(r))
		}
	}
	return codes
}

// travelIndex maps the digit keys 1-9 to a zero-based region index.
func travelIndex(k tcell.Key, r rune) (int, bool) {
	if k != tcell.KeyRune || r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

func (t *TUIRenderer) draw(w *world.World) {
	s := t.screen
	s.Clear()
	cols, rows := s.Size()
	mapRows := rows - hudRows
	scene := w.QueryScene()
	cat := w.Catalog()

	if scene.ActivityActive {
		drawText(s, 2, rows/2-1, styleLabel, cat.Getf("ACTIVITY_ACTIVE", scene.ActivityLabel))
		drawText(s, 2, rows/2+1, styleSubtle, cat.Get("ACTIVITY_DONE"))
		s.Show()
		return
	}

	ts := scene.TileSize
	cell := func(sx, sy float64) (int, int, bool) {
		x, y := int(math.Floor(sx/ts)), int(math.Floor(sy/ts))
		return x, y, x >= 0 && x < cols && y >= 0 && y < mapRows
	}

	for _, tile := range scene.Tiles {
		x, y, ok := cell(tile.ScreenX+ts/2, tile.ScreenY+ts/2)
		if !ok {
			continue
		}
		tl := tileOf(tile)
		s.SetContent(x, y, renderer.TileGlyph(tl), nil, tileStyle(tl))
	}
	for _, d := range scene.Decorations {
		if x, y, ok := cell(d.ScreenX, d.ScreenY); ok {
			s.SetContent(x, y, renderer.DecorationGlyph(d.Kind), nil, decorationStyle(d.Kind))
		}
	}
	for _, wp := range scene.Route {
		if x, y, ok := cell(wp.X, wp.Y); ok {
			s.SetContent(x, y, renderer.IconRoute, nil, styleRoute)
		}
	}
	for _, l := range scene.Labels {
		x, y, ok := cell(l.ScreenX, l.ScreenY)
		if !ok || y == 0 {
			continue
		}
		style := styleLabel
		if l.Current {
			style = styleLabelCurrent
		}
		drawText(s, x-len([]rune(l.Text))/2, y-1, style, l.Text)
	}
	if x, y, ok := cell(scene.Avatar.ScreenX, scene.Avatar.ScreenY); ok {
		s.SetContent(x, y, renderer.IconAvatar, nil, styleAvatar)
	}

	hud := mapRows
	status := cat.Getf("SEED", scene.Seed)
	if scene.Region != "" {
		status = scene.Region + "  " + status
	}
	drawText(s, 0, hud, styleLabel, status)
	if n := len(scene.Messages); n > 0 {
		drawText(s, 0, hud+1, styleText, scene.Messages[n-1])
	}
	drawText(s, 0, hud+2, styleSubtle, cat.Get("HELP"))
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
