package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	engineworld "islandnav/pkg/engine/world"
	"islandnav/pkg/game/terrain"
	"islandnav/pkg/game/world"
)

// Draw renders the current scene (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	scene := e.world.QueryScene()
	if scene.ActivityActive {
		e.drawActivity(screen, scene)
		return
	}

	ts := float32(scene.TileSize)
	for _, t := range scene.Tiles {
		drawTile(screen, t, ts)
	}
	for _, d := range scene.Decorations {
		drawDecoration(screen, d)
	}
	for _, wp := range scene.Route {
		vector.DrawFilledCircle(screen, float32(wp.X), float32(wp.Y), routeDotRadius, colorRoute, true)
	}
	drawAvatar(screen, scene.Avatar, ts)
	for _, l := range scene.Labels {
		e.drawLabel(screen, l)
	}
	e.drawHUD(screen, scene)
}

func drawTile(screen *ebiten.Image, t world.TileRecord, ts float32) {
	x, y := float32(t.ScreenX), float32(t.ScreenY)
	// One pixel of overlap hides seams when the camera sits between pixels.
	vector.DrawFilledRect(screen, x, y, ts+1, ts+1, tileColor(t.Type, t.Bridge, t.Col, t.Row), false)

	switch t.Type {
	case engineworld.Path:
		if t.Bridge {
			vector.StrokeLine(screen, x, y+2, x+ts, y+2, 2, colorBridgeRail, false)
			vector.StrokeLine(screen, x, y+ts-2, x+ts, y+ts-2, 2, colorBridgeRail, false)
		}
	case engineworld.Building:
		inset := ts / 6
		vector.DrawFilledRect(screen, x+inset, y+inset, ts-2*inset, ts-2*inset, colorBuildingRoof, false)
	case engineworld.Obstacle:
		vector.DrawFilledCircle(screen, x+ts/2, y+ts/2, ts*0.4, colorObstacle, true)
	}
}

func drawDecoration(screen *ebiten.Image, d world.DecorationRecord) {
	x, y := float32(d.ScreenX), float32(d.ScreenY)
	s := float32(d.Visual.Size)
	c := decorationColor(d.Kind, d.Visual.Variant)

	switch d.Kind {
	case terrain.Tree:
		vector.DrawFilledRect(screen, x-s/12, y, s/6, s/3, color.RGBA{90, 60, 30, 255}, false)
		vector.DrawFilledCircle(screen, x, y-s/6, s/3, c, true)
	case terrain.Palm:
		vector.StrokeLine(screen, x, y+s/3, x+s/8, y-s/4, s/10, color.RGBA{120, 90, 50, 255}, true)
		vector.DrawFilledCircle(screen, x+s/8, y-s/4, s/4, c, true)
	case terrain.Bamboo:
		for i := float32(-1); i <= 1; i++ {
			vector.DrawFilledRect(screen, x+i*s/5-s/20, y-s/2, s/10, s, c, false)
		}
	case terrain.Mountain:
		fillTriangle(screen, x-s/2, y+s/3, x+s/2, y+s/3, x, y-s/2, c)
		fillTriangle(screen, x-s/8, y-s/3, x+s/8, y-s/3, x, y-s/2, color.RGBA{240, 240, 240, 255})
	case terrain.House:
		vector.DrawFilledRect(screen, x-s/3, y-s/6, 2*s/3, s/2, color.RGBA{235, 225, 200, 255}, false)
		fillTriangle(screen, x-s/2, y-s/6, x+s/2, y-s/6, x, y-s/2, c)
	case terrain.Bird:
		vector.StrokeLine(screen, x-s/2, y-s/4, x, y, 2, c, true)
		vector.StrokeLine(screen, x, y, x+s/2, y-s/4, 2, c, true)
	}
}

func fillTriangle(screen *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, c color.Color) {
	var path vector.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	path.LineTo(x2, y2)
	path.Close()
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(c)
	vector.FillPath(screen, &path, nil, drawOpts)
}

func drawAvatar(screen *ebiten.Image, a world.AvatarRecord, ts float32) {
	x, y := float32(a.ScreenX), float32(a.ScreenY)
	r := ts * 0.35
	vector.DrawFilledCircle(screen, x, y, r+2, colorAvatarOutline, true)
	vector.DrawFilledCircle(screen, x, y, r, colorAvatar, true)

	dx, dy := a.Facing.Delta()
	vector.StrokeLine(screen, x, y, x+float32(dx)*r, y+float32(dy)*r, 3, colorAvatarOutline, true)
}

func (e *EbitenRenderer) drawLabel(screen *ebiten.Image, l world.Label) {
	face := e.face(labelFontSize)
	w, h := text.Measure(l.Text, face, 0)
	x := l.ScreenX - w/2
	y := l.ScreenY - h - float64(hudPadding)
	vector.DrawFilledRect(screen, float32(x-4), float32(y-2), float32(w+8), float32(h+4), colorLabelBackground, false)

	col := colorLabel
	if l.Current {
		col = colorLabelCurrent
	}
	e.drawText(screen, l.Text, x, y, col, face)
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, scene world.Scene) {
	face := e.face(hudFontSize)
	cat := e.world.Catalog()
	lineH := face.Size + 6
	h := float32(lineH*3 + hudPadding)
	top := float32(e.windowHeight) - h
	vector.DrawFilledRect(screen, 0, top, float32(e.windowWidth), h, colorPanelBackground, false)

	y := float64(top) + hudPadding/2
	status := cat.Getf("SEED", scene.Seed)
	if scene.Region != "" {
		status = scene.Region + "   " + status
	}
	e.drawText(screen, status, hudPadding, y, colorLabelCurrent, face)
	if n := len(scene.Messages); n > 0 {
		e.drawText(screen, scene.Messages[n-1], hudPadding, y+lineH, colorText, face)
	}
	e.drawText(screen, cat.Get("HELP"), hudPadding, y+2*lineH, colorSubtle, face)
}

func (e *EbitenRenderer) drawActivity(screen *ebiten.Image, scene world.Scene) {
	cat := e.world.Catalog()
	title := cat.Getf("ACTIVITY_ACTIVE", scene.ActivityLabel)
	tf := e.face(titleFontSize)
	tw, th := text.Measure(title, tf, 0)
	cx, cy := float64(e.windowWidth)/2, float64(e.windowHeight)/2
	e.drawText(screen, title, cx-tw/2, cy-th, colorLabel, tf)

	hint := cat.Get("ACTIVITY_DONE")
	hf := e.face(hudFontSize)
	hw, _ := text.Measure(hint, hf, 0)
	e.drawText(screen, hint, cx-hw/2, cy+hudPadding, colorSubtle, hf)
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}
