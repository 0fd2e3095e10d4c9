package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	engineworld "islandnav/pkg/engine/world"
	"islandnav/pkg/game/renderer"
	"islandnav/pkg/game/world"
)

// SaveScreenshotHTML saves the current camera view as an HTML file in dir
// and returns its path. One character is drawn per visible tile.
func SaveScreenshotHTML(w *world.World, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))
	if err := os.WriteFile(filename, []byte(ScreenshotHTML(w)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// ScreenshotHTML renders the current camera view as a standalone HTML page.
func ScreenshotHTML(w *world.World) string {
	scene := w.QueryScene()
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Island - Screenshot</title>
    <style>
        body { background-color: #0c1e46; color: #eee; font-family: 'Courier New', monospace; padding: 20px; }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .region { color: #ffe664; margin-bottom: 20px; }
        .map-container { background-color: #0f0f1a; padding: 20px; border-radius: 8px; display: inline-block; }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .avatar { color: #ffff5a; font-weight: bold; }
        .water { color: #4a7bd0; }
        .grass { color: #46a046; }
        .sand { color: #e1cd8c; }
        .path { color: #e6dcc8; font-weight: bold; }
        .bridge { color: #8c5f32; font-weight: bold; }
        .building { color: #ff8066; font-weight: bold; }
        .obstacle { color: #999; }
        .messages { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)
	b.WriteString(fmt.Sprintf(`    <div class="header">Seed %d</div>`+"\n", scene.Seed))

	if scene.ActivityActive {
		b.WriteString(fmt.Sprintf(`    <div class="region">Activity: %s</div>`+"\n", html.EscapeString(scene.Activity)))
		b.WriteString("</body>\n</html>\n")
		return b.String()
	}
	if scene.Region != "" {
		b.WriteString(fmt.Sprintf(`    <div class="region">In: %s</div>`+"\n", html.EscapeString(scene.Region)))
	}

	// Place tiles on a character grid keyed by tile coordinates.
	type cell struct {
		glyph rune
		class string
	}
	grid := make(map[engineworld.Point]cell)
	minC, minR, maxC, maxR := 0, 0, -1, -1
	for i, t := range scene.Tiles {
		tile := engineworld.Tile{Type: t.Type, Bridge: t.Bridge}
		class := t.Type.String()
		if t.Bridge {
			class = "bridge"
		}
		grid[engineworld.Point{Col: t.Col, Row: t.Row}] = cell{renderer.TileGlyph(tile), class}
		if i == 0 || t.Col < minC {
			minC = t.Col
		}
		if i == 0 || t.Row < minR {
			minR = t.Row
		}
		maxC, maxR = max(maxC, t.Col), max(maxR, t.Row)
	}
	if a, ok := w.Terrain().Grid.TileAt(w.Avatar().Pos.X, w.Avatar().Pos.Y); ok {
		grid[a] = cell{renderer.IconAvatar, "avatar"}
	}

	b.WriteString(`    <div class="map-container">` + "\n")
	for row := minR; row <= maxR; row++ {
		b.WriteString(`        <div class="map-row">`)
		for col := minC; col <= maxC; col++ {
			c, ok := grid[engineworld.Point{Col: col, Row: row}]
			if !ok {
				b.WriteString(" ")
				continue
			}
			b.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, c.class, html.EscapeString(string(c.glyph))))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	b.WriteString(`    <div class="messages">` + "\n")
	for _, l := range scene.Labels {
		b.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", html.EscapeString(l.Text)))
	}
	for _, m := range scene.Messages {
		b.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", html.EscapeString(m)))
	}
	b.WriteString("    </div>\n</body>\n</html>\n")
	return b.String()
}
