// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	engineworld "islandnav/pkg/engine/world"
	"islandnav/pkg/game/renderer"
	"islandnav/pkg/game/world"
)

const mapDumpFilename = "map.txt"

// DumpOptions controls what DumpMap writes.
type DumpOptions struct {
	Color       bool // ANSI colors via the renderer palette
	Decorations bool // overlay decorations on the tile map
}

// DumpMap writes a debug dump of w: metadata, legend, the tile map with the
// avatar and region endpoints overlaid, then regions and landmarks.
// Format is human-readable (sections, key: value).
func DumpMap(out io.Writer, w *world.World, opts DumpOptions) error {
	bw := bufio.NewWriter(out)
	t := w.Terrain()
	g := t.Grid
	avatar, _ := g.TileAt(w.Avatar().Pos.X, w.Avatar().Pos.Y)

	fmt.Fprintln(bw, "=== MAP DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "world_id: %s\n", w.ID())
	fmt.Fprintf(bw, "seed: %d\n", t.Seed)
	fmt.Fprintf(bw, "cols: %d\n", g.Cols())
	fmt.Fprintf(bw, "rows: %d\n", g.Rows())
	fmt.Fprintf(bw, "tile_size: %g\n", g.TileSize())
	fmt.Fprintf(bw, "island_radius: %g\n", t.Radius)
	fmt.Fprintf(bw, "center: %d,%d\n", t.Center.Col, t.Center.Row)
	fmt.Fprintf(bw, "avatar: %d,%d\n", avatar.Col, avatar.Row)
	fmt.Fprintf(bw, "path_tiles: %d\n", t.Paths.Size())
	fmt.Fprintf(bw, "bridges: %d\n", t.Bridges())
	fmt.Fprintf(bw, "decorations: %d\n", len(w.Decorations()))
	fmt.Fprintln(bw, "coordinate_system: col,row (0-based)")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintf(bw, "%c water  %c grass  %c sand  %c path  %c bridge  %c building  %c obstacle  %c avatar  1-9 region endpoints\n",
		renderer.IconWater, renderer.IconGrass, renderer.IconSand, renderer.IconPath, renderer.IconBridge,
		renderer.IconBuilding, renderer.IconObstacle, renderer.IconAvatar)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map ---")
	writeMapGrid(bw, w, avatar, opts)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Regions ---")
	idx := w.Regions()
	for i, r := range idx.Regions() {
		ep, _ := idx.Endpoint(r.Name)
		fmt.Fprintf(bw, "  %d name: %q activity: %q endpoint: %d,%d\n", i+1, r.Name, r.ActivityID, ep.Col, ep.Row)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Landmarks ---")
	if len(t.Landmarks) == 0 {
		fmt.Fprintln(bw, "  (none)")
	}
	for _, l := range t.Landmarks {
		fmt.Fprintf(bw, "  corner: %d,%d\n", l.Col, l.Row)
	}
	return bw.Flush()
}

// writeMapGrid writes one line per row. Overlays win over decorations,
// decorations over tiles.
func writeMapGrid(out io.Writer, w *world.World, avatar engineworld.Point, opts DumpOptions) {
	g := w.Terrain().Grid

	overlay := make(map[engineworld.Point]rune)
	if opts.Decorations {
		for _, d := range w.Decorations() {
			if p, ok := g.TileAt(d.X, d.Y); ok {
				overlay[p] = renderer.DecorationGlyph(d.Kind)
			}
		}
	}
	for i, ep := range w.Regions().Endpoints() {
		if i < 9 {
			overlay[ep] = rune('1' + i)
		}
	}
	overlay[avatar] = renderer.IconAvatar

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			p := engineworld.Point{Col: col, Row: row}
			tile, _ := g.Tile(p)
			glyph := renderer.TileGlyph(tile)
			style := renderer.TileStyle(tile)
			if r, ok := overlay[p]; ok {
				glyph = r
				if p == avatar {
					style = renderer.ColorAvatar
				} else if r >= '1' && r <= '9' {
					style = renderer.ColorLabel
				}
			}
			if opts.Color {
				fmt.Fprint(out, style.Sprint(string(glyph)))
			} else {
				fmt.Fprintf(out, "%c", glyph)
			}
		}
		fmt.Fprintln(out)
	}
}

// DumpMapToFile writes an uncolored dump to path, or to map.txt in the
// working directory when path is empty. It returns the absolute path written.
func DumpMapToFile(w *world.World, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, w, DumpOptions{Decorations: true}); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
