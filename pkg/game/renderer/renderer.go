package renderer

import (
	"github.com/gookit/color"

	"islandnav/pkg/engine/world"
	"islandnav/pkg/game/terrain"
)

// Glyphs shared by the terminal backends and the map dump
const (
	IconAvatar   = '@'
	IconWater    = '~'
	IconGrass    = '.'
	IconSand     = ':'
	IconPath     = '+'
	IconBridge   = '='
	IconBuilding = '#'
	IconObstacle = 'o'
	IconRoute    = '*'
	IconUnknown  = '?'
)

var (
	ColorWater    color.Style
	ColorGrass    color.Style
	ColorSand     color.Style
	ColorPath     color.Style
	ColorBridge   color.Style
	ColorBuilding color.Style
	ColorObstacle color.Style
	ColorAvatar   color.Style
	ColorLabel    color.Style
	ColorSubtle   color.Style
	ColorAction   color.Style
)

// InitColors initializes the ANSI color styles
func InitColors() {
	ColorWater = color.Style{color.FgBlue}
	ColorGrass = color.Style{color.FgGreen}
	ColorSand = color.Style{color.FgYellow}
	ColorPath = color.Style{color.FgWhite, color.OpBold}
	ColorBridge = color.Style{color.FgYellow, color.OpBold}
	ColorBuilding = color.Style{color.FgRed, color.OpBold}
	ColorObstacle = color.Style{color.FgGray}
	ColorAvatar = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorLabel = color.Style{color.FgCyan, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}
}

func init() {
	InitColors()
}

// TileGlyph returns the character drawn for a tile
func TileGlyph(t world.Tile) rune {
	switch t.Type {
	case world.Water:
		return IconWater
	case world.Grass:
		return IconGrass
	case world.Sand:
		return IconSand
	case world.Path:
		if t.Bridge {
			return IconBridge
		}
		return IconPath
	case world.Building:
		return IconBuilding
	case world.Obstacle:
		return IconObstacle
	default:
		return IconUnknown
	}
}

// TileStyle returns the ANSI style for a tile
func TileStyle(t world.Tile) color.Style {
	switch t.Type {
	case world.Water:
		return ColorWater
	case world.Grass:
		return ColorGrass
	case world.Sand:
		return ColorSand
	case world.Path:
		if t.Bridge {
			return ColorBridge
		}
		return ColorPath
	case world.Building:
		return ColorBuilding
	case world.Obstacle:
		return ColorObstacle
	default:
		return ColorSubtle
	}
}

// DecorationGlyph returns the character drawn for a decoration kind
func DecorationGlyph(k terrain.Kind) rune {
	switch k {
	case terrain.Tree:
		return '♣'
	case terrain.Palm:
		return '¥'
	case terrain.Bamboo:
		return '|'
	case terrain.Mountain:
		return '^'
	case terrain.House:
		return '⌂'
	case terrain.Bird:
		return 'v'
	default:
		return IconUnknown
	}
}

// DecorationStyle returns the ANSI style for a decoration kind
func DecorationStyle(k terrain.Kind) color.Style {
	switch k {
	case terrain.Tree, terrain.Bamboo:
		return color.Style{color.FgGreen, color.OpBold}
	case terrain.Palm:
		return color.Style{color.FgLightGreen}
	case terrain.Mountain:
		return color.Style{color.FgGray, color.OpBold}
	case terrain.House:
		return color.Style{color.FgRed}
	case terrain.Bird:
		return color.Style{color.FgWhite}
	default:
		return ColorSubtle
	}
}

// FacingGlyph returns an arrow for the avatar's facing
func FacingGlyph(d world.Direction) rune {
	switch d {
	case world.North:
		return '^'
	case world.East:
		return '>'
	case world.South:
		return 'v'
	case world.West:
		return '<'
	default:
		return IconAvatar
	}
}
