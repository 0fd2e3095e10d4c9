// Package ebiten provides an Ebiten-based 2D graphical renderer for the island.
package ebiten

import (
	"image/color"

	engineworld "islandnav/pkg/engine/world"
	"islandnav/pkg/game/terrain"
)

// Color palette
var (
	colorBackground      = color.RGBA{12, 30, 70, 255}
	colorWater           = color.RGBA{30, 80, 160, 255}
	colorWaterDeep       = color.RGBA{24, 66, 140, 255}
	colorGrass           = color.RGBA{70, 150, 70, 255}
	colorSand            = color.RGBA{225, 205, 140, 255}
	colorPath            = color.RGBA{190, 160, 110, 255}
	colorBridge          = color.RGBA{140, 95, 50, 255}
	colorBridgeRail      = color.RGBA{90, 60, 30, 255}
	colorBuilding        = color.RGBA{170, 70, 60, 255}
	colorBuildingRoof    = color.RGBA{120, 40, 35, 255}
	colorObstacle        = color.RGBA{120, 120, 125, 255}
	colorAvatar          = color.RGBA{255, 240, 90, 255}
	colorAvatarOutline   = color.RGBA{40, 30, 10, 255}
	colorRoute           = color.RGBA{255, 255, 255, 160}
	colorLabel           = color.RGBA{255, 255, 255, 255}
	colorLabelCurrent    = color.RGBA{255, 230, 100, 255}
	colorLabelBackground = color.RGBA{20, 20, 40, 170}
	colorText            = color.RGBA{200, 210, 245, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255}
	colorPanelBackground = color.RGBA{30, 30, 50, 220}
)

// Font sizes at 1x
const (
	labelFontSize = 14.0
	hudFontSize   = 13.0
	titleFontSize = 22.0
)

const (
	gamepadDeadZone = 0.3
	routeDotRadius  = 3
	hudPadding      = 10
)

func tileColor(t engineworld.TileType, bridge bool, col, row int) color.RGBA {
	switch t {
	case engineworld.Water:
		if (col+row)%2 == 0 {
			return colorWaterDeep
		}
		return colorWater
	case engineworld.Grass:
		return colorGrass
	case engineworld.Sand:
		return colorSand
	case engineworld.Path:
		if bridge {
			return colorBridge
		}
		return colorPath
	case engineworld.Building:
		return colorBuilding
	case engineworld.Obstacle:
		return colorGrass
	default:
		return colorBackground
	}
}

func decorationColor(k terrain.Kind, variant int) color.RGBA {
	switch k {
	case terrain.Tree:
		return [...]color.RGBA{{30, 110, 40, 255}, {40, 125, 45, 255}, {25, 95, 35, 255}}[variant%3]
	case terrain.Palm:
		return color.RGBA{50, 140, 60, 255}
	case terrain.Bamboo:
		return color.RGBA{120, 170, 60, 255}
	case terrain.Mountain:
		return color.RGBA{130, 125, 120, 255}
	case terrain.House:
		return [...]color.RGBA{{200, 90, 70, 255}, {90, 120, 200, 255}, {230, 200, 90, 255}}[variant%3]
	case terrain.Bird:
		return color.RGBA{245, 245, 245, 255}
	default:
		return colorSubtle
	}
}
