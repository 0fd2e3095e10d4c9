package tui

import (
	"github.com/gdamore/tcell/v2"

	engineworld "islandnav/pkg/engine/world"
	"islandnav/pkg/game/terrain"
	"islandnav/pkg/game/world"
)

var (
	styleText         = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSubtle       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLabel        = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleLabelCurrent = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleAvatar       = tcell.StyleDefault.Foreground(tcell.ColorLime).Background(tcell.ColorBlack).Bold(true)
	styleRoute        = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
)

func tileOf(r world.TileRecord) engineworld.Tile {
	return engineworld.Tile{Type: r.Type, Bridge: r.Bridge}
}

func tileStyle(t engineworld.Tile) tcell.Style {
	base := tcell.StyleDefault
	switch t.Type {
	case engineworld.Water:
		return base.Foreground(tcell.NewRGBColor(120, 170, 255)).Background(tcell.NewRGBColor(20, 50, 120))
	case engineworld.Grass:
		return base.Foreground(tcell.NewRGBColor(90, 180, 90)).Background(tcell.NewRGBColor(30, 90, 40))
	case engineworld.Sand:
		return base.Foreground(tcell.NewRGBColor(200, 180, 120)).Background(tcell.NewRGBColor(170, 150, 90))
	case engineworld.Path:
		if t.Bridge {
			return base.Foreground(tcell.NewRGBColor(230, 200, 140)).Background(tcell.NewRGBColor(120, 80, 40))
		}
		return base.Foreground(tcell.NewRGBColor(230, 220, 200)).Background(tcell.NewRGBColor(150, 130, 100))
	case engineworld.Building:
		return base.Foreground(tcell.NewRGBColor(255, 160, 120)).Background(tcell.NewRGBColor(110, 50, 40)).Bold(true)
	case engineworld.Obstacle:
		return base.Foreground(tcell.NewRGBColor(160, 160, 160)).Background(tcell.NewRGBColor(30, 90, 40))
	default:
		return base
	}
}

func decorationStyle(k terrain.Kind) tcell.Style {
	switch k {
	case terrain.Tree, terrain.Bamboo:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(20, 120, 30)).Background(tcell.NewRGBColor(30, 90, 40))
	case terrain.Palm:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 130, 40)).Background(tcell.NewRGBColor(170, 150, 90))
	case terrain.Mountain:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200)).Background(tcell.NewRGBColor(30, 90, 40)).Bold(true)
	case terrain.House:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 60, 40)).Background(tcell.NewRGBColor(170, 150, 90))
	case terrain.Bird:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(20, 50, 120))
	default:
		return tcell.StyleDefault
	}
}
