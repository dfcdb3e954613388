package render

import (
	"cinder-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Narrow glyphs take their colour from here; emoji ignore it.
var tileColors = map[gamemap.TileType]tcell.Color{
	gamemap.GroundNormal: tcell.ColorDarkKhaki,
	gamemap.GroundBurnt:  tcell.ColorDimGray,
	gamemap.GroundWater:  tcell.ColorSteelBlue,
	gamemap.GroundOil:    tcell.ColorSaddleBrown,
	gamemap.WallStone:    tcell.ColorGray,
	gamemap.WallMetal:    tcell.ColorSilver,
	gamemap.TreeNormal:   tcell.ColorForestGreen,
	gamemap.TreeBurning:  tcell.ColorOrangeRed,
	gamemap.TreeBurnt:    tcell.ColorDarkGray,
	gamemap.FireTile:     tcell.ColorOrange,
	gamemap.OverlayWater: tcell.ColorDodgerBlue,
	gamemap.OverlayOil:   tcell.ColorSaddleBrown,
}

var (
	styleBase       = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleRemembered = styleBase.Foreground(tcell.ColorDarkSlateGray)
	styleCursor     = styleBase.Foreground(tcell.ColorYellow)
	stylePath       = styleBase.Foreground(tcell.ColorLightGoldenrodYellow)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLog        = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleRule       = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// tileStyle is the style of a cell seen now, or remembered from before.
func tileStyle(t gamemap.TileType, visible bool) tcell.Style {
	if !visible {
		return styleRemembered
	}
	if c, ok := tileColors[t]; ok {
		return styleBase.Foreground(c)
	}
	return styleBase
}
