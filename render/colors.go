package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbLitFloor = tcell.NewRGBColor(230, 220, 170) // Warm lamplight
	RgbLitWall  = tcell.NewRGBColor(255, 255, 255)
	RgbDimFloor = tcell.NewRGBColor(70, 72, 90)
	RgbDimWall  = tcell.NewRGBColor(110, 112, 130)
	RgbPlayer   = tcell.NewRGBColor(50, 255, 50) // Bright Green

	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
)

var (
	styleBackground = tcell.StyleDefault.Background(RgbBackground)
	stylePlayer     = styleBackground.Foreground(RgbPlayer).Bold(true)
	styleLitFloor   = styleBackground.Foreground(RgbLitFloor)
	styleLitWall    = styleBackground.Foreground(RgbLitWall).Bold(true)
	styleDimFloor   = styleBackground.Foreground(RgbDimFloor)
	styleDimWall    = styleBackground.Foreground(RgbDimWall)
	styleStatus     = tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
)
