package render

import (
	"image/color"

	"github.com/lixenwraith/shadowcast/grid"
)

// CellRGBA returns the foreground colour Cell would use, for front ends that
// draw tiles as pixels. ok is false for cells that draw nothing
func CellRGBA(m *grid.Map, x, y, px, py int) (c color.RGBA, ok bool) {
	r, style := Cell(m, x, y, px, py)
	if r == ' ' {
		return color.RGBA{}, false
	}
	fg, _, _ := style.Decompose()
	cr, cg, cb := fg.RGB()
	return color.RGBA{R: uint8(cr), G: uint8(cg), B: uint8(cb), A: 0xff}, true
}

// BackgroundRGBA is RgbBackground as an image colour
func BackgroundRGBA() color.RGBA {
	r, g, b := RgbBackground.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
