// Package render draws a grid.Map and its lighting to a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/shadowcast/grid"
)

// View draws the map viewport on every row but the last, which holds the status line
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Viewport returns the map coordinate shown at the top-left screen cell,
// keeping (px, py) centred until the view reaches a map edge
func Viewport(mapW, mapH, cols, rows, px, py int) (ox, oy int) {
	ox = max(0, min(px-cols/2, mapW-cols))
	oy = max(0, min(py-rows/2, mapH-rows))
	return ox, oy
}

// Cell returns the rune and style for map tile (x, y) seen from (px, py)
func Cell(m *grid.Map, x, y, px, py int) (rune, tcell.Style) {
	switch {
	case x == px && y == py:
		return grid.Source, stylePlayer
	case !m.InBounds(x, y):
		return ' ', styleBackground
	case m.Seen(x, y):
		if m.Opaque(x, y) {
			return rune(m.At(x, y)), styleLitWall
		}
		return rune(m.At(x, y)), styleLitFloor
	case m.Remembered(x, y):
		if m.Opaque(x, y) {
			return rune(m.At(x, y)), styleDimWall
		}
		return rune(m.At(x, y)), styleDimFloor
	}
	return ' ', styleBackground
}

// Draw renders the map around the player. The caller shows the screen
func (v *View) Draw(m *grid.Map, px, py int) {
	cols, rows := v.screen.Size()
	rows--
	if cols <= 0 || rows <= 0 {
		return
	}
	ox, oy := Viewport(m.Width, m.Height, cols, rows, px, py)
	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < cols; sx++ {
			r, style := Cell(m, ox+sx, oy+sy, px, py)
			v.screen.SetContent(sx, sy, r, nil, style)
		}
	}
}

// DrawStatus fills the bottom row with line, truncated to the screen width
func (v *View) DrawStatus(line string) {
	cols, rows := v.screen.Size()
	if rows <= 0 {
		return
	}
	y := rows - 1
	runes := []rune(line)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, y, r, nil, styleStatus)
	}
}
