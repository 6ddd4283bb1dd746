// Package grid provides a tile map that answers fov.Callbacks, tracking which
// tiles are lit by the current request, which were ever lit, and how often the
// engine touched each tile.
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Tile glyphs
const (
	Floor  = '.'
	Wall   = '#'
	Source = '@'

	// Render glyphs for tiles remembered but not currently lit, and never seen
	DimFloor = ','
	DimWall  = '%'
	Unknown  = ' '
)

var (
	ErrEmptyRaster  = errors.New("grid: empty raster")
	ErrRaggedRaster = errors.New("grid: rows differ in length")
)

// Point is a tile coordinate
type Point struct {
	X, Y int
}

// Map is a rectangular tile map. Tiles outside the map are opaque and never lit.
// Not safe for concurrent use
type Map struct {
	Width, Height int

	// Start is the '@' tile of a parsed raster; HasStart is false when there was none
	Start    Point
	HasStart bool

	tiles      []byte
	seen       []bool
	remembered []bool
	tested     []int
	applied    []int
}

// New creates a width x height map of floor tiles
func New(width, height int) *Map {
	n := width * height
	m := &Map{
		Width:      width,
		Height:     height,
		tiles:      make([]byte, n),
		seen:       make([]bool, n),
		remembered: make([]bool, n),
		tested:     make([]int, n),
		applied:    make([]int, n),
	}
	for i := range m.tiles {
		m.tiles[i] = Floor
	}
	return m
}

// Parse builds a map from rows, top row first. '#' is a wall, '@' marks the
// start and is stored as floor, any other glyph is kept as a see-through tile
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyRaster
	}
	m := New(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != m.Width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d: %w", y, len(row), m.Width, ErrRaggedRaster)
		}
		for x := 0; x < len(row); x++ {
			c := row[x]
			if c == Source {
				m.Start = Point{x, y}
				m.HasStart = true
				c = Floor
			}
			m.tiles[y*m.Width+x] = c
		}
	}
	return m, nil
}

// maxRowBytes bounds one raster row read by Load
const maxRowBytes = 16 << 20

// Load parses a raster from r. Trailing blank lines are ignored
func Load(r io.Reader) (*Map, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRowBytes)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read raster: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return Parse(rows)
}

// LoadFile parses the raster stored at path
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// InBounds reports whether (x, y) lies on the map
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile glyph, Wall outside the map
func (m *Map) At(x, y int) byte {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.tiles[y*m.Width+x]
}

// Set changes a tile glyph; off-map writes are ignored
func (m *Map) Set(x, y int, glyph byte) {
	if m.InBounds(x, y) {
		m.tiles[y*m.Width+x] = glyph
	}
}

// Opaque reports whether (x, y) blocks light
func (m *Map) Opaque(x, y int) bool {
	return m.At(x, y) == Wall
}

// TestOpacity implements fov.Callbacks
func (m *Map) TestOpacity(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	i := y*m.Width + x
	m.tested[i]++
	return m.tiles[i] == Wall
}

// ApplyLighting implements fov.Callbacks
func (m *Map) ApplyLighting(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	i := y*m.Width + x
	m.applied[i]++
	m.seen[i] = true
	m.remembered[i] = true
}

// Init implements fov.Callbacks: lighting from the previous request is cleared, memory is kept
func (m *Map) Init() {
	clear(m.seen)
}

// Light marks a tile lit without counting it as an engine call.
// The engine never lights the source; callers light it with this
func (m *Map) Light(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	i := y*m.Width + x
	m.seen[i] = true
	m.remembered[i] = true
}

// Seen reports whether the tile is lit by the latest request
func (m *Map) Seen(x, y int) bool {
	return m.InBounds(x, y) && m.seen[y*m.Width+x]
}

// Remembered reports whether the tile was ever lit
func (m *Map) Remembered(x, y int) bool {
	return m.InBounds(x, y) && m.remembered[y*m.Width+x]
}

// Forget clears tile memory and current lighting
func (m *Map) Forget() {
	clear(m.seen)
	clear(m.remembered)
}

// SeenCount returns the number of tiles lit by the latest request
func (m *Map) SeenCount() int {
	n := 0
	for _, s := range m.seen {
		if s {
			n++
		}
	}
	return n
}

// OpacityCount returns how many times the engine tested the tile
func (m *Map) OpacityCount(x, y int) int {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.tested[y*m.Width+x]
}

// ApplyCount returns how many times the engine lit the tile
func (m *Map) ApplyCount(x, y int) int {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.applied[y*m.Width+x]
}

// ResetCounts zeroes the per-tile engine call counters
func (m *Map) ResetCounts() {
	clear(m.tested)
	clear(m.applied)
}

// CountRows renders the apply counters, one digit per tile, '+' above 9
func (m *Map) CountRows() []string {
	return m.countRows(m.applied)
}

// OpacityRows renders the opacity test counters like CountRows
func (m *Map) OpacityRows() []string {
	return m.countRows(m.tested)
}

func (m *Map) countRows(counts []int) []string {
	rows := make([]string, m.Height)
	buf := make([]byte, m.Width)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := counts[y*m.Width+x]
			if c > 9 {
				buf[x] = '+'
			} else {
				buf[x] = byte('0' + c)
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

// Glyph returns what a viewer at (px, py) sees at (x, y):
// the player, a lit tile, a remembered tile, or Unknown
func (m *Map) Glyph(x, y, px, py int) byte {
	switch {
	case x == px && y == py:
		return Source
	case m.Seen(x, y):
		return m.At(x, y)
	case m.Remembered(x, y):
		if m.Opaque(x, y) {
			return DimWall
		}
		return DimFloor
	}
	return Unknown
}

// Render draws the whole map as seen from (px, py), one line per row
func (m *Map) Render(px, py int) string {
	var sb strings.Builder
	sb.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sb.WriteByte(m.Glyph(x, y, px, py))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// NearestFloor returns the see-through tile closest to p in Chebyshev rings, and false if the map has none
func (m *Map) NearestFloor(p Point) (Point, bool) {
	limit := max(m.Width, m.Height)
	for r := 0; r <= limit; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				x, y := p.X+dx, p.Y+dy
				if m.InBounds(x, y) && !m.Opaque(x, y) {
					return Point{x, y}, true
				}
			}
		}
	}
	return Point{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
