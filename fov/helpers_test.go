package fov

import (
	"strings"
	"testing"
)

// countingMap is a raster-backed Callbacks that counts how often each tile is
// tested and lit. Off-map tiles are opaque and never counted
type countingMap struct {
	w, h    int
	tiles   []byte
	tested  []int
	applied []int
	inits   int
	calls   int
}

// newCountingMap builds a map from rows, top row first. '#' is opaque
func newCountingMap(rows ...string) *countingMap {
	m := &countingMap{w: len(rows[0]), h: len(rows)}
	m.tiles = make([]byte, 0, m.w*m.h)
	for _, row := range rows {
		m.tiles = append(m.tiles, row...)
	}
	m.tested = make([]int, m.w*m.h)
	m.applied = make([]int, m.w*m.h)
	return m
}

func openRows(w, h int) []string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return rows
}

func (m *countingMap) onMap(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h
}

func (m *countingMap) TestOpacity(x, y int) bool {
	m.calls++
	if !m.onMap(x, y) {
		return true
	}
	m.tested[y*m.w+x]++
	return m.tiles[y*m.w+x] == '#'
}

func (m *countingMap) ApplyLighting(x, y int) {
	m.calls++
	if !m.onMap(x, y) {
		return
	}
	m.applied[y*m.w+x]++
}

func (m *countingMap) Init() {
	m.inits++
}

func (m *countingMap) opaque(x, y int) bool {
	return m.tiles[y*m.w+x] == '#'
}

func (m *countingMap) lit(x, y int) bool {
	return m.applied[y*m.w+x] > 0
}

// rows renders counts as one digit per tile, '+' above 9
func (m *countingMap) rows(counts []int) []string {
	out := make([]string, m.h)
	var sb strings.Builder
	for y := 0; y < m.h; y++ {
		sb.Reset()
		for x := 0; x < m.w; x++ {
			c := counts[y*m.w+x]
			if c > 9 {
				sb.WriteByte('+')
			} else {
				sb.WriteByte(byte('0' + c))
			}
		}
		out[y] = sb.String()
	}
	return out
}

// assertCounts compares a rendered count map against the expected rows
func assertCounts(t *testing.T, what string, got, want []string) {
	t.Helper()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("%s count map mismatch\nExpected:\n%s\nGot:\n%s",
			what, strings.Join(want, "\n"), strings.Join(got, "\n"))
	}
}

// assertBoth checks tested and applied counts, which agree whenever opaque tiles are lit
func assertBoth(t *testing.T, m *countingMap, want []string) {
	t.Helper()
	assertCounts(t, "opacity", m.rows(m.tested), want)
	assertCounts(t, "apply", m.rows(m.applied), want)
}
