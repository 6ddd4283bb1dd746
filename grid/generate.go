package grid

import (
	"math/rand"
	"time"
)

// CaveConfig controls Cave generation
type CaveConfig struct {
	Width, Height int

	// Fill is the number of random wall placements as a fraction of the map area.
	// Placements may land on the same tile twice. Zero means 0.55
	Fill float64

	// Passes of the smoothing automaton. Zero means one pass
	Passes int

	Seed int64 // Optional (0 = Random)
}

// MazeConfig controls Maze generation
type MazeConfig struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze) to 1.0 (no dead ends)
	Braiding float64

	Seed int64 // Optional (0 = Random)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Cave scatters walls at random then smooths them with a cellular automaton:
// a wall with fewer than 4 wall neighbours opens, a floor with more than 4 closes.
// Off-map neighbours count as walls. Smoothing updates in place, row by row
func Cave(cfg CaveConfig) *Map {
	m := New(max(cfg.Width, 1), max(cfg.Height, 1))
	rng := newRand(cfg.Seed)

	fill := cfg.Fill
	if fill <= 0 {
		fill = 0.55
	}
	passes := cfg.Passes
	if passes <= 0 {
		passes = 1
	}

	area := m.Width * m.Height
	for i := 0; float64(i) < float64(area)*fill; i++ {
		m.tiles[rng.Intn(area)] = Wall
	}

	for range passes {
		m.smooth()
	}
	return m
}

// smooth runs one automaton pass in place, row by row
func (m *Map) smooth() {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			n := m.wallNeighbours(x, y)
			i := y*m.Width + x
			switch {
			case m.tiles[i] == Wall && n < 4:
				m.tiles[i] = Floor
			case m.tiles[i] != Wall && n > 4:
				m.tiles[i] = Wall
			}
		}
	}
}

func (m *Map) wallNeighbours(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && m.Opaque(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Maze carves a recursive-backtracker maze. Dimensions are rounded down to odd
// (minimum 3) so the outer ring stays wall. Start is set to (1, 1)
func Maze(cfg MazeConfig) *Map {
	w, h := oddDown(cfg.Width), oddDown(cfg.Height)
	m := New(w, h)
	for i := range m.tiles {
		m.tiles[i] = Wall
	}
	rng := newRand(cfg.Seed)

	start := Point{1, 1}
	m.carve(start, rng)
	if cfg.Braiding > 0 {
		m.braid(cfg.Braiding, rng)
	}

	m.Start = start
	m.HasStart = true
	return m
}

var jumps = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

func (m *Map) carve(start Point, rng *rand.Rand) {
	stack := []Point{start}
	m.Set(start.X, start.Y, Floor)

	candidates := make([]Point, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, d := range jumps {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx > 0 && nx < m.Width-1 && ny > 0 && ny < m.Height-1 && m.Opaque(nx, ny) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		m.Set(cur.X+d.X/2, cur.Y+d.Y/2, Floor)
		next := Point{cur.X + d.X, cur.Y + d.Y}
		m.Set(next.X, next.Y, Floor)
		stack = append(stack, next)
	}
}

// braid knocks a wall out of dead ends with the given probability, joining them
// to a neighbouring room. Walls whose removal would open a 2x2 floor are kept
func (m *Map) braid(probability float64, rng *rand.Rand) {
	candidates := make([]Point, 0, 4)
	for y := 1; y < m.Height-1; y += 2 {
		for x := 1; x < m.Width-1; x += 2 {
			if m.Opaque(x, y) || m.exits(x, y) != 1 || rng.Float64() >= probability {
				continue
			}
			candidates = candidates[:0]
			for _, d := range jumps {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if nx <= 0 || nx >= m.Width-1 || ny <= 0 || ny >= m.Height-1 {
					continue
				}
				if !m.Opaque(nx, ny) && m.Opaque(wx, wy) && !m.opensPlaza(wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				m.Set(c.X, c.Y, Floor)
			}
		}
	}
}

func (m *Map) exits(x, y int) int {
	n := 0
	for _, d := range [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		if !m.Opaque(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

// opensPlaza reports whether clearing (x, y) would complete a 2x2 block of floor
func (m *Map) opensPlaza(x, y int) bool {
	open := func(tx, ty int) bool { return m.InBounds(tx, ty) && !m.Opaque(tx, ty) }
	for _, q := range [4]Point{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}} {
		ox, oy := x+q.X, y+q.Y
		n := 0
		for _, c := range [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			tx, ty := ox+c.X, oy+c.Y
			if (tx != x || ty != y) && open(tx, ty) {
				n++
			}
		}
		if n == 3 {
			return true
		}
	}
	return false
}

func oddDown(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
