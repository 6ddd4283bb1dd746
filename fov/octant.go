package fov

/*
Octants are named by the Direction whose transform scans them.
Depth (dx) runs along the primary axis, lateral offset (dy) away from it.

            North | NorthEast
         \    1   |   2    /
          \       |       /
  NorthWest \     |     /  East
       8      \   |   /       3
      --------------@--------------
       7      /   |   \       4
  West      /     |     \  SouthEast
          /       |       \
         /   6    |   5    \
            SouthWest | South

Axis and diagonal tiles belong to both neighbouring octants and are
visited once by each.
*/

// transform maps (dx, dy) to grid offsets: x = dx*m[0] + dy*m[1], y = dx*m[2] + dy*m[3]
type transform [4]int

var transforms = [directionCount]transform{
	East:      {1, 0, 0, -1},  // +x primary, lateral north
	SouthEast: {1, 0, 0, 1},   // +x primary, lateral south
	South:     {0, 1, 1, 0},   // +y primary, lateral east
	SouthWest: {0, -1, 1, 0},  // +y primary, lateral west
	West:      {-1, 0, 0, 1},  // -x primary, lateral south
	NorthWest: {-1, 0, 0, -1}, // -x primary, lateral north
	North:     {0, -1, -1, 0}, // -y primary, lateral west
	NorthEast: {0, 1, -1, 0},  // -y primary, lateral east
}

// apply returns absolute coordinates of (dx, dy) relative to the source
func (t transform) apply(sx, sy, dx, dy int) (int, int) {
	return sx + dx*t[0] + dy*t[1], sy + dx*t[2] + dy*t[3]
}

// slope returns dy/dx, 0 for a zero run
func slope(dx, dy float32) float32 {
	if dx == 0 {
		return 0
	}
	return dy / dx
}

// roundOffset rounds depth*slope half-up in single precision.
// Explicit conversions keep the multiply and add from being fused
func roundOffset(dx int, s float32) int {
	return int(0.5 + float32(float32(dx)*s))
}

// rowState tracks the previous tile of the row being scanned
type rowState uint8

const (
	rowUnknown rowState = iota
	rowClear
	rowBlocked
)

// scanner holds the read-only state of one top-level request
type scanner struct {
	settings  *Settings
	callbacks Callbacks
	sourceX   int
	sourceY   int
	radius    int
	applyAll  bool
}

// scan visits row dx of one octant between the start and end slopes and
// recurses outward for every unobstructed stretch.
// start and end are per-branch values; siblings never share them
func (sc *scanner) scan(dx int, start, end float32, t transform) {
	if dx == 0 {
		sc.scan(1, start, end, t)
		return
	}
	if dx > sc.radius {
		return
	}

	yStart := roundOffset(dx, start)
	yEnd := roundOffset(dx, end)

	h := sc.settings.boundary(dx, sc.radius)
	if yEnd > h {
		if h == 0 {
			return
		}
		yEnd = h
	}

	fdx := float32(dx)
	prev := rowUnknown
	for dy := yStart; dy <= yEnd; dy++ {
		x, y := t.apply(sc.sourceX, sc.sourceY, dx, dy)

		if sc.callbacks.TestOpacity(x, y) {
			if sc.applyAll {
				sc.callbacks.ApplyLighting(x, y)
			}
			if prev == rowClear {
				// Visible stretch closes here; continue it outward up to this tile's near edge
				sc.scan(dx+1, start, slope(fdx+0.5, float32(dy)-0.5), t)
			}
			prev = rowBlocked
			continue
		}

		sc.callbacks.ApplyLighting(x, y)
		if prev == rowBlocked {
			// Leaving an opaque stretch: near edge advances past it
			start = slope(fdx-0.5, float32(dy)-0.5)
		}
		prev = rowClear
	}

	if prev == rowClear {
		sc.scan(dx+1, start, end, t)
	}
}
