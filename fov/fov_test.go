package fov

import (
	"strings"
	"sync"
	"testing"
)

// TestCircle_SquareBasics covers an open room, a closed cell, a wall band and a wall spur
func TestCircle_SquareBasics(t *testing.T) {
	cases := []struct {
		name   string
		raster []string
		want   []string
	}{
		{
			name:   "open",
			raster: openRows(10, 10),
			want: []string{
				"0000000000",
				"0000000000",
				"0211211200",
				"0121212100",
				"0112221100",
				"0222022200",
				"0112221100",
				"0121212100",
				"0211211200",
				"0000000000",
			},
		},
		{
			name: "enclosed",
			raster: []string{
				"..........",
				"..........",
				"..........",
				"..........",
				"...###....",
				"...#.#....",
				"...###....",
				"..........",
				"..........",
				"..........",
			},
			want: []string{
				"0000000000",
				"0000000000",
				"0000000000",
				"0000000000",
				"0002220000",
				"0002020000",
				"0002220000",
				"0000000000",
				"0000000000",
				"0000000000",
			},
		},
		{
			name: "wall band",
			raster: []string{
				"..........",
				"..........",
				"..........",
				".....#####",
				"##########",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
			},
			want: []string{
				"0000000000",
				"0000000000",
				"0000000000",
				"0000000000",
				"0112221100",
				"0222022200",
				"0112221100",
				"0121212100",
				"0211211200",
				"0000000000",
			},
		},
		{
			name: "wall spur",
			raster: []string{
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				".....####.",
				"......###.",
				"..........",
				"..........",
				"..........",
			},
			want: []string{
				"0000000000",
				"0000000000",
				"0211211200",
				"0121212000",
				"0112220000",
				"0222020000",
				"0112220000",
				"0121212000",
				"0211211200",
				"0000000000",
			},
		},
	}

	settings := NewSettings(ShapeSquare)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newCountingMap(tc.raster...)
			Circle(settings, m, 4, 5, 3)
			assertBoth(t, m, tc.want)
			if m.inits != 1 {
				t.Errorf("Expected Init once, got %d", m.inits)
			}
		})
	}
}

func TestCircle_CircleShape(t *testing.T) {
	m := newCountingMap(openRows(15, 15)...)
	Circle(NewSettings(ShapeCircle), m, 7, 7, 6)
	assertBoth(t, m, []string{
		"000000000000000",
		"000000000000000",
		"000011121110000",
		"000211121112000",
		"001121121121100",
		"001112121211100",
		"001111222111100",
		"002222202222200",
		"001111222111100",
		"001112121211100",
		"001121121121100",
		"000211121112000",
		"000011121110000",
		"000000000000000",
		"000000000000000",
	})
}

func TestCircle_Octagon(t *testing.T) {
	m := newCountingMap(openRows(15, 15)...)
	Circle(NewSettings(ShapeOctagon), m, 7, 7, 6)
	assertBoth(t, m, []string{
		"000000000000000",
		"000000000000000",
		"000001121100000",
		"000211121112000",
		"000121121121000",
		"001112121211100",
		"001111222111100",
		"002222202222200",
		"001111222111100",
		"001112121211100",
		"000121121121000",
		"000211121112000",
		"000001121100000",
		"000000000000000",
		"000000000000000",
	})
}

// TestCircle_WallFace checks a long wall seen face-on from a corridor
func TestCircle_WallFace(t *testing.T) {
	m := newCountingMap(
		"..............................",
		"##############################",
		"..............................",
		"..............................",
	)
	Circle(NewSettings(ShapeSquare), m, 0, 2, 40)
	assertBoth(t, m, []string{
		"000000000000000000000000000000",
		"221111111111111111111111111111",
		"022222222222222222222222222222",
		"221111111111111111111111111111",
	})
}

// TestCircle_SmallRadiusCircle covers the open 5x5 room with a circle of radius 2.
// The boundary height at depth 2 is zero, so only the inner ring is lit, and the
// source itself is left to the caller
func TestCircle_SmallRadiusCircle(t *testing.T) {
	m := newCountingMap(openRows(5, 5)...)
	Circle(NewSettings(ShapeCircle), m, 2, 2, 2)
	assertBoth(t, m, []string{
		"00000",
		"02220",
		"02020",
		"02220",
		"00000",
	})
}

// TestCircle_SmallRadiusSquare lights every tile of the 5x5 room except the source
func TestCircle_SmallRadiusSquare(t *testing.T) {
	m := newCountingMap(openRows(5, 5)...)
	Circle(NewSettings(ShapeSquare), m, 2, 2, 2)
	assertBoth(t, m, []string{
		"21212",
		"12221",
		"22022",
		"12221",
		"21212",
	})
}

func TestCircle_OpaqueNeighbour(t *testing.T) {
	m := newCountingMap(
		".....",
		".....",
		"...#.",
		".....",
		".....",
	)
	Circle(NewSettings(ShapeCircle), m, 2, 2, 2)

	if !m.lit(3, 2) {
		t.Error("Expected opaque tile (3,2) to be lit")
	}
	if m.lit(4, 2) {
		t.Error("Expected (4,2) behind the wall to stay dark")
	}
	if !m.lit(3, 1) || !m.lit(3, 3) {
		t.Error("Expected (3,1) and (3,3) beside the wall to be lit")
	}
}

// TestCircle_ShadowBehindPillar checks the exact shadow cast by one opaque tile
func TestCircle_ShadowBehindPillar(t *testing.T) {
	rows := openRows(21, 21)
	rows[10] = "............." + "#" + "......."
	m := newCountingMap(rows...)
	Circle(NewSettings(ShapeSquare), m, 10, 10, 10)

	shadow := map[[2]int]bool{}
	for x := 14; x <= 20; x++ {
		shadow[[2]int{x, 10}] = true
	}
	for x := 18; x <= 20; x++ {
		shadow[[2]int{x, 9}] = true
		shadow[[2]int{x, 11}] = true
	}

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			if x == 10 && y == 10 {
				continue
			}
			if shadow[[2]int{x, y}] {
				if m.lit(x, y) {
					t.Errorf("Expected (%d,%d) in shadow, got lit", x, y)
				}
			} else if !m.lit(x, y) {
				t.Errorf("Expected (%d,%d) lit, got dark", x, y)
			}
		}
	}
}

// TestCircle_Symmetry verifies the lit counts are invariant under the eight symmetries of the square
func TestCircle_Symmetry(t *testing.T) {
	const size, c, radius = 31, 15, 12
	for _, shape := range []Shape{ShapeCirclePrecalculate, ShapeCircle, ShapeOctagon, ShapeSquare} {
		m := newCountingMap(openRows(size, size)...)
		Circle(NewSettings(shape), m, c, c, radius)

		at := func(x, y int) int { return m.applied[(y+c)*size+(x+c)] }
		for y := -c; y <= c; y++ {
			for x := -c; x <= c; x++ {
				v := at(x, y)
				images := [][2]int{{-x, y}, {x, -y}, {-x, -y}, {y, x}, {-y, x}, {y, -x}, {-y, -x}}
				for _, p := range images {
					if at(p[0], p[1]) != v {
						t.Fatalf("%s: count at (%d,%d)=%d differs from image (%d,%d)=%d",
							shape, x, y, v, p[0], p[1], at(p[0], p[1]))
					}
				}
			}
		}
	}
}

func TestCircle_PrecalculateMatchesDirect(t *testing.T) {
	precalc := NewSettings(ShapeCirclePrecalculate)
	direct := NewSettings(ShapeCircle)
	rows := openRows(33, 33)
	rows[12] = "..............#.................."
	rows[20] = "......####......................."

	for radius := 1; radius <= 16; radius++ {
		a := newCountingMap(rows...)
		b := newCountingMap(rows...)
		Circle(precalc, a, 16, 16, radius)
		Circle(direct, b, 16, 16, radius)
		assertCounts(t, "precalculated vs direct", a.rows(a.applied), b.rows(b.applied))
	}
}

// TestCircle_HeightCacheReuse runs the same request twice on one Settings
func TestCircle_HeightCacheReuse(t *testing.T) {
	settings := NewSettings(ShapeCirclePrecalculate)
	rows := openRows(21, 21)
	rows[6] = ".......##............"

	first := newCountingMap(rows...)
	Circle(settings, first, 10, 10, 8)
	if settings.Heights().Builds() != 1 {
		t.Fatalf("Expected one height row built, got %d", settings.Heights().Builds())
	}

	second := newCountingMap(rows...)
	Circle(settings, second, 10, 10, 8)
	if settings.Heights().Builds() != 1 {
		t.Errorf("Expected cached heights to be reused, got %d builds", settings.Heights().Builds())
	}
	if first.calls != second.calls {
		t.Errorf("Expected %d callback calls on the second run, got %d", first.calls, second.calls)
	}
	assertCounts(t, "opacity", second.rows(second.tested), first.rows(first.tested))
	assertCounts(t, "apply", second.rows(second.applied), first.rows(first.applied))
}

func TestCircle_NoApplyOpaque(t *testing.T) {
	rows := []string{
		"....#......",
		"..#....#...",
		"...........",
		".#...#.....",
		"......##...",
		"...#.......",
		"........#..",
		".##........",
		"......#....",
	}
	for _, shape := range []Shape{ShapeCirclePrecalculate, ShapeCircle, ShapeOctagon, ShapeSquare} {
		settings := NewSettings(shape)
		settings.OpaqueApply = OpaqueNoApply
		m := newCountingMap(rows...)
		Circle(settings, m, 4, 4, 6)

		litOpaque := 0
		for y := 0; y < m.h; y++ {
			for x := 0; x < m.w; x++ {
				if m.opaque(x, y) && m.lit(x, y) {
					litOpaque++
				}
			}
		}
		if litOpaque != 0 {
			t.Errorf("%s: Expected no opaque tiles lit, got %d", shape, litOpaque)
		}

		// Same request with the default policy does light walls
		m = newCountingMap(rows...)
		Circle(NewSettings(shape), m, 4, 4, 6)
		if !m.lit(5, 3) {
			t.Errorf("%s: Expected wall (5,3) lit with opaque apply", shape)
		}
	}
}

func TestCircle_NonPositiveRadius(t *testing.T) {
	for _, radius := range []int{0, -1, -7} {
		m := newCountingMap(openRows(5, 5)...)
		Circle(NewSettings(ShapeCirclePrecalculate), m, 2, 2, radius)
		if m.inits != 1 {
			t.Errorf("radius %d: Expected Init once, got %d", radius, m.inits)
		}
		if m.calls != 0 {
			t.Errorf("radius %d: Expected no tile callbacks, got %d", radius, m.calls)
		}
	}
}

func TestCircle_CornerPeekHasNoEffect(t *testing.T) {
	rows := []string{
		".........",
		"....#....",
		"...#.#...",
		".........",
		"..#...#..",
		".........",
	}
	nopeek := NewSettings(ShapeSquare)
	peek := NewSettings(ShapeSquare)
	peek.CornerPeek = CornerPeekAround

	a := newCountingMap(rows...)
	b := newCountingMap(rows...)
	Circle(nopeek, a, 4, 3, 5)
	Circle(peek, b, 4, 3, 5)
	assertCounts(t, "apply", b.rows(b.applied), a.rows(a.applied))
}

func TestCircle_NilSettingsUsesDefaults(t *testing.T) {
	a := newCountingMap(openRows(15, 15)...)
	b := newCountingMap(openRows(15, 15)...)
	Circle(nil, a, 7, 7, 6)
	Circle(&Settings{}, b, 7, 7, 6)
	assertCounts(t, "apply", a.rows(a.applied), b.rows(b.applied))
}

// TestCircle_ConcurrentSharedSettings shares one Settings across goroutines with different radii
func TestCircle_ConcurrentSharedSettings(t *testing.T) {
	settings := NewSettings(ShapeCirclePrecalculate)
	rows := openRows(41, 41)
	rows[15] = strings.Repeat(".", 15) + "###" + strings.Repeat(".", 23)

	want := make([][]string, 21)
	for radius := 1; radius <= 20; radius++ {
		m := newCountingMap(rows...)
		Circle(NewSettings(ShapeCircle), m, 20, 20, radius)
		want[radius] = m.rows(m.applied)
	}

	var wg sync.WaitGroup
	got := make([][]string, 21)
	for radius := 1; radius <= 20; radius++ {
		wg.Add(1)
		go func(radius int) {
			defer wg.Done()
			m := newCountingMap(rows...)
			Circle(settings, m, 20, 20, radius)
			got[radius] = m.rows(m.applied)
		}(radius)
	}
	wg.Wait()

	for radius := 1; radius <= 20; radius++ {
		assertCounts(t, "apply", got[radius], want[radius])
	}
	if settings.Heights().Builds() != 20 {
		t.Errorf("Expected 20 height rows, got %d", settings.Heights().Builds())
	}
}

func TestFuncs_NilReset(t *testing.T) {
	lit := 0
	cb := Funcs{
		Opaque: func(x, y int) bool { return false },
		Apply:  func(x, y int) { lit++ },
	}
	Circle(NewSettings(ShapeSquare), cb, 0, 0, 1)
	if lit != 16 {
		t.Errorf("Expected 16 lightings around the source, got %d", lit)
	}
}

func BenchmarkCircle(b *testing.B) {
	settings := NewSettings(ShapeCirclePrecalculate)
	cb := Funcs{
		Opaque: func(x, y int) bool { return (x*7+y*13)%11 == 0 },
		Apply:  func(x, y int) {},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Circle(settings, cb, 0, 0, 30)
	}
}
