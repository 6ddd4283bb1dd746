package fov

// Callbacks is the caller's view of the map.
// The engine calls Init once per request, then TestOpacity and ApplyLighting per
// visited tile, synchronously on the calling goroutine
type Callbacks interface {
	// TestOpacity reports whether light is blocked at (x, y). It may be called
	// several times for the same tile and must not mutate the map
	TestOpacity(x, y int) bool

	// ApplyLighting marks (x, y) as lit. Tiles on octant edges are lit once per octant
	ApplyLighting(x, y int)

	// Init is called once at the start of every Circle or Beam request
	Init()
}

// Funcs adapts plain functions to Callbacks. A nil Reset is skipped
type Funcs struct {
	Opaque func(x, y int) bool
	Apply  func(x, y int)
	Reset  func()
}

func (f Funcs) TestOpacity(x, y int) bool { return f.Opaque(x, y) }
func (f Funcs) ApplyLighting(x, y int)    { f.Apply(x, y) }

func (f Funcs) Init() {
	if f.Reset != nil {
		f.Reset()
	}
}

// Circle computes a full field of view of the given radius around (sourceX, sourceY).
// The source tile itself is never tested or lit; a radius below 1 lights nothing
func Circle(s *Settings, cb Callbacks, sourceX, sourceY, radius int) {
	cast(s, cb, sourceX, sourceY, radius, circlePlan())
}

// Beam computes a cone-shaped field of view pointing in dir, angle degrees wide
// with half the angle on each side of dir.
// angle <= 0, NaN or an invalid dir does nothing, not even Init; angle >= 360 is a full Circle
func Beam(s *Settings, cb Callbacks, sourceX, sourceY, radius int, dir Direction, angle float32) {
	if !(angle > 0) || !dir.Valid() {
		return
	}
	if angle >= 360 {
		Circle(s, cb, sourceX, sourceY, radius)
		return
	}
	cast(s, cb, sourceX, sourceY, radius, beamPlan(dir, angle))
}

// cast runs every sweep of plan for one request. A nil s scans with default settings
func cast(s *Settings, cb Callbacks, sourceX, sourceY, radius int, plan []sweep) {
	if s == nil {
		s = &Settings{}
	}
	sc := scanner{
		settings:  s,
		callbacks: cb,
		sourceX:   sourceX,
		sourceY:   sourceY,
		radius:    radius,
		applyAll:  s.OpaqueApply == OpaqueApplyLighting,
	}

	cb.Init()
	for _, sw := range plan {
		sc.scan(1, sw.start, sw.end, transforms[sw.octant])
	}
}
