package status

import (
	"fmt"

	"github.com/lixenwraith/shadowcast/fov"
)

// Metric names published by Probe
const (
	MetricRequests  = "fov.requests"
	MetricTests     = "fov.tests"
	MetricLit       = "fov.lit"
	MetricLitOpaque = "fov.lit_opaque"
	MetricLastTests = "fov.last.tests"
	MetricLastLit   = "fov.last.lit"
	MetricShape     = "fov.shape"
	MetricMode      = "fov.mode"
)

// Probe wraps fov.Callbacks and counts the engine's calls into a Registry.
// Totals accumulate across requests; the "last" metrics restart on every Init.
// An opaque tile is recognised as lit when ApplyLighting follows its own
// opacity test, which is the order the engine uses
type Probe struct {
	next fov.Callbacks

	requests  *Counter
	tests     *Counter
	lit       *Counter
	litOpaque *Counter
	lastTests *Counter
	lastLit   *Counter
	shape     *Text
	mode      *Text

	lastX, lastY int
	lastOpaque   bool
}

// NewProbe publishes into reg and forwards every call to next
func NewProbe(reg *Registry, next fov.Callbacks) *Probe {
	return &Probe{
		next:      next,
		requests:  reg.Counter(MetricRequests),
		tests:     reg.Counter(MetricTests),
		lit:       reg.Counter(MetricLit),
		litOpaque: reg.Counter(MetricLitOpaque),
		lastTests: reg.Counter(MetricLastTests),
		lastLit:   reg.Counter(MetricLastLit),
		shape:     reg.Text(MetricShape),
		mode:      reg.Text(MetricMode),
	}
}

// Circle records the request and runs fov.Circle through the probe
func (p *Probe) Circle(s *fov.Settings, x, y, radius int) {
	p.describe(s, "circle")
	fov.Circle(s, p, x, y, radius)
}

// Beam records the request and runs fov.Beam through the probe
func (p *Probe) Beam(s *fov.Settings, x, y, radius int, dir fov.Direction, angle float32) {
	p.describe(s, fmt.Sprintf("beam %v/%g", dir, angle))
	fov.Beam(s, p, x, y, radius, dir, angle)
}

func (p *Probe) describe(s *fov.Settings, mode string) {
	shape := fov.ShapeCirclePrecalculate
	if s != nil {
		shape = s.Shape
	}
	p.shape.Set(shape.String())
	p.mode.Set(mode)
}

func (p *Probe) Init() {
	p.requests.Add(1)
	p.lastTests.Store(0)
	p.lastLit.Store(0)
	p.lastOpaque = false
	p.next.Init()
}

func (p *Probe) TestOpacity(x, y int) bool {
	p.tests.Add(1)
	p.lastTests.Add(1)
	opaque := p.next.TestOpacity(x, y)
	p.lastX, p.lastY, p.lastOpaque = x, y, opaque
	return opaque
}

func (p *Probe) ApplyLighting(x, y int) {
	p.lit.Add(1)
	p.lastLit.Add(1)
	if p.lastOpaque && x == p.lastX && y == p.lastY {
		p.litOpaque.Add(1)
	}
	p.next.ApplyLighting(x, y)
}

// Last returns the opacity tests and lightings of the latest request
func (p *Probe) Last() (tests, lit int64) {
	return p.lastTests.Load(), p.lastLit.Load()
}
