package status

import (
	"math"
	"strconv"
	"sync/atomic"
)

// Counter is a monotonically published integer such as a tile count
type Counter struct {
	atomic.Int64
}

func (c *Counter) String() string {
	return strconv.FormatInt(c.Load(), 10)
}

// Gauge holds the latest float64 sample, stored as its bit pattern
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

func (g *Gauge) String() string {
	return strconv.FormatFloat(g.Get(), 'f', 3, 64)
}

// Text holds a short description, e.g. the active shape
type Text struct {
	v atomic.Pointer[string]
}

func (t *Text) Set(s string) {
	t.v.Store(&s)
}

func (t *Text) Get() string {
	if p := t.v.Load(); p != nil {
		return *p
	}
	return ""
}

func (t *Text) String() string {
	return t.Get()
}
