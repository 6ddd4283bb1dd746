package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/shadowcast/fov"
)

// Status is what the status line reports about the current request
type Status struct {
	Shape       fov.Shape
	OpaqueApply fov.OpaqueApply
	Radius      int
	Beam        bool
	Direction   fov.Direction
	Angle       float32
	Tests       int64
	Lit         int64
	Message     string
}

func (s Status) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, " %s r=%d", s.Shape, s.Radius)
	if s.Beam {
		fmt.Fprintf(&sb, " beam=%s/%g", s.Direction, s.Angle)
	} else {
		sb.WriteString(" circle")
	}
	fmt.Fprintf(&sb, " %s tests=%d lit=%d", s.OpaqueApply, s.Tests, s.Lit)
	if s.Message != "" {
		sb.WriteString(" | ")
		sb.WriteString(s.Message)
	}
	return sb.String()
}
