package fov

import (
	"fmt"
	"strings"
)

// Shape selects the outer silhouette of the field of view
type Shape uint8

const (
	// ShapeCirclePrecalculate limits the view to a circle using heights cached per radius.
	// Costs radius+2 ints per distinct radius, computed once and reused
	ShapeCirclePrecalculate Shape = iota
	// ShapeSquare limits the view to the square of side 2*radius+1
	ShapeSquare
	// ShapeCircle limits the view to a circle computing heights on the fly
	ShapeCircle
	// ShapeOctagon limits the view to an octagon with maximum radius
	ShapeOctagon
)

// CornerPeek selects whether sources see around corners.
// Only NoPeek has an implementation; Peek is accepted and behaves the same
type CornerPeek uint8

const (
	CornerNoPeek CornerPeek = iota
	CornerPeekAround
)

// OpaqueApply selects whether ApplyLighting is called for opaque tiles
type OpaqueApply uint8

const (
	OpaqueApplyLighting OpaqueApply = iota
	OpaqueNoApply
)

// Settings holds the caller's FOV policy and the circle height cache.
// The zero value is ready to use. A Settings may serve many requests and
// many goroutines; it must not be copied after first use
type Settings struct {
	Shape       Shape
	CornerPeek  CornerPeek
	OpaqueApply OpaqueApply

	heights HeightCache
}

// NewSettings returns settings with the given shape and default policies
func NewSettings(shape Shape) *Settings {
	return &Settings{Shape: shape}
}

// Heights exposes the settings-owned height cache
func (s *Settings) Heights() *HeightCache {
	return &s.heights
}

var shapeNames = [...]string{
	ShapeCirclePrecalculate: "circle-precalculate",
	ShapeSquare:             "square",
	ShapeCircle:             "circle",
	ShapeOctagon:            "octagon",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

func (c CornerPeek) String() string {
	switch c {
	case CornerNoPeek:
		return "nopeek"
	case CornerPeekAround:
		return "peek"
	}
	return fmt.Sprintf("CornerPeek(%d)", uint8(c))
}

func (o OpaqueApply) String() string {
	switch o {
	case OpaqueApplyLighting:
		return "apply"
	case OpaqueNoApply:
		return "noapply"
	}
	return fmt.Sprintf("OpaqueApply(%d)", uint8(o))
}

// normalizeName lowercases and strips the FOV_ prefix and separators,
// so "FOV_SHAPE_CIRCLE_PRECALCULATE", "circle-precalculate" and "CirclePrecalculate" compare equal
func normalizeName(name, prefix string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, prefix)
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(n)
}

// ParseShape resolves a shape by name
func ParseShape(name string) (Shape, error) {
	switch normalizeName(name, "fov_shape_") {
	case "circleprecalculate", "precalculate", "precalc", "p":
		return ShapeCirclePrecalculate, nil
	case "square", "s":
		return ShapeSquare, nil
	case "circle", "c":
		return ShapeCircle, nil
	case "octagon", "o":
		return ShapeOctagon, nil
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// ParseCornerPeek resolves a corner peek policy by name
func ParseCornerPeek(name string) (CornerPeek, error) {
	switch normalizeName(name, "fov_corner_") {
	case "nopeek", "none", "":
		return CornerNoPeek, nil
	case "peek":
		return CornerPeekAround, nil
	}
	return 0, fmt.Errorf("unknown corner peek %q", name)
}

// ParseOpaqueApply resolves an opaque apply policy by name
func ParseOpaqueApply(name string) (OpaqueApply, error) {
	switch normalizeName(name, "fov_opaque_") {
	case "apply", "true", "yes", "on":
		return OpaqueApplyLighting, nil
	case "noapply", "false", "no", "off":
		return OpaqueNoApply, nil
	}
	return 0, fmt.Errorf("unknown opaque apply %q", name)
}
