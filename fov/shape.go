package fov

import "math"

// boundary returns the largest lateral offset the scan may reach at depth dx
func (s *Settings) boundary(dx, radius int) int {
	switch s.Shape {
	case ShapeCirclePrecalculate:
		return s.heights.Height(dx, radius)
	case ShapeCircle:
		return int(math.Sqrt(float64(radius*radius - dx*dx)))
	case ShapeOctagon:
		return (radius - dx) << 1
	default:
		// Square: bounded only by the dx > radius cutoff
		return radius
	}
}
