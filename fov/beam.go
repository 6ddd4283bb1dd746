package fov

// sweep is one octant scan over the slope interval [start, end]
type sweep struct {
	octant Direction
	start  float32
	end    float32
}

// circlePlan scans every octant over its full interval
func circlePlan() []sweep {
	plan := make([]sweep, 0, directionCount)
	for _, d := range Directions() {
		plan = append(plan, sweep{octant: d, start: 0, end: 1})
	}
	return plan
}

// beamPlan decomposes a cone of angle degrees centred on dir into octant sweeps.
// The first pair straddles dir; each further 90 degrees adds the next octant on both sides.
// angle must be in (0, 360); NaN is rejected by Beam
func beamPlan(dir Direction, angle float32) []sweep {
	a := angle / 90
	diagonal := dir.IsDiagonal()
	prev, next := dir, dir.Next()

	plan := make([]sweep, 0, directionCount)
	for k := 0; k < 4; k++ {
		if k > 0 {
			if a <= float32(k) {
				break
			}
			prev, next = prev.Previous(), next.Next()
		}
		start, end := beamInterval(k, a, diagonal)
		plan = append(plan,
			sweep{octant: prev, start: start, end: end},
			sweep{octant: next, start: start, end: end},
		)
	}
	return plan
}

// beamInterval returns the slope interval of the k-th octant pair away from the beam centre.
// Octants alternate between sharing their diagonal edge and their axis edge with the
// previous pair, so the lit part grows from slope 1 downward or from slope 0 upward
func beamInterval(k int, a float32, diagonal bool) (start, end float32) {
	fk := float32(k)
	if (k%2 == 0) == diagonal {
		return clampUnit(fk + 1 - a), 1
	}
	return 0, clampUnit(a - fk)
}

// clampUnit limits v to [0, 1]
func clampUnit(v float32) float32 {
	return max(0, min(v, 1))
}
