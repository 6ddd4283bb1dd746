package fov

import (
	"math"
	"sync"
)

// HeightCache memoizes circle boundaries per radius.
// Row radius-1 holds, for each perpendicular offset 0..radius, the largest
// lateral offset inside the circle, followed by a zero sentinel.
// Rows are immutable once built and the cache only grows
type HeightCache struct {
	mu     sync.RWMutex
	rows   [][]int
	builds int
}

// Height returns the circle boundary at offset dx for radius, building the row on first use.
// radius must be positive and |dx| <= radius+1
func (c *HeightCache) Height(dx, radius int) int {
	if dx < 0 {
		dx = -dx
	}
	return c.row(radius)[dx]
}

// row returns the precalculated heights for radius
func (c *HeightCache) row(radius int) []int {
	// Fast path: RLock check
	c.mu.RLock()
	if radius <= len(c.rows) {
		if r := c.rows[radius-1]; r != nil {
			c.mu.RUnlock()
			return r
		}
	}
	c.mu.RUnlock()

	// Slow path: grow and build under write lock
	c.mu.Lock()
	defer c.mu.Unlock()

	if radius > len(c.rows) {
		c.rows = append(c.rows, make([][]int, radius-len(c.rows))...)
	}
	// Double-check after acquiring write lock
	if r := c.rows[radius-1]; r != nil {
		return r
	}
	r := precalculateHeights(radius)
	c.rows[radius-1] = r
	c.builds++
	return r
}

// Len returns the largest radius the cache has room for
func (c *HeightCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rows)
}

// Cached reports whether the row for radius has been built
func (c *HeightCache) Cached(radius int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return radius > 0 && radius <= len(c.rows) && c.rows[radius-1] != nil
}

// Builds returns how many rows have been computed over the cache lifetime
func (c *HeightCache) Builds() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.builds
}

func precalculateHeights(radius int) []int {
	heights := make([]int, radius+2)
	for i := 0; i <= radius; i++ {
		heights[i] = int(math.Sqrt(float64(radius*radius - i*i)))
	}
	// heights[radius+1] stays 0 as the terminal sentinel
	return heights
}
