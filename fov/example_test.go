package fov_test

import (
	"fmt"

	"github.com/lixenwraith/shadowcast/fov"
)

func ExampleCircle() {
	level := []string{
		".......",
		"...#...",
		".......",
		"...@...",
		".......",
		".......",
		".......",
	}
	lit := make(map[[2]int]bool)

	fov.Circle(fov.NewSettings(fov.ShapeCircle), fov.Funcs{
		Opaque: func(x, y int) bool {
			return y < 0 || y >= len(level) || x < 0 || x >= len(level[y]) || level[y][x] == '#'
		},
		Apply: func(x, y int) { lit[[2]int{x, y}] = true },
	}, 3, 3, 3)

	for y, row := range level {
		line := []byte(row)
		for x := range line {
			if !lit[[2]int{x, y}] && line[x] != '@' {
				line[x] = '-'
			}
		}
		fmt.Println(string(line))
	}
	// Output:
	// -------
	// -..#..-
	// -.....-
	// -..@..-
	// -.....-
	// -.....-
	// -------
}
