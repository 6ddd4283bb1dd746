package fov

import "fmt"

// Direction is one of eight compass points, ordered clockwise from East.
// Screen coordinates: y grows southward
type Direction uint8

const (
	East Direction = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast

	directionCount = 8
)

var directionNames = [directionCount]string{
	"east", "southeast", "south", "southwest", "west", "northwest", "north", "northeast",
}

// Next returns the clockwise neighbour (East.Next() == SouthEast)
func (d Direction) Next() Direction {
	return (d + 1) % directionCount
}

// Previous returns the counter-clockwise neighbour (East.Previous() == NorthEast)
func (d Direction) Previous() Direction {
	return (d + directionCount - 1) % directionCount
}

// IsDiagonal reports whether d is SouthEast, SouthWest, NorthWest or NorthEast
func (d Direction) IsDiagonal() bool {
	return d%2 == 1
}

// Valid reports whether d names a compass point
func (d Direction) Valid() bool {
	return d < directionCount
}

var directionOffsets = [directionCount][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Offset returns the unit step toward d, (0, 0) for an invalid direction
func (d Direction) Offset() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	if d.Valid() {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Directions returns all compass points in ordinal order
func Directions() [directionCount]Direction {
	return [directionCount]Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}
}

// ParseDirection resolves a direction by name, abbreviation or FOV_ constant name
func ParseDirection(name string) (Direction, error) {
	switch normalizeName(name, "fov_") {
	case "east", "e":
		return East, nil
	case "southeast", "se":
		return SouthEast, nil
	case "south", "s":
		return South, nil
	case "southwest", "sw":
		return SouthWest, nil
	case "west", "w":
		return West, nil
	case "northwest", "nw":
		return NorthWest, nil
	case "north", "n":
		return North, nil
	case "northeast", "ne":
		return NorthEast, nil
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}
