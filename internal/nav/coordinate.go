// Package nav holds the rover's navigation vocabulary: grid coordinates,
// headings, motion commands and the translation of paths into commands.
package nav

import "fmt"

// Coordinate is a grid cell. X grows to the right, Y grows downward.
type Coordinate struct {
	X, Y int
}

func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coordinate) Sub(d Coordinate) Coordinate {
	return Coordinate{X: c.X - d.X, Y: c.Y - d.Y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns the 4-directional step distance between a and b.
func Manhattan(a, b Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
