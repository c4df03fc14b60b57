package nav

import (
	"fmt"
	"strings"
)

// Heading is one of the four compass directions, ordered clockwise.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

var headingDeltas = [...]Coordinate{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

// Left returns the heading after a quarter turn counter-clockwise.
func (h Heading) Left() Heading {
	return (h + 3) % 4
}

// Right returns the heading after a quarter turn clockwise.
func (h Heading) Right() Heading {
	return (h + 1) % 4
}

func (h Heading) Opposite() Heading {
	return (h + 2) % 4
}

// Delta is the unit step taken when moving forward with this heading.
func (h Heading) Delta() Coordinate {
	return headingDeltas[h]
}

func (h Heading) Valid() bool {
	return h >= North && h <= West
}

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// ParseHeading accepts N/E/S/W or the full direction name, in any case.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("unknown heading %q", s)
}
