package world

import "marsrover/internal/nav"

// Plane is the unbounded, obstacle-free surface a rover assumes when it has
// not been bound to a world.
type Plane struct{}

func (Plane) CanMoveTo(x, y int) bool { return true }

// BuildPath walks along the x axis first, then along y.
func (Plane) BuildPath(start, goal nav.Coordinate) []nav.Coordinate {
	path := []nav.Coordinate{start}
	at := start
	for at.X != goal.X {
		if at.X < goal.X {
			at.X++
		} else {
			at.X--
		}
		path = append(path, at)
	}
	for at.Y != goal.Y {
		if at.Y < goal.Y {
			at.Y++
		} else {
			at.Y--
		}
		path = append(path, at)
	}
	return path
}
