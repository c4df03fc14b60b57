package nav

import (
	"errors"
	"fmt"
)

// ErrDiscontinuousPath is returned when two consecutive path cells are not
// one orthogonal step apart.
var ErrDiscontinuousPath = errors.New("path cells are not adjacent")

// Translate converts a path into commands for a rover starting with heading.
//
// Moving along the current axis costs a single F or B and never turns.
// Moving sideways costs one rotation followed by F, and the rover keeps the
// new heading for the rest of the path.
func Translate(path []Coordinate, heading Heading) ([]Command, error) {
	if len(path) < 2 {
		return nil, nil
	}

	commands := make([]Command, 0, len(path))
	for i := 1; i < len(path); i++ {
		step := path[i].Sub(path[i-1])
		switch step {
		case heading.Delta():
			commands = append(commands, MoveForward)
		case heading.Opposite().Delta():
			commands = append(commands, MoveBackward)
		case heading.Right().Delta():
			heading = heading.Right()
			commands = append(commands, RotateRight, MoveForward)
		case heading.Left().Delta():
			heading = heading.Left()
			commands = append(commands, RotateLeft, MoveForward)
		default:
			return nil, fmt.Errorf("%w: %v to %v", ErrDiscontinuousPath, path[i-1], path[i])
		}
	}
	return commands, nil
}
