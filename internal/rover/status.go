package rover

import (
	"fmt"

	"marsrover/internal/nav"
)

// Status is the outcome of a command batch.
type Status int

const (
	OK Status = iota
	Obstacle
	InvalidCommand
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Obstacle:
		return "OBSTACLE"
	case InvalidCommand:
		return "INVALID_COMMAND"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// State is what a rover reports after a batch: the outcome together with
// its committed location and heading.
type State struct {
	Status    Status
	Location  nav.Coordinate
	Direction nav.Heading
}

func (s State) String() string {
	return fmt.Sprintf("%s %v %v", s.Status, s.Location, s.Direction)
}
