// Package rover interprets motion commands for a single rover.
package rover

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"marsrover/internal/nav"
	"marsrover/internal/world"
)

// Navigator is the terrain a rover drives on. *world.World implements it.
type Navigator interface {
	CanMoveTo(x, y int) bool
	BuildPath(start, goal nav.Coordinate) []nav.Coordinate
}

// Rover tracks its own location and heading. A rover is not safe for
// concurrent use; the navigator it is bound to may be shared.
type Rover struct {
	id        uuid.UUID
	location  nav.Coordinate
	direction nav.Heading
	status    Status
	commands  []nav.Command
	world     Navigator

	haltOnObstacle bool
	logger         *log.Logger
}

type Option func(*Rover)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(r *Rover) { r.logger = l }
}

// WithHaltOnObstacle stops a batch at the first blocked move instead of
// carrying on with the remaining commands.
func WithHaltOnObstacle() Option {
	return func(r *Rover) { r.haltOnObstacle = true }
}

// New places a rover at location facing direction. The starting cell is
// trusted. Until SetWorld is called the rover drives on an open Plane.
func New(location nav.Coordinate, direction nav.Heading, opts ...Option) *Rover {
	r := &Rover{
		id:        uuid.New(),
		location:  location,
		direction: direction,
		world:     world.Plane{},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("rover", r.id.String())
	return r
}

// SetWorld binds the rover to w. A nil w restores the open plane.
func (r *Rover) SetWorld(w Navigator) *Rover {
	if w == nil {
		w = world.Plane{}
	}
	r.world = w
	return r
}

func (r *Rover) ID() uuid.UUID { return r.id }
func (r *Rover) Location() nav.Coordinate { return r.location }
func (r *Rover) Direction() nav.Heading { return r.direction }
func (r *Rover) Status() Status { return r.status }

// Commands returns the last batch given to Command.
func (r *Rover) Commands() []nav.Command {
	return append([]nav.Command(nil), r.commands...)
}

func (r *Rover) State() State {
	return State{Status: r.status, Location: r.location, Direction: r.direction}
}

func (r *Rover) RotateLeft() {
	r.direction = r.direction.Left()
}

func (r *Rover) RotateRight() {
	r.direction = r.direction.Right()
}

// MoveForward steps one cell along the heading. A blocked step leaves the
// location alone, sets the Obstacle status and returns false.
func (r *Rover) MoveForward() bool {
	return r.move(r.location.Add(r.direction.Delta()))
}

// MoveBackward steps one cell against the heading without turning.
func (r *Rover) MoveBackward() bool {
	return r.move(r.location.Sub(r.direction.Delta()))
}

func (r *Rover) move(to nav.Coordinate) bool {
	if !r.world.CanMoveTo(to.X, to.Y) {
		r.logger.Debug("move blocked", "from", r.location, "to", to, "heading", r.direction)
		r.status = Obstacle
		return false
	}
	r.location = to
	return true
}

// Command runs a batch left to right and reports the final state.
//
// An unknown command stops the batch with InvalidCommand. A blocked move sets
// Obstacle but the remaining commands still run from the unchanged location,
// unless the rover was built WithHaltOnObstacle. The status is whichever
// was set last; OK when nothing failed.
func (r *Rover) Command(commands []nav.Command) State {
	r.commands = append([]nav.Command(nil), commands...)
	r.status = OK

	for i, c := range commands {
		switch c {
		case nav.RotateLeft:
			r.RotateLeft()
		case nav.RotateRight:
			r.RotateRight()
		case nav.MoveForward:
			r.MoveForward()
		case nav.MoveBackward:
			r.MoveBackward()
		default:
			r.logger.Debug("invalid command", "index", i, "command", string(c))
			r.status = InvalidCommand
			return r.State()
		}
		if r.status == Obstacle && r.haltOnObstacle {
			break
		}
	}

	r.logger.Debug("batch done", "commands", len(commands), "state", r.State())
	return r.State()
}

// MoveTo drives along a shortest path to (x, y).
// An obstacle, out-of-bounds or unreachable target runs an empty batch and
// leaves the rover where it is.
func (r *Rover) MoveTo(x, y int) State {
	target := nav.Coordinate{X: x, Y: y}

	var path []nav.Coordinate
	if r.world.CanMoveTo(x, y) {
		path = r.world.BuildPath(r.location, target)
	}
	if path == nil {
		r.logger.Debug("no path", "from", r.location, "to", target)
	}

	commands, err := nav.Translate(path, r.direction)
	if err != nil {
		r.logger.Error("navigator returned a broken path", "to", target, "err", err)
		r.commands = nil
		r.status = InvalidCommand
		return r.State()
	}
	return r.Command(commands)
}
