package mission

import (
	"errors"
	"fmt"

	"marsrover/internal/nav"
	"marsrover/internal/rover"
)

// ErrInvalidCommand aborts a mission whose rover rejected a command.
var ErrInvalidCommand = errors.New("rover rejected command")

// Exec runs every statement in order. Each drive and moveto appends one
// report to ctx.Reports. Blocked moves do not stop the mission.
func (p *Program) Exec(ctx *Context) error {
	return execAll(p.Statements, ctx)
}

func execAll(stmts []*Statement, ctx *Context) error {
	for _, stmt := range stmts {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	var state rover.State
	switch {
	case s.Drive != nil:
		state = ctx.Rover.Command(s.Drive.Commands())
	case s.MoveTo != nil:
		state = ctx.Rover.MoveTo(s.MoveTo.X.Int(), s.MoveTo.Y.Int())
	case s.Repeat != nil:
		for i := 0; i < s.Repeat.Count; i++ {
			if err := execAll(s.Repeat.Body, ctx); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%s: empty statement", s.Pos)
	}

	ctx.Reports = append(ctx.Reports, state)
	if state.Status == rover.InvalidCommand {
		return fmt.Errorf("%s: %w at %v", s.Pos, ErrInvalidCommand, state.Location)
	}
	return nil
}

// Commands splits the drive words into single-character commands.
func (d *Drive) Commands() []nav.Command {
	var out []nav.Command
	for _, w := range d.Words {
		for _, c := range w {
			out = append(out, nav.Command(string(c)))
		}
	}
	return out
}
