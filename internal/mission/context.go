package mission

import "marsrover/internal/rover"

// Context carries the rover a mission drives and what it reported so far.
type Context struct {
	Rover   *rover.Rover
	Reports []rover.State
}
