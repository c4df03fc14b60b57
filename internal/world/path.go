package world

import (
	"marsrover/internal/nav"
	"marsrover/internal/pqueue"
)

// neighbours in exploration order: up, down, left, right.
var neighbours = [...]nav.Coordinate{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

type frontierItem struct {
	at    nav.Coordinate
	steps int
}

// BuildPath returns a shortest path from start to goal, both included.
//
// The search is A* with the Manhattan distance as heuristic. Cells of equal
// priority are expanded in the order they were queued, which makes the result
// deterministic when several shortest paths exist.
//
// A path of just start is returned when start equals goal. When the goal is
// an obstacle, out of bounds or unreachable the result is nil.
func (w *World) BuildPath(start, goal nav.Coordinate) []nav.Coordinate {
	if start == goal {
		return []nav.Coordinate{start}
	}
	if !w.CanMoveTo(goal.X, goal.Y) {
		return nil
	}

	steps := map[nav.Coordinate]int{start: 0}
	prev := map[nav.Coordinate]nav.Coordinate{}
	frontier := pqueue.New[frontierItem]().Add(frontierItem{at: start}, nav.Manhattan(start, goal))

	for !frontier.IsEmpty() {
		cur := frontier.Remove()
		if cur.at == goal {
			return backtrace(prev, start, goal)
		}
		if cur.steps > steps[cur.at] {
			// stale entry, a shorter route was queued later
			continue
		}

		for _, d := range neighbours {
			next := cur.at.Add(d)
			if !w.CanMoveTo(next.X, next.Y) {
				continue
			}
			distance := cur.steps + 1
			if known, ok := steps[next]; ok && distance >= known {
				continue
			}
			steps[next] = distance
			prev[next] = cur.at
			frontier.Add(frontierItem{at: next, steps: distance}, distance+nav.Manhattan(next, goal))
		}
	}
	return nil
}

func backtrace(prev map[nav.Coordinate]nav.Coordinate, start, goal nav.Coordinate) []nav.Coordinate {
	path := []nav.Coordinate{goal}
	for at := goal; at != start; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
