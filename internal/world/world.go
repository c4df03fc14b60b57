// Package world holds the terrain field a rover drives on and finds
// obstacle-free paths across it.
package world

import (
	"errors"
	"fmt"
	"os"

	"marsrover/internal/terrain"
)

var (
	ErrEmptyField     = errors.New("field has no cells")
	ErrIrregularField = errors.New("field rows differ in length")
	ErrUnknownSymbol  = errors.New("unknown terrain symbol")
)

// World is an immutable rectangular terrain field. Row 0 is the top edge.
// It is safe for concurrent use.
type World struct {
	field   [][]terrain.Symbol
	blocked [][]bool
	rules   terrain.Ruleset
}

// New copies field and classifies every cell using rules.
func New(field [][]terrain.Symbol, rules terrain.Ruleset) (*World, error) {
	if len(field) == 0 || len(field[0]) == 0 {
		return nil, ErrEmptyField
	}
	width := len(field[0])

	w := &World{
		field:   make([][]terrain.Symbol, len(field)),
		blocked: make([][]bool, len(field)),
		rules:   rules,
	}
	for y, row := range field {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrIrregularField, y, len(row), width)
		}
		w.field[y] = append([]terrain.Symbol(nil), row...)
		w.blocked[y] = make([]bool, width)
		for x, s := range row {
			t, ok := rules.Lookup(s)
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownSymbol, string(s), x, y)
			}
			w.blocked[y][x] = t.Obstacle
		}
	}
	return w, nil
}

// Load reads a map file and builds a world from it.
func Load(path string, rules terrain.Ruleset) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	field, err := ParseField(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	w, err := New(field, rules)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

func (w *World) Width() int { return len(w.field[0]) }
func (w *World) Height() int { return len(w.field) }

func (w *World) InBounds(x, y int) bool {
	return y >= 0 && y < len(w.field) && x >= 0 && x < len(w.field[y])
}

// SymbolAt returns the terrain symbol at (x, y).
func (w *World) SymbolAt(x, y int) (terrain.Symbol, bool) {
	if !w.InBounds(x, y) {
		return "", false
	}
	return w.field[y][x], true
}

// CanMoveTo reports whether (x, y) is inside the field and not an obstacle.
func (w *World) CanMoveTo(x, y int) bool {
	return w.InBounds(x, y) && !w.blocked[y][x]
}
