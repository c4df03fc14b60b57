// Package terrain classifies map symbols as passable or obstacle.
package terrain

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"
)

// Symbol is the single-letter tag of a map cell.
type Symbol string

// Type describes one kind of terrain.
type Type struct {
	Obstacle    bool   `toml:"obstacle" yaml:"obstacle"`
	Description string `toml:"description" yaml:"description"`
}

// Ruleset maps every symbol a field may contain to its terrain type.
type Ruleset map[Symbol]Type

const (
	Plains    Symbol = "P"
	Mountains Symbol = "M"
	Crevasse  Symbol = "C"
)

// Default returns the standard Martian ruleset.
func Default() Ruleset {
	return Ruleset{
		Plains:    {Obstacle: false, Description: "plains"},
		Mountains: {Obstacle: true, Description: "mountains"},
		Crevasse:  {Obstacle: true, Description: "crevasse"},
	}
}

// Lookup reports the terrain type of s and whether the ruleset knows it.
func (r Ruleset) Lookup(s Symbol) (Type, bool) {
	t, ok := r[s]
	return t, ok
}

// Symbols returns the known symbols in sorted order.
func (r Ruleset) Symbols() []Symbol {
	out := make([]Symbol, 0, len(r))
	for s := range r {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate checks that every symbol is a single letter.
func (r Ruleset) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("terrain ruleset is empty")
	}
	for _, s := range r.Symbols() {
		c, size := utf8.DecodeRuneInString(string(s))
		if size == 0 || size != len(s) || !unicode.IsLetter(c) {
			return fmt.Errorf("terrain symbol %q must be a single letter", string(s))
		}
	}
	return nil
}
