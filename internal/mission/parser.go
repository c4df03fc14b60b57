// Package mission parses and runs rover mission scripts:
//
//	# comments run to the end of the line
//	drive F F R F;
//	moveto 4, 4;
//	repeat 2 { drive L; }
package mission

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Drive  *Drive  `parser:"  @@ ';'"`
	MoveTo *MoveTo `parser:"| @@ ';'"`
	Repeat *Repeat `parser:"| @@"`
}

// Drive sends raw commands to the rover. Every character of every word is
// one command, so "drive FFR;" and "drive F F R;" are the same.
type Drive struct {
	Words []string `parser:"'drive' @Ident+"`
}

type MoveTo struct {
	X *Number `parser:"'moveto' @@"`
	Y *Number `parser:"','? @@"`
}

type Repeat struct {
	Count int          `parser:"'repeat' @Int"`
	Body  []*Statement `parser:"'{' @@* '}'"`
}

type Number struct {
	Negative bool `parser:"@'-'?"`
	Value    int  `parser:"@Int"`
}

func (n *Number) Int() int {
	if n.Negative {
		return -n.Value
	}
	return n.Value
}

var missionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-,;{}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(missionLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a mission script. name is used in error positions.
func Parse(name, src string) (*Program, error) {
	prog, err := parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("parse mission: %w", err)
	}
	return prog, nil
}
