package world

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"marsrover/internal/terrain"
)

type tokenType int

const (
	tokenSymbol tokenType = iota
	tokenNewline
)

type token struct {
	typ     tokenType
	literal string
	line    int
}

// Map files hold one row per line. Cells are single letters, optionally
// separated by blanks or commas. '#' starts a comment; blank lines are ignored.
var fieldLexer = sync.OnceValues(func() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`[ \t\r,]+`), skip)
	lexer.Add([]byte(`#[^\n]*`), skip)
	lexer.Add([]byte(`[\n]`), tokAction(tokenNewline))
	lexer.Add([]byte(`[A-Za-z]`), tokAction(tokenSymbol))
	if err := lexer.Compile(); err != nil {
		return nil, err
	}
	return lexer, nil
})

// ParseField reads the textual map format into rows of terrain symbols.
func ParseField(data []byte) ([][]terrain.Symbol, error) {
	lexer, err := fieldLexer()
	if err != nil {
		return nil, fmt.Errorf("compile map lexer: %w", err)
	}
	scanner, err := lexer.Scanner(data)
	if err != nil {
		return nil, err
	}

	var (
		field [][]terrain.Symbol
		row   []terrain.Symbol
	)
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, fmt.Errorf("parse map: %w", err)
		}
		t := tok.(token)
		switch t.typ {
		case tokenSymbol:
			row = append(row, terrain.Symbol(t.literal))
		case tokenNewline:
			if len(row) == 0 {
				continue
			}
			if len(field) > 0 && len(row) != len(field[0]) {
				return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrIrregularField, t.line, len(row), len(field[0]))
			}
			field = append(field, row)
			row = nil
		}
	}
	if len(row) > 0 {
		// no trailing newline; New reports a short last row
		field = append(field, row)
	}
	if len(field) == 0 {
		return nil, ErrEmptyField
	}
	return field, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(typ tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{
			typ:     typ,
			literal: string(m.Bytes),
			line:    m.StartLine,
		}, nil
	}
}
