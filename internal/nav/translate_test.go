package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func path(xy ...int) []Coordinate {
	out := make([]Coordinate, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Coordinate{xy[i], xy[i+1]})
	}
	return out
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		path     []Coordinate
		heading  Heading
		expected []Command
	}{
		{
			name:     "empty path",
			heading:  North,
			expected: nil,
		},
		{
			name:     "single cell",
			path:     path(2, 2),
			heading:  North,
			expected: nil,
		},
		{
			name:     "forward and backward never turn",
			path:     path(2, 2, 2, 1, 2, 2, 2, 3),
			heading:  North,
			expected: Commands("F", "B", "B"),
		},
		{
			name:     "around the crevasse",
			path:     path(0, 0, 1, 0, 2, 0, 2, 1, 2, 2, 2, 3, 2, 4, 3, 4, 4, 4),
			heading:  East,
			expected: Commands("F", "F", "R", "F", "F", "F", "F", "L", "F", "F"),
		},
		{
			name:     "backing down then turning right",
			path:     path(2, 2, 2, 3, 2, 4, 3, 4, 4, 4),
			heading:  North,
			expected: Commands("B", "B", "R", "F", "F"),
		},
		{
			name:     "west then north",
			path:     path(3, 3, 2, 3, 2, 2),
			heading:  South,
			expected: Commands("R", "F", "R", "F"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(tt.path, tt.heading)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTranslateDiscontinuous(t *testing.T) {
	for _, p := range [][]Coordinate{
		path(0, 0, 1, 1),
		path(0, 0, 0, 2),
		path(0, 0, 0, 0),
	} {
		_, err := Translate(p, North)
		assert.ErrorIs(t, err, ErrDiscontinuousPath)
	}
}
