package crucible

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/ArthurMatthys/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	g, err := Parse("2413\n3215\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 8, g.Len())
	assert.Equal(t, 0, g.Origin())
	assert.Equal(t, 7, g.Target())
	assert.Equal(t, 2, g.Cost(5))
	assert.Equal(t, 2, g.CostAt(aoc.Pt{X: 1, Y: 1}))
	assert.Equal(t, 5, g.Cost(g.Target()))
	assert.Equal(t, "2413\n3215", g.String())
}

func TestParseTolerates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"leading and trailing blanks", "\n\n123\n456\n\n"},
		{"crlf", "123\r\n456\r\n"},
		{"whitespace-only trailer", "123\n456\n  \t\n"},
		{"no final newline", "123\n456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, "123\n456", g.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		err       error
		line, col int
	}{
		{"empty", "", ErrEmptyGrid, 0, 0},
		{"only blanks", " \n\t\n\n", ErrEmptyGrid, 0, 0},
		{"short row", "123\n45\n", ErrRaggedGrid, 2, 0},
		{"long row", "12\n345\n", ErrRaggedGrid, 2, 0},
		{"blank between rows", "123\n\n456\n", ErrRaggedGrid, 2, 0},
		{"letter", "123\n4a6\n", ErrNotDigit, 2, 2},
		{"space inside", "1 3\n", ErrNotDigit, 1, 2},
		{"minus", "-12\n", ErrNotDigit, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, IsParseError(err))

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line, "line")
			assert.Equal(t, tt.col, pe.Col, "col")
		})
	}
}

func TestParseLineTooLong(t *testing.T) {
	_, err := Parse("12\n" + strings.Repeat("1", bufio.MaxScanTokenSize+1) + "\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.True(t, IsParseError(err))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("12a\n")
	require.Error(t, err)
	assert.Equal(t, "parse grid: line 1 col 3: aoc: not a digit", err.Error())
	assert.ErrorIs(t, err, aoc.ErrNotDigit)

	_, err = Parse("")
	assert.Equal(t, "parse grid: "+ErrEmptyGrid.Error(), err.Error())
}

func TestNewGrid(t *testing.T) {
	values := [][]int{{1, 12}, {3, 4}}
	g, err := NewGrid(values)
	require.NoError(t, err)
	values[0][0] = 7
	assert.Equal(t, 1, g.Cost(0), "grid must not alias its input")
	assert.Equal(t, "1#\n34", g.String())

	tests := []struct {
		name      string
		values    [][]int
		err       error
		line, col int
	}{
		{"nil", nil, ErrEmptyGrid, 0, 0},
		{"no columns", [][]int{{}}, ErrEmptyGrid, 0, 0},
		{"ragged", [][]int{{1, 2}, {3}}, ErrRaggedGrid, 2, 0},
		{"negative", [][]int{{1, 2}, {3, -1}}, ErrNegativeCost, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.values)
			assert.ErrorIs(t, err, tt.err)
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.col, pe.Col)
		})
	}
}

func TestGridMove(t *testing.T) {
	g, err := Parse("123\n456\n")
	require.NoError(t, err)

	tests := []struct {
		cell int
		d    aoc.Direction
		want int
		ok   bool
	}{
		{0, aoc.East, 1, true},
		{0, aoc.South, 3, true},
		{0, aoc.North, 0, false},
		{0, aoc.West, 0, false},
		{2, aoc.East, 0, false},
		{5, aoc.South, 0, false},
		{5, aoc.West, 4, true},
		{4, aoc.North, 1, true},
	}
	for _, tt := range tests {
		got, ok := g.Move(tt.cell, tt.d)
		assert.Equal(t, tt.ok, ok, "Move(%d, %v)", tt.cell, tt.d)
		assert.Equal(t, tt.want, got, "Move(%d, %v)", tt.cell, tt.d)
	}

	for cell := 0; cell < g.Len(); cell++ {
		assert.Equal(t, cell, g.Index(g.Point(cell)))
	}
}

func TestGridTranspose(t *testing.T) {
	g, err := Parse("123\n456\n")
	require.NoError(t, err)
	tr := g.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, "14\n25\n36", tr.String())
	assert.Equal(t, g.Cost(g.Target()), tr.Cost(tr.Target()))
	assert.Equal(t, g.Hash(), tr.Transpose().Hash())
	assert.Equal(t, "123\n456", g.String(), "Transpose must not modify the receiver")
}
