package crucible

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ArthurMatthys/aoc"
	"tailscale.com/util/deephash"
)

// Grid is an immutable rectangular matrix of non-negative cell costs. Cells
// are addressed either by point or by row-major index.
type Grid struct {
	cells      aoc.Grid[int]
	rows, cols int
}

// Parse builds a Grid from rows of ASCII digits, one row per line. Blank
// lines before the first row and after the last are ignored.
func Parse(input string) (*Grid, error) {
	return ParseReader(strings.NewReader(input))
}

// ParseReader is Parse over a reader.
func ParseReader(r io.Reader) (*Grid, error) {
	var (
		cells  aoc.Grid[int]
		lineNo int
		blanks int // blank lines seen since the last row
	)
	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNo++
		line := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		if len(cells) > 0 && blanks > 0 {
			return nil, &ParseError{Line: lineNo - blanks, Err: ErrRaggedGrid}
		}
		blanks = 0
		row, err := aoc.Digits(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Col: badColumn(line), Err: ErrNotDigit}
		}
		if len(cells) > 0 && len(row) != len(cells[0]) {
			return nil, &ParseError{Line: lineNo, Err: ErrRaggedGrid}
		}
		cells = append(cells, row)
	}
	if err := s.Err(); err != nil {
		return nil, &ParseError{Line: lineNo + 1, Err: err}
	}
	if len(cells) == 0 {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}
	return newGrid(cells), nil
}

// badColumn returns the 1-based rune column of the first non-digit in line.
func badColumn(line string) int {
	col := 0
	for _, r := range line {
		col++
		if _, err := aoc.Digit(r); err != nil {
			return col
		}
	}
	return 0
}

// NewGrid builds a Grid from a copy of values.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}
	cols := len(values[0])
	cells := aoc.MakeGrid[int](cols, len(values))
	for y, row := range values {
		if len(row) != cols {
			return nil, &ParseError{Line: y + 1, Err: ErrRaggedGrid}
		}
		for x, v := range row {
			if v < 0 {
				return nil, &ParseError{Line: y + 1, Col: x + 1, Err: ErrNegativeCost}
			}
		}
		copy(cells[y], row)
	}
	return newGrid(cells), nil
}

func newGrid(cells aoc.Grid[int]) *Grid {
	size := cells.Size()
	return &Grid{cells: cells, rows: size.Y, cols: size.X}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Len is the number of cells.
func (g *Grid) Len() int { return g.rows * g.cols }

// Cost returns the cost of the cell at row-major index cell.
func (g *Grid) Cost(cell int) int {
	return g.cells.At(g.Point(cell))
}

func (g *Grid) CostAt(p aoc.Pt) int {
	return g.cells.At(p)
}

func (g *Grid) InBounds(p aoc.Pt) bool {
	return g.cells.InBounds(p)
}

// Index maps p to its row-major index.
func (g *Grid) Index(p aoc.Pt) int {
	return p.Y*g.cols + p.X
}

// Point maps a row-major index back to its point.
func (g *Grid) Point(cell int) aoc.Pt {
	return aoc.Pt{X: cell % g.cols, Y: cell / g.cols}
}

// Origin is the index of the top-left cell.
func (g *Grid) Origin() int { return 0 }

// Target is the index of the bottom-right cell.
func (g *Grid) Target() int { return g.Len() - 1 }

// Move steps one cell from cell in direction d. It reports false if that
// would leave the grid.
func (g *Grid) Move(cell int, d aoc.Direction) (int, bool) {
	next, ok := g.cells.Move(aoc.Path{Pt: g.Point(cell), Dir: d})
	if !ok {
		return 0, false
	}
	return g.Index(next.Pt), true
}

// Transpose returns a new Grid mirrored along its main diagonal.
func (g *Grid) Transpose() *Grid {
	return newGrid(g.cells.Transpose())
}

// Hash fingerprints the grid contents.
func (g *Grid) Hash() deephash.Sum {
	return g.cells.Hash()
}

// String renders the grid back into its digit form. Costs above 9 cannot be
// written as one digit and are shown as '#'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v > 9 {
				sb.WriteByte('#')
				continue
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// IsParseError reports whether err came from malformed grid input.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
