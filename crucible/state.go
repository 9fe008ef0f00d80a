package crucible

import (
	"fmt"

	"github.com/ArthurMatthys/aoc"
)

// state is a node of the augmented search graph. run counts the steps taken
// in facing before the one that produced this state: the first step of a
// leg has run 0.
type state struct {
	cell   int
	facing aoc.Direction
	run    int
}

// slot is the state's index into the dense tables of a search with the
// given maxRun. Valid states have 0 <= run < maxRun.
func (s state) slot(maxRun int) int {
	return (s.cell*len(aoc.Directions)+int(s.facing))*maxRun + s.run
}

// step returns the state reached by moving one cell in d, with the
// direction's run updated.
func (s state) step(cell int, d aoc.Direction) state {
	if d == s.facing {
		return state{cell: cell, facing: d, run: s.run + 1}
	}
	return state{cell: cell, facing: d}
}

func (s state) String() string {
	return fmt.Sprintf("%d%v%d", s.cell, s.facing, s.run)
}
