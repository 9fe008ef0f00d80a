package crucible

import (
	"math"

	"github.com/ArthurMatthys/aoc"
)

// frontier holds discovered states ordered by cumulative cost. A state may
// be queued several times; entries that lose to an earlier pop are stale.
type frontier struct {
	q *aoc.PQ[state]
}

func newFrontier() frontier {
	return frontier{q: aoc.MinQueue[state]()}
}

func (f frontier) push(s state, cost int) {
	f.q.Push(&aoc.PQI[state]{V: s, P: cost})
}

func (f frontier) pop() (state, int) {
	it := f.q.Pop()
	return it.V, it.P
}

func (f frontier) len() int { return f.q.Len() }

// table is the visited/best-cost record of one search, indexed by
// state.slot. It holds cells*4*maxRun entries.
type table struct {
	maxRun int
	best   []int
	done   []bool
	parent []int // slot of the predecessor; -1 for seeds. nil unless routes are kept.
}

func newTable(cells, maxRun int, withParents bool) *table {
	n := cells * len(aoc.Directions) * maxRun
	t := &table{
		maxRun: maxRun,
		best:   make([]int, n),
		done:   make([]bool, n),
	}
	for i := range t.best {
		t.best[i] = math.MaxInt
	}
	if withParents {
		t.parent = make([]int, n)
		for i := range t.parent {
			t.parent[i] = -1
		}
	}
	return t
}

func (t *table) size() int { return len(t.best) }

func (t *table) finalized(s state) bool {
	return t.done[s.slot(t.maxRun)]
}

func (t *table) finalize(s state) {
	t.done[s.slot(t.maxRun)] = true
}

// offer records cost for s if it beats everything seen so far and s is not
// final. It reports whether s should be queued.
func (t *table) offer(s state, cost int, from int) bool {
	i := s.slot(t.maxRun)
	if t.done[i] || cost >= t.best[i] {
		return false
	}
	t.best[i] = cost
	if t.parent != nil {
		t.parent[i] = from
	}
	return true
}

// unslot is the inverse of state.slot.
func (t *table) unslot(i int) state {
	run := i % t.maxRun
	i /= t.maxRun
	return state{
		cell:   i / len(aoc.Directions),
		facing: aoc.Direction(i % len(aoc.Directions)),
		run:    run,
	}
}

// trace walks parent pointers back from s to its seed and returns the
// states in travel order.
func (t *table) trace(s state) []state {
	var out []state
	for i := s.slot(t.maxRun); i >= 0; i = t.parent[i] {
		out = append(out, t.unslot(i))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
