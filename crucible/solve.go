package crucible

import (
	"github.com/ArthurMatthys/aoc"
)

// Stats counts the work done by one search.
type Stats struct {
	Pops   int // entries taken from the frontier
	Stale  int // popped entries whose state was already final
	Pushes int // entries added to the frontier
	Slots  int // size of the visited/best-cost table
}

// Result is the outcome of a successful Search.
type Result struct {
	// Cost is the sum of the costs of every cell entered. The origin is
	// never entered and so never counted.
	Cost int
	// Path lists the cells of the route from origin to target inclusive.
	// Moves[i] is the direction taken from Path[i] to Path[i+1]. Both are
	// nil unless WithPath was given.
	Path  []aoc.Pt
	Moves []aoc.Direction
	Stats Stats
}

// Solve returns the minimum cost of moving from the top-left to the
// bottom-right cell of g. Every leg must span between minRun+1 and maxRun
// cells and the walker never reverses.
//
// It returns a *ConfigError for invalid limits and ErrUnreachable when no
// route satisfies them.
func Solve(g *Grid, minRun, maxRun int) (int, error) {
	res, err := Search(g, Config{MinRun: minRun, MaxRun: maxRun})
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// Search is Solve with options, returning the full Result.
//
// The search runs Dijkstra's algorithm over states of (cell, facing, run).
// Position alone does not determine which moves remain legal, so two walkers
// on one cell with different histories are distinct nodes.
func Search(g *Grid, cfg Config, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// A leg never spans more cells than the longer side of the grid, so
	// larger limits are clamped before the tables are sized.
	maxRun := min(cfg.MaxRun, max(g.Rows(), g.Cols()))
	r := &runner{
		g:       g,
		cfg:     cfg,
		maxRun:  maxRun,
		target:  g.Target(),
		visited: newTable(g.Len(), maxRun, o.KeepPath),
		queue:   newFrontier(),
	}
	r.stats.Slots = r.visited.size()
	r.seed()
	end, cost, ok := r.process()

	o.Logger.Debug("search finished",
		"rows", g.Rows(), "cols", g.Cols(), "limits", cfg,
		"found", ok, "cost", cost,
		"pops", r.stats.Pops, "stale", r.stats.Stale,
		"pushes", r.stats.Pushes, "slots", r.stats.Slots)
	if !ok {
		return nil, ErrUnreachable
	}

	res := &Result{Cost: cost, Stats: r.stats}
	if o.KeepPath {
		res.Path, res.Moves = r.route(end)
	}
	return res, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g       *Grid
	cfg     Config
	maxRun  int // cfg.MaxRun clamped to the grid
	target  int
	visited *table
	queue   frontier
	stats   Stats
}

// seed queues the first step east and the first step south. The walker may
// not start by standing still, and the origin's own cost is not paid.
//
// Nothing is seeded when no leg is allowed, or when legs have a minimum and
// the grid is narrower than min_run+1 cells along either axis.
func (r *runner) seed() {
	if r.maxRun < 1 {
		return
	}
	if r.cfg.MinRun > 0 && min(r.g.Rows(), r.g.Cols()) < r.cfg.MinRun+1 {
		return
	}
	for _, d := range []aoc.Direction{aoc.East, aoc.South} {
		cell, ok := r.g.Move(r.g.Origin(), d)
		if !ok {
			continue
		}
		r.push(state{cell: cell, facing: d}, r.g.Cost(cell), -1)
	}
}

// process pops states in non-decreasing cost order until one may stop on
// the target. Costs are non-negative, so the first such state is optimal.
func (r *runner) process() (state, int, bool) {
	for r.queue.len() > 0 {
		s, cost := r.queue.pop()
		r.stats.Pops++
		if r.visited.finalized(s) {
			r.stats.Stale++
			continue
		}
		r.visited.finalize(s)

		if s.cell == r.target && s.run >= r.cfg.MinRun {
			return s, cost, true
		}
		r.expand(s, cost)
	}
	return state{}, 0, false
}

// expand queues every legal successor of s.
func (r *runner) expand(s state, cost int) {
	from := s.slot(r.maxRun)
	for _, d := range aoc.Directions {
		switch {
		case d == s.facing.Opposite():
			continue
		case d == s.facing && s.run+1 >= r.maxRun:
			continue
		case d != s.facing && s.run < r.cfg.MinRun:
			continue
		}
		cell, ok := r.g.Move(s.cell, d)
		if !ok {
			continue
		}
		r.push(s.step(cell, d), cost+r.g.Cost(cell), from)
	}
}

func (r *runner) push(s state, cost, from int) {
	if !r.visited.offer(s, cost, from) {
		return
	}
	r.stats.Pushes++
	r.queue.push(s, cost)
}

// route rebuilds the cells and moves that led to end.
func (r *runner) route(end state) ([]aoc.Pt, []aoc.Direction) {
	states := r.visited.trace(end)
	path := make([]aoc.Pt, 0, len(states)+1)
	moves := make([]aoc.Direction, 0, len(states))
	path = append(path, r.g.Point(r.g.Origin()))
	for _, s := range states {
		path = append(path, r.g.Point(s.cell))
		moves = append(moves, s.facing)
	}
	return path, moves
}

// Unconstrained returns the cheapest route cost with no run limits at all.
// It is a lower bound for Solve on the same grid.
func Unconstrained(g *Grid) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	graph := aoc.ToCostGraph(g.cells)
	cost, ok := graph.ShortestPath(g.Point(g.Origin()), g.Point(g.Target()))
	if !ok {
		return 0, ErrUnreachable
	}
	return cost, nil
}
