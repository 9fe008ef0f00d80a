package main

import (
	"bytes"
	_ "embed"

	"github.com/ArthurMatthys/aoc"
	"github.com/ArthurMatthys/aoc/crucible"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) solve(cfg crucible.Config) any {
	g, err := crucible.ParseReader(bytes.NewReader(s.Input()))
	if err != nil {
		s.Fatal(err)
	}
	res, err := crucible.Search(g, cfg, crucible.WithPath(), crucible.WithLogger(s.Logger()))
	if err != nil {
		s.Fatal(err)
	}
	s.Debugf("%v: %d moves, %d pops (%d stale)", cfg, len(res.Moves), res.Stats.Pops, res.Stats.Stale)
	return res.Cost
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return s.solve(crucible.Crucible)
}

// want=94
func (s solver) D17p2() any {
	return s.solve(crucible.Ultra)
}
