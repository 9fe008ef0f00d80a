package aoc

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// InBounds reports whether p addresses a cell of g.
func (g Grid[T]) InBounds(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

var hashers sync.Map // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a fingerprint of the grid contents. Two grids with the same
// cells hash identically.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ToCostGraph converts the grid into a directed graph over its cells. Every
// cell has an arc to each orthogonal neighbor, weighted by the cost of the
// cell being entered.
func ToCostGraph[T constraints.Integer](grid Grid[T]) Graph[Pt] {
	var g Graph[Pt]
	size := grid.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := Pt{x, y}
			g.AddNode(p)
			p.ForImmediateNeighbors(func(n Pt) bool {
				if v, ok := grid.AtOk(n); ok {
					g.AddArc(p, n, int(v))
				}
				return true
			})
		}
	}
	return g
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one cell in p.Dir. It reports false if the result would
// leave the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

// Direction is one of the four orthogonal headings. The values are ordered
// counter-clockwise starting from East.
type Direction int

const (
	East Direction = iota
	North
	West
	South
)

// Directions lists every Direction in declaration order.
var Directions = [4]Direction{East, North, West, South}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta is the unit step for d. Y grows downwards.
func (d Direction) Delta() Pt {
	switch d {
	case East:
		return Pt{1, 0}
	case North:
		return Pt{0, -1}
	case West:
		return Pt{-1, 0}
	case South:
		return Pt{0, 1}
	}
	panic("bad direction")
}

func (d Direction) String() string {
	switch d {
	case West:
		return "<"
	case East:
		return ">"
	case North:
		return "^"
	case South:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
