package aoc

import (
	"math"
)

// Graph is a weighted directed graph. Edges[a][b] is the cost of moving
// from a to b.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds a one-way edge from a to b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// ShortestPath returns the cost of the cheapest walk from start to end using
// Dijkstra's algorithm. Edge costs must be non-negative. It reports false if
// end cannot be reached.
func (g *Graph[K]) ShortestPath(start, end K) (int, bool) {
	if !g.Nodes[start] || !g.Nodes[end] {
		return 0, false
	}
	dist := map[K]int{start: 0}
	done := make(map[K]bool, len(g.Nodes))
	q := MinQueue[K]()
	q.Push(&PQI[K]{V: start, P: 0})
	for q.Len() > 0 {
		it := q.Pop()
		if done[it.V] {
			continue
		}
		done[it.V] = true
		if it.V == end {
			return it.P, true
		}
		for k, w := range g.Edges[it.V] {
			if done[k] {
				continue
			}
			nd := it.P + w
			if d, ok := dist[k]; ok && d <= nd {
				continue
			}
			dist[k] = nd
			q.Push(&PQI[K]{V: k, P: nd})
		}
	}
	return math.MaxInt, false
}
