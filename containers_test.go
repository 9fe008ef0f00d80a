package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinQueue(t *testing.T) {
	q := MinQueue[string]()
	for _, it := range []*PQI[string]{
		{V: "c", P: 3},
		{V: "a", P: 1},
		{V: "d", P: 4},
		{V: "b", P: 2},
		{V: "a2", P: 1},
	} {
		q.Push(it)
	}

	var got []int
	first := q.Pop()
	assert.Equal(t, 1, first.P)
	for q.Len() > 0 {
		got = append(got, q.Pop().P)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}
