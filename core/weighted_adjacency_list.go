package core

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// WeightedAdjacencyList is a slice-backed weighted digraph over the dense
// vertex range 0..Order(), generic over the integer weight type W. It is
// the default representation for the Dijkstra, Bellman-Ford-Moore and
// Floyd-Warshall engines.
type WeightedAdjacencyList[W constraints.Integer] struct {
	out  [][]Arc[W] // out[u] lists the arcs with tail u
	size int        // total number of arcs
}

// NewWeightedAdjacencyList returns an empty weighted digraph with the
// given number of vertices and no arcs. Panics if order is negative.
func NewWeightedAdjacencyList[W constraints.Integer](order int) *WeightedAdjacencyList[W] {
	if order < 0 {
		panic(fmt.Sprintf("core: negative order %d", order))
	}

	return &WeightedAdjacencyList[W]{out: make([][]Arc[W], order)}
}

// Order reports the number of vertices.
func (d *WeightedAdjacencyList[W]) Order() int { return len(d.out) }

// Size reports the number of arcs.
func (d *WeightedAdjacencyList[W]) Size() int { return d.size }

// AddArc inserts the arc u→v with weight w. Parallel arcs are kept as-is.
// Panics if either endpoint is outside [0, Order()).
func (d *WeightedAdjacencyList[W]) AddArc(u, v int, w W) {
	d.mustVertex(u)
	d.mustVertex(v)
	d.out[u] = append(d.out[u], Arc[W]{Tail: u, Head: v, Weight: w})
	d.size++
}

// OutArcs returns every arc with tail u, in insertion order. The returned
// slice is shared with the digraph's internal state and must not be
// mutated by the caller. Panics if u is out of range.
func (d *WeightedAdjacencyList[W]) OutArcs(u int) []Arc[W] {
	d.mustVertex(u)

	return d.out[u]
}

// Arcs returns every arc of the digraph exactly once, grouped by tail in
// ascending order and by insertion order within a tail. The slice is
// freshly allocated on each call.
func (d *WeightedAdjacencyList[W]) Arcs() []Arc[W] {
	arcs := make([]Arc[W], 0, d.size)
	for _, row := range d.out {
		arcs = append(arcs, row...)
	}

	return arcs
}

func (d *WeightedAdjacencyList[W]) mustVertex(v int) {
	if v < 0 || v >= len(d.out) {
		panic(fmt.Sprintf("core: vertex %d out of range [0, %d)", v, len(d.out)))
	}
}
