package core

import "fmt"

// AdjacencyList is a slice-backed unweighted digraph over the dense vertex
// range 0..Order(). It is the default representation for the BFS engine
// and the input type produced by the builder package.
//
// The zero value is an empty digraph of order 0; use NewAdjacencyList to
// size the vertex range up front.
type AdjacencyList struct {
	out  [][]int // out[u] lists the heads of arcs with tail u
	size int     // total number of arcs
}

// NewAdjacencyList returns an empty digraph with the given number of
// vertices and no arcs. Panics if order is negative.
func NewAdjacencyList(order int) *AdjacencyList {
	if order < 0 {
		panic(fmt.Sprintf("core: negative order %d", order))
	}

	return &AdjacencyList{out: make([][]int, order)}
}

// Order reports the number of vertices.
func (d *AdjacencyList) Order() int { return len(d.out) }

// Size reports the number of arcs.
func (d *AdjacencyList) Size() int { return d.size }

// AddArc inserts the arc u→v. Parallel arcs are kept as-is.
// Panics if either endpoint is outside [0, Order()).
func (d *AdjacencyList) AddArc(u, v int) {
	d.mustVertex(u)
	d.mustVertex(v)
	d.out[u] = append(d.out[u], v)
	d.size++
}

// OutNeighbors returns the heads of all arcs with tail u, in insertion
// order. The returned slice is shared with the digraph's internal state
// and must not be mutated by the caller. Panics if u is out of range.
func (d *AdjacencyList) OutNeighbors(u int) []int {
	d.mustVertex(u)

	return d.out[u]
}

// HasArc reports whether at least one arc u→v exists.
// Panics if either endpoint is out of range.
func (d *AdjacencyList) HasArc(u, v int) bool {
	d.mustVertex(u)
	d.mustVertex(v)
	for _, head := range d.out[u] {
		if head == v {
			return true
		}
	}

	return false
}

// mustVertex aborts on an out-of-range vertex id. Continuing with a bad
// index would silently desynchronize every index-aligned distance vector
// derived from this digraph.
func (d *AdjacencyList) mustVertex(v int) {
	if v < 0 || v >= len(d.out) {
		panic(fmt.Sprintf("core: vertex %d out of range [0, %d)", v, len(d.out)))
	}
}
