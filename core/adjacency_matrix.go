package core

import "fmt"

// AdjacencyMatrix is a dense unweighted digraph backed by a flat
// row-major bit table. Arc lookup is O(1); OutNeighbors scans one row.
// Parallel arcs collapse into a single arc, which makes the matrix a
// natural fit for simple digraphs and for order-heavy, arc-dense inputs.
type AdjacencyMatrix struct {
	n    int
	data []bool // data[u*n+v] == true iff the arc u→v exists
}

// NewAdjacencyMatrix returns an empty digraph with the given number of
// vertices and no arcs. Panics if order is negative.
func NewAdjacencyMatrix(order int) *AdjacencyMatrix {
	if order < 0 {
		panic(fmt.Sprintf("core: negative order %d", order))
	}

	return &AdjacencyMatrix{n: order, data: make([]bool, order*order)}
}

// Order reports the number of vertices.
func (d *AdjacencyMatrix) Order() int { return d.n }

// AddArc inserts the arc u→v; inserting an existing arc is a no-op.
// Panics if either endpoint is outside [0, Order()).
func (d *AdjacencyMatrix) AddArc(u, v int) {
	d.mustVertex(u)
	d.mustVertex(v)
	d.data[u*d.n+v] = true
}

// HasArc reports whether the arc u→v exists.
// Panics if either endpoint is out of range.
func (d *AdjacencyMatrix) HasArc(u, v int) bool {
	d.mustVertex(u)
	d.mustVertex(v)

	return d.data[u*d.n+v]
}

// OutNeighbors returns the heads of all arcs with tail u, in ascending
// vertex order. The slice is freshly allocated on each call.
// Panics if u is out of range.
func (d *AdjacencyMatrix) OutNeighbors(u int) []int {
	d.mustVertex(u)
	var heads []int
	base := u * d.n
	for v := 0; v < d.n; v++ {
		if d.data[base+v] {
			heads = append(heads, v)
		}
	}

	return heads
}

func (d *AdjacencyMatrix) mustVertex(v int) {
	if v < 0 || v >= d.n {
		panic(fmt.Sprintf("core: vertex %d out of range [0, %d)", v, d.n))
	}
}
