// SPDX-License-Identifier: MIT
// Package: pathfind/floydwarshall
//
// matrix.go — dense all-pairs distance matrix returned by Distances.
//
// Contract:
//   - Square n×n, flat row-major buffer (no per-row pointers).
//   - Off-diagonal sentinel core.Inf[W]() means "no path"; the diagonal
//     is 0 unless a negative self-loop lowered it (undefined territory).
//   - Indexed access outside [0, Order()) panics.

package floydwarshall

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Matrix is the fully relaxed all-pairs distance matrix: At(i, j) is the
// minimum accumulated weight from i to j, or the sentinel when j is
// unreachable from i.
type Matrix[W constraints.Signed] struct {
	n    int
	data []W // row-major: data[i*n+j] holds the distance i→j
}

// Order reports the number of vertices the matrix spans.
func (m *Matrix[W]) Order() int { return m.n }

// At returns the distance from i to j. Panics if either index is out of
// range.
func (m *Matrix[W]) At(i, j int) W {
	m.mustVertex(i)
	m.mustVertex(j)

	return m.data[i*m.n+j]
}

// Row returns the distances from i to every vertex, index-aligned with
// vertex ids. The returned slice is a view of the matrix's internal
// buffer and must not be mutated by the caller. Panics if i is out of
// range.
func (m *Matrix[W]) Row(i int) []W {
	m.mustVertex(i)

	return m.data[i*m.n : (i+1)*m.n]
}

func (m *Matrix[W]) mustVertex(v int) {
	if v < 0 || v >= m.n {
		panic(fmt.Sprintf("floydwarshall: vertex %d out of range [0, %d)", v, m.n))
	}
}
