// SPDX-License-Identifier: MIT
// Package: pathfind/floydwarshall
//
// floydwarshall.go — canonical dense APSP with deterministic loop order.
//
// Contract:
//   - Signed weights, any sign; behavior under a negative cycle is
//     undefined (not detected, not rejected).
//   - Sentinel-aware: candidates through an unreachable intermediate are
//     skipped; finite candidates accumulate with saturating addition.

package floydwarshall

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/pathfind/core"
)

// Distances computes all-pairs shortest distances of d: the returned
// matrix's row i holds the minimum accumulated weight from i to every
// vertex, assuming d contains no negative cycle (behavior under one is
// undefined — the bellmanford package is the engine that detects them).
//
// Initialization: sentinel everywhere, 0 on the diagonal, and per arc
// (u, v, w) the entry m[u][v] = min(m[u][v], w) — parallel arcs keep the
// minimum. Relaxation: for each intermediate k in 0..Order()-1, each pair
// (i, j) is lowered to m[i][k] + m[k][j] when that (saturating) sum
// improves it. The loop order k → i → j is fixed, so accumulation is
// deterministic.
//
// Complexity: O(V³) time, O(V²) space.
func Distances[W constraints.Signed](d core.Weighted[W]) *Matrix[W] {
	n := d.Order()
	inf := core.Inf[W]()
	m := &Matrix[W]{n: n, data: make([]W, n*n)}
	for i := range m.data {
		m.data[i] = inf
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 0
	}
	for _, arc := range d.Arcs() {
		if arc.Weight < m.data[arc.Tail*n+arc.Head] {
			m.data[arc.Tail*n+arc.Head] = arc.Weight
		}
	}

	// Predeclare loop state; the hot loops allocate nothing.
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand W
	)
	data := m.data
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == inf {
				continue // i cannot reach k; no path via k can improve i→j
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == inf {
					continue
				}
				cand = core.SaturatingAdd(ik, kj)
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return m
}
