// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// generators.go — deterministic digraph topology constructors.
//
// Contract (all constructors):
//   - Validate parameters early; return sentinel errors, never panic.
//   - Emit arcs in a stable, documented order.
//   - Stochastic constructors draw exclusively from the resolved config
//     RNG, so the same seed reproduces the same digraph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Empty returns the digraph with n vertices and no arcs (n ≥ 0).
func Empty(n int) (*core.AdjacencyList, error) {
	if n < 0 {
		return nil, fmt.Errorf("Empty: n=%d: %w", n, ErrTooFewVertices)
	}

	return core.NewAdjacencyList(n), nil
}

// Path returns the path digraph P_n: arcs i→i+1 for i in 0..n-1, emitted
// in ascending i (n ≥ 1).
func Path(n int) (*core.AdjacencyList, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	d := core.NewAdjacencyList(n)
	for i := 0; i+1 < n; i++ {
		d.AddArc(i, i+1)
	}

	return d, nil
}

// Cycle returns the directed cycle C_n: arcs i→(i+1) mod n, emitted in
// ascending i (n ≥ 1; C_1 is a single self-loop).
func Cycle(n int) (*core.AdjacencyList, error) {
	if n < 1 {
		return nil, fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
	}
	d := core.NewAdjacencyList(n)
	for i := 0; i < n; i++ {
		d.AddArc(i, (i+1)%n)
	}

	return d, nil
}

// Star returns the star digraph with center 0: arc pairs 0→i and i→0 for
// every leaf i in 1..n, emitted in ascending i (n ≥ 1).
func Star(n int) (*core.AdjacencyList, error) {
	if n < 1 {
		return nil, fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
	}
	d := core.NewAdjacencyList(n)
	for i := 1; i < n; i++ {
		d.AddArc(0, i)
		d.AddArc(i, 0)
	}

	return d, nil
}

// Complete returns the complete digraph K_n: one arc u→v for every
// ordered pair of distinct vertices, emitted tail-major (n ≥ 0).
func Complete(n int) (*core.AdjacencyList, error) {
	if n < 0 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	d := core.NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				d.AddArc(u, v)
			}
		}
	}

	return d, nil
}

// RandomSparse returns a digraph on n vertices in which each ordered
// pair of distinct vertices carries an arc independently with
// probability p. Pairs are scanned tail-major, so a fixed seed fully
// determines the result.
func RandomSparse(n int, p float64, opts ...Option) (*core.AdjacencyList, error) {
	if n < 0 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	d := core.NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && cfg.rng.Float64() < p {
				d.AddArc(u, v)
			}
		}
	}

	return d, nil
}

// RandomTournament returns a tournament on n vertices: exactly one arc
// between every unordered pair of distinct vertices, its direction drawn
// from the config RNG. Pairs are scanned in ascending (u, v) order with
// u < v, so a fixed seed fully determines the result.
func RandomTournament(n int, opts ...Option) (*core.AdjacencyList, error) {
	if n < 0 {
		return nil, fmt.Errorf("RandomTournament: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	d := core.NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if cfg.rng.Intn(2) == 0 {
				d.AddArc(u, v)
			} else {
				d.AddArc(v, u)
			}
		}
	}

	return d, nil
}
