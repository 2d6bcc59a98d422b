// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// weights.go — lifting an unweighted topology into a weighted digraph.

package builder

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/pathfind/core"
)

// WeightFn draws one arc weight from the supplied RNG. Implementations
// must consume only the given stream so results stay reproducible.
type WeightFn[W constraints.Integer] func(r *rand.Rand) W

// ConstWeight returns a WeightFn that assigns the same weight to every
// arc — handy for exercising unit-cost digraphs against hop counts.
func ConstWeight[W constraints.Integer](w W) WeightFn[W] {
	return func(*rand.Rand) W { return w }
}

// UniformWeight returns a WeightFn drawing uniformly from [lo, hi].
// Bounds are inclusive; lo > hi swaps them.
func UniformWeight[W constraints.Integer](lo, hi W) WeightFn[W] {
	if lo > hi {
		lo, hi = hi, lo
	}

	return func(r *rand.Rand) W {
		return lo + W(r.Int63n(int64(hi-lo)+1))
	}
}

// AssignWeights lifts an unweighted topology into a weighted digraph,
// drawing one weight per arc from wf. Arcs are visited tail-major in
// insertion order, so a fixed topology, weight function and seed
// reproduce the same weighted digraph.
func AssignWeights[W constraints.Integer](d *core.AdjacencyList, wf WeightFn[W], opts ...Option) (*core.WeightedAdjacencyList[W], error) {
	if d == nil {
		return nil, fmt.Errorf("AssignWeights: %w", ErrNilDigraph)
	}
	if wf == nil {
		return nil, fmt.Errorf("AssignWeights: %w", ErrNilWeightFunc)
	}
	cfg := newConfig(opts...)
	w := core.NewWeightedAdjacencyList[W](d.Order())
	for u := 0; u < d.Order(); u++ {
		for _, v := range d.OutNeighbors(u) {
			w.AddArc(u, v, wf(cfg.rng))
		}
	}

	return w, nil
}
