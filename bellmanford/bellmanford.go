// Package bellmanford implements the Bellman-Ford-Moore single-source
// shortest-path algorithm over a weighted digraph capability with signed
// arc weights, including detection of reachable negative-weight cycles.
package bellmanford

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/pathfind/core"
)

// ErrNegativeCycle is returned when a negative-weight cycle is reachable
// from the source, making "shortest path" undefined for every vertex
// reachable through it. This is an expected, data-dependent outcome
// reported as a value — not a panic. Branch with errors.Is.
var ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")

// Distances returns the minimum accumulated weight from source to every
// vertex of d, index-aligned with vertex ids. Vertices unreachable from
// the source keep the sentinel core.Inf[W](); the source reports 0. Arc
// weights may be negative; if a negative cycle is reachable from the
// source, Distances returns (nil, ErrNegativeCycle).
//
// The engine performs at most Order()-1 relaxation rounds over a single
// arc snapshot, terminating early once a full round produces no update
// (fixpoint). One additional pass over all arcs then detects any
// still-relaxable arc, which certifies a reachable negative cycle. All
// weight accumulation saturates, so combining a finite weight with the
// sentinel can never wrap to a small or negative value.
//
// Panics if source lies outside [0, d.Order()).
//
// Complexity: O(V·E) worst case; O(rounds-to-fixpoint · E) with the
// early exit.
func Distances[W constraints.Signed](d core.Weighted[W], source int) ([]W, error) {
	n := d.Order()
	if source < 0 || source >= n {
		panic(fmt.Sprintf("bellmanford: source vertex %d out of range [0, %d)", source, n))
	}

	inf := core.Inf[W]()
	dist := make([]W, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[source] = 0

	// One snapshot of the arc set; iteration order is stable across all
	// rounds of this call.
	arcs := d.Arcs()

	var cand W
	for round := 1; round < n; round++ {
		updated := false
		for _, arc := range arcs {
			if dist[arc.Tail] == inf {
				continue // nothing finite to relax through yet
			}
			cand = core.SaturatingAdd(dist[arc.Tail], arc.Weight)
			if cand < dist[arc.Head] {
				dist[arc.Head] = cand
				updated = true
			}
		}
		if !updated {
			break // fixpoint reached before Order()-1 rounds
		}
	}

	// A still-relaxable arc after Order()-1 rounds certifies a negative
	// cycle reachable from the source.
	for _, arc := range arcs {
		if dist[arc.Tail] == inf {
			continue
		}
		if core.SaturatingAdd(dist[arc.Tail], arc.Weight) < dist[arc.Head] {
			return nil, ErrNegativeCycle
		}
	}

	return dist, nil
}
