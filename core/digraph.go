// Package core defines the capability contracts consumed by every
// shortest-path engine in pathfind, together with concrete in-memory
// digraph representations that satisfy them.
package core

import "golang.org/x/exp/constraints"

// Arc is a single directed connection from Tail to Head carrying a Weight.
// Vertices are plain indices in 0..Order() of the owning digraph.
type Arc[W constraints.Integer] struct {
	Tail   int // origin vertex
	Head   int // destination vertex
	Weight W   // arc weight; sign discipline is the algorithm's contract
}

// Digraph is the minimal unweighted capability: a vertex count and
// out-neighbor iteration. Any representation satisfying it can be fed to
// the BFS engine; none of the engines ever mutate the digraph.
//
// Contract:
//   - Order reports the vertex count n; valid vertex ids are 0..n-1.
//   - OutNeighbors(u) returns the heads of all arcs with tail u, each arc
//     exactly once; the order is unspecified but stable within a single
//     pass over the digraph.
//   - OutNeighbors must panic when u is outside [0, Order()) — continuing
//     would corrupt the caller's index-aligned distance state.
type Digraph interface {
	Order() int
	OutNeighbors(u int) []int
}

// Weighted is the weighted capability over an integer weight type W,
// consumed by the Dijkstra, Bellman-Ford-Moore and Floyd-Warshall engines.
//
// Contract:
//   - Arcs enumerates every arc of the digraph exactly once.
//   - OutArcs(u) enumerates every arc with Tail == u exactly once and
//     panics when u is outside [0, Order()).
//   - Iteration order is unspecified but stable within a single pass.
//
// The weight domain is part of the algorithm's contract, not this
// interface's: Dijkstra constrains W to unsigned types, the signed engines
// accept any sign and detect (or document) negative-cycle behavior.
type Weighted[W constraints.Integer] interface {
	Order() int
	Arcs() []Arc[W]
	OutArcs(u int) []Arc[W]
}
