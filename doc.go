// Package pathfind is an in-memory toolkit for shortest-path computation
// over directed graphs — from compact digraph representations to the
// classic distance engines.
//
// 🚀 What is pathfind?
//
//	A small, generic library that brings together:
//		• Core primitives: adjacency list / matrix digraphs, weighted arcs,
//		  a saturating weight arithmetic shared by every engine
//		• BFS: multi-source hop counts + predecessor trees
//		• Dijkstra: non-negative weights, pluggable accumulation step
//		• Bellman–Ford–Moore: negative arcs, negative-cycle detection
//		• Floyd–Warshall: all-pairs distance matrix
//		• Builder: deterministic topology generators for tests & benchmarks
//
// ✨ Why choose pathfind?
//
//   - Generic over the weight type – pick uint8 or int64, the sentinel
//     and overflow handling follow the type
//   - Predictable – deterministic iteration orders, seeded randomness,
//     sentinel errors, fail-fast panics on out-of-range vertices
//   - Re-entrant – low-level entry points run over caller-owned state for
//     incremental and allocation-free use
//   - Pure algorithms – no goroutines, no locks, no hidden I/O
//
// Under the hood, everything is organized under six subpackages:
//
//	core/          — Digraph/Weighted interfaces, concrete representations, weight arithmetic
//	bfs/           — hop-count distances and predecessor trees
//	dijkstra/      — binary-heap single-source shortest paths
//	bellmanford/   — arc relaxation with negative-cycle detection
//	floydwarshall/ — all-pairs distance matrix
//	builder/       — deterministic digraph generators
//
// Quick ASCII example:
//
//	    0──▶1
//	    │   │
//	    ▼   ▼
//	    2──▶3
//
//	dijkstra.Distances over this digraph yields one weight per vertex,
//	with core.Inf marking the unreachable ones.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
