// Package bfs computes unweighted shortest-path distances (hop counts)
// over any core.Digraph, from one or more source vertices simultaneously.
//
// Overview:
//
//   - Distances runs a classic breadth-first relaxation: a FIFO frontier
//     seeded with every source at distance 0, a fixed unit step per arc,
//     and a relaxation of every out-neighbor whose recorded distance
//     exceeds the candidate. Because all arc costs are equal, first-visit
//     order coincides with priority order, giving standard BFS layering.
//   - Multi-source semantics: dist[v] is the minimum over all sources,
//     not a per-source family of distances.
//   - Predecessors additionally builds a Tree recording, per vertex, the
//     parent through which it was first relaxed, for path reconstruction
//     via Tree.Search / Tree.SearchBy.
//   - DistancesInto exposes the relaxation loop over caller-owned state
//     (distance vector + frontier), enabling incremental or multi-phase
//     use such as re-entrant relaxation after seeding extra sources.
//
// Guarantees:
//
//   - On termination dist[v] is the minimum number of arcs from the
//     nearest source to v, or Unreachable if no source reaches v.
//   - dist[s] == 0 for every source s.
//   - A recorded distance only ever decreases during execution.
//
// Edge cases:
//
//   - An empty digraph (Order() == 0) yields an empty distance vector.
//   - Zero sources yield an all-Unreachable vector.
//   - A source outside [0, Order()) is a caller contract violation and
//     panics rather than silently producing wrong results.
//
// Complexity: O(V + E) time, O(V) extra space.
package bfs
