// Package bellmanford computes single-source shortest-path distances
// over any core.Weighted digraph with signed arc weights, detecting
// negative-weight cycles reachable from the source.
//
// Overview:
//
//   - Distances initializes dist[source] = 0 and every other vertex to
//     the sentinel, then runs up to Order()-1 relaxation rounds over a
//     single snapshot of the arc set: an arc (u, v, w) with finite
//     dist[u] and dist[u]+w < dist[v] lowers dist[v]. A round with no
//     update is a fixpoint and terminates the loop early.
//   - After relaxation, one extra pass over all arcs checks whether any
//     arc can still be relaxed; if so, a negative-weight cycle is
//     reachable from the source and Distances reports ErrNegativeCycle.
//     This is the suite's single "error as data" case: a recoverable,
//     data-dependent outcome, never a panic.
//   - All accumulation goes through core.SaturatingAdd, so sentinel +
//     finite weight stays at the sentinel instead of wrapping.
//
// Guarantees:
//
//   - Without a reachable negative cycle, dist[v] is the true minimum
//     accumulated weight from the source, or the sentinel if v is
//     unreachable; dist[source] == 0; a recorded distance only ever
//     decreases during execution.
//   - ErrNegativeCycle is returned if and only if a negative-weight
//     cycle is reachable from the source. Negative cycles in parts of
//     the digraph the source cannot reach do not trigger it.
//
// Edge cases:
//
//   - A source outside [0, Order()) is a caller contract violation and
//     panics (an empty digraph therefore admits no valid source).
//
// Complexity: O(V·E) worst case, O(rounds-to-fixpoint · E) with early
// termination; O(V) extra space.
package bellmanford
