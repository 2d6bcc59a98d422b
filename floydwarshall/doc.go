// Package floydwarshall computes all-pairs shortest-path distances over
// any core.Weighted digraph with signed arc weights, by dynamic
// programming over intermediate vertices.
//
// Overview:
//
//   - Distances owns a dense Order()×Order() matrix, initialized from
//     the arc set (sentinel for missing arcs, 0 on the diagonal) and
//     relaxed in place across Order() rounds: round k allows vertex k as
//     an intermediate, lowering m[i][j] to m[i][k] + m[k][j] where that
//     improves it.
//   - Candidates involving a sentinel operand are skipped, and finite
//     sums saturate, so no wraparound can occur.
//
// Guarantees and limitations:
//
//   - Correct shortest distances for every ordered pair, provided the
//     digraph contains no negative cycle. Behavior under a negative
//     cycle is explicitly undefined: unlike bellmanford, this engine
//     neither detects nor rejects that case.
//   - m[s][s] == 0 for every vertex; a matrix entry only ever decreases
//     during execution; running Distances twice yields identical output.
//
// Complexity: O(V³) time, O(V²) space — reach for bellmanford or
// dijkstra when only a few sources matter.
package floydwarshall
