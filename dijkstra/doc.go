// Package dijkstra provides Dijkstra's shortest-path algorithm over any
// core.Weighted digraph with unsigned arc weights, from one or more
// source vertices simultaneously.
//
// Overview:
//
//   - Distances maintains a distance vector (sentinel-initialized, 0 at
//     the sources) and a binary min-heap seeded with (0, s) per source.
//     The loop pops the minimum entry (w, u), skips it when stale
//     (w > dist[u], lazy deletion), and otherwise relaxes every out-arc:
//     a candidate step(w, weight) strictly below dist[v] updates dist[v]
//     and pushes a fresh entry. Termination: queue empty.
//   - Multi-source semantics: dist[v] is the minimum over all sources
//     simultaneously, not a per-source family of distances.
//   - DistancesFunc generalizes the accumulation step; the default is
//     saturating addition, which never wraps past the sentinel.
//   - MinDistances exposes the loop over caller-owned state (distance
//     vector + queue), enabling incremental re-entrant relaxation after
//     seeding extra sources.
//   - Predecessors additionally builds a bfs.Tree for path
//     reconstruction.
//
// Lazy deletion:
//
//   - No decrease-key: improving a vertex pushes a duplicate entry and
//     leaves the outdated one in the heap. A popped entry whose weight
//     exceeds the vertex's recorded distance is discarded. Under
//     non-negative weights this preserves standard Dijkstra correctness:
//     each vertex's final distance is set exactly once. An indexed
//     decrease-key heap is a valid performance substitution with no
//     observable behavioral difference.
//
// Preconditions:
//
//   - Non-negative weights are enforced structurally: the weight type
//     parameter is constrained to unsigned integers, so the classic
//     "silently wrong under negative weights" failure mode cannot be
//     expressed. For signed weights use the bellmanford package.
//
// Edge cases:
//
//   - An empty digraph yields an empty distance vector; zero sources
//     yield an all-sentinel vector; a source outside [0, Order()) panics.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the binary heap.
//   - Space: O(V) for distances, O(E) worst case in the heap under lazy
//     deletion.
package dijkstra
