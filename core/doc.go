// Package core defines pathfind's capability boundary: the Digraph and
// Weighted interfaces every shortest-path engine consumes, the Arc value
// they exchange, and concrete in-memory representations that implement
// them.
//
// Capability contracts:
//
//   - Digraph:      Order() plus OutNeighbors(u) — the unweighted view
//     consumed by the BFS engine.
//   - Weighted[W]:  Order() plus Arcs()/OutArcs(u) — the weighted view
//     consumed by Dijkstra, Bellman-Ford-Moore and Floyd-Warshall.
//
// Vertices are contiguous int indices 0..Order(); no separate vertex
// identity exists beyond the index. Engines depend only on the
// interfaces, never on a concrete backing container, so list-, matrix-
// or map-backed representations are interchangeable.
//
// Representations:
//
//   - AdjacencyList:            unweighted, slice-of-slices, O(1) AddArc.
//   - AdjacencyMatrix:          unweighted, flat row-major bit table,
//     O(1) arc lookup, parallel arcs collapse.
//   - WeightedAdjacencyList[W]: weighted, generic over the integer
//     weight type W.
//
// Sentinel arithmetic:
//
//   - Inf[W]() is the type-maximum "unreachable" sentinel.
//   - SaturatingAdd(a, b) clamps instead of wrapping, so combining a
//     finite weight with the sentinel can never produce a small or
//     negative value.
//
// Error handling:
//
//   - Indexed access with a vertex outside [0, Order()) is a caller
//     contract violation and panics; continuing would corrupt every
//     index-aligned distance vector derived from the digraph.
//   - No other operation in this package fails.
package core
