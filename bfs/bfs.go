// Package bfs provides breadth-first shortest-path distances over a
// core.Digraph: multi-source hop counts plus a predecessor tree for path
// reconstruction.
package bfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// Unreachable is the sentinel distance reported for vertices no source
// can reach. It is the maximum of the accumulation type, so relaxation
// can only ever move a distance below it, never wrap past it.
const Unreachable = math.MaxInt

// Distances returns the minimum number of arcs from the nearest source to
// every vertex of d, index-aligned with vertex ids. Vertices unreachable
// from every source keep Unreachable; every source reports 0. An empty
// digraph yields an empty vector.
//
// Distances panics if any source lies outside [0, d.Order()); continuing
// would corrupt the distance vector's indexing invariant.
//
// Complexity: O(V + E) time, O(V) extra space.
func Distances(d core.Digraph, sources ...int) []int {
	n := d.Order()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	frontier := make([]int, 0, len(sources))
	for _, s := range sources {
		mustVertex("source", s, n)
		dist[s] = 0
		frontier = append(frontier, s)
	}
	DistancesInto(d, dist, frontier)

	return dist
}

// DistancesInto is the low-level relaxation loop behind Distances. It
// operates on caller-owned state: dist is the distance vector (length
// d.Order(), Unreachable for unseeded vertices, 0 for sources) and
// frontier holds the vertices still to expand. The loop drains the
// frontier, relaxing every out-neighbor whose recorded distance exceeds
// the candidate dist[u]+1.
//
// Owning the state enables incremental, multi-phase use: seed extra
// sources into dist and frontier between calls and resume relaxation
// without restarting.
//
// Panics if len(dist) does not match d.Order().
func DistancesInto(d core.Digraph, dist []int, frontier []int) {
	if len(dist) != d.Order() {
		panic(fmt.Sprintf("bfs: distance vector length %d does not match order %d", len(dist), d.Order()))
	}
	var u, next int
	for len(frontier) > 0 {
		u = frontier[0]
		frontier = frontier[1:]
		// Unit step; saturates so a mis-seeded Unreachable entry cannot wrap.
		next = core.SaturatingAdd(dist[u], 1)
		for _, v := range d.OutNeighbors(u) {
			if next < dist[v] {
				dist[v] = next
				frontier = append(frontier, v)
			}
		}
	}
}

// Predecessors runs the same traversal as Distances and additionally
// records, per vertex, the predecessor through which it was first
// relaxed. Sources and unreached vertices carry no predecessor. The
// returned distance vector is identical to Distances(d, sources...).
//
// Panics if any source lies outside [0, d.Order()).
func Predecessors(d core.Digraph, sources ...int) (*Tree, []int) {
	n := d.Order()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	tree := NewTree(n)
	frontier := make([]int, 0, len(sources))
	for _, s := range sources {
		mustVertex("source", s, n)
		dist[s] = 0
		frontier = append(frontier, s)
	}
	var u, next int
	for len(frontier) > 0 {
		u = frontier[0]
		frontier = frontier[1:]
		next = core.SaturatingAdd(dist[u], 1)
		for _, v := range d.OutNeighbors(u) {
			if next < dist[v] {
				dist[v] = next
				tree.Record(v, u)
				frontier = append(frontier, v)
			}
		}
	}

	return tree, dist
}

// mustVertex aborts on an out-of-range vertex id with package context.
func mustVertex(role string, v, n int) {
	if v < 0 || v >= n {
		panic(fmt.Sprintf("bfs: %s vertex %d out of range [0, %d)", role, v, n))
	}
}
