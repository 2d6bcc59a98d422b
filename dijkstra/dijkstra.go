// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// weighted digraph capability with unsigned (hence non-negative) arc
// weights, from one or more source vertices simultaneously.
package dijkstra

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
)

// Step accumulates an arc weight onto a tentative distance, returning the
// candidate distance for the arc's head. The default is saturating
// addition; substituting another monotone function generalizes the engine
// (e.g. a max step yields minimax/bottleneck distances).
type Step[W constraints.Unsigned] func(acc, w W) W

// Distances returns the minimum accumulated weight from the nearest
// source to every vertex of d, index-aligned with vertex ids. Vertices
// unreachable from every source keep the sentinel core.Inf[W](); every
// source reports 0.
//
// Panics if any source lies outside [0, d.Order()).
//
// Complexity: O((V + E) log V) with the binary heap.
func Distances[W constraints.Unsigned](d core.Weighted[W], sources ...int) []W {
	return DistancesFunc(d, core.SaturatingAdd[W], sources...)
}

// DistancesFunc is Distances with a caller-supplied step function.
func DistancesFunc[W constraints.Unsigned](d core.Weighted[W], step Step[W], sources ...int) []W {
	n := d.Order()
	inf := core.Inf[W]()
	dist := make([]W, n)
	for i := range dist {
		dist[i] = inf
	}
	q := NewQueue[W]()
	for _, s := range sources {
		mustVertex("source", s, n)
		dist[s] = 0
		q.Push(0, s)
	}
	MinDistances(d, step, dist, q)

	return dist
}

// MinDistances is the low-level relaxation loop behind Distances. It
// operates on caller-owned state: dist is the distance vector (length
// d.Order(), core.Inf[W]() for unseeded vertices) and q the priority
// queue holding the vertices still to settle. The loop drains the queue;
// afterwards dist holds the final distances for everything reachable from
// the seeded entries.
//
// Owning the state enables incremental, multi-phase use: seed extra
// sources into dist and q between calls and resume relaxation without
// restarting.
//
// Loop invariant (lazy deletion): a popped entry (w, u) is stale and
// skipped when w exceeds dist[u] — a shorter path to u was already
// settled through a later push. No decrease-key is needed; under
// non-negative weights each vertex's final distance is written exactly
// once, though the vertex may sit in the heap several times before
// settling.
//
// Panics if len(dist) does not match d.Order().
func MinDistances[W constraints.Unsigned](d core.Weighted[W], step Step[W], dist []W, q *Queue[W]) {
	if len(dist) != d.Order() {
		panic(fmt.Sprintf("dijkstra: distance vector length %d does not match order %d", len(dist), d.Order()))
	}
	var cand W
	for {
		w, u, ok := q.Pop()
		if !ok {
			return
		}
		if w > dist[u] {
			continue // stale entry, superseded by an earlier relaxation
		}
		for _, arc := range d.OutArcs(u) {
			cand = step(w, arc.Weight)
			if cand < dist[arc.Head] {
				dist[arc.Head] = cand
				q.Push(cand, arc.Head)
			}
		}
	}
}

// Predecessors runs the same relaxation as Distances and additionally
// records, per vertex, the predecessor through which its final distance
// was found. Sources and unreached vertices carry no predecessor. The
// returned distance vector is identical to Distances(d, sources...).
//
// Panics if any source lies outside [0, d.Order()).
func Predecessors[W constraints.Unsigned](d core.Weighted[W], sources ...int) (*bfs.Tree, []W) {
	n := d.Order()
	inf := core.Inf[W]()
	dist := make([]W, n)
	for i := range dist {
		dist[i] = inf
	}
	tree := bfs.NewTree(n)
	q := NewQueue[W]()
	for _, s := range sources {
		mustVertex("source", s, n)
		dist[s] = 0
		q.Push(0, s)
	}
	var cand W
	for {
		w, u, ok := q.Pop()
		if !ok {
			break
		}
		if w > dist[u] {
			continue
		}
		for _, arc := range d.OutArcs(u) {
			cand = core.SaturatingAdd(w, arc.Weight)
			if cand < dist[arc.Head] {
				dist[arc.Head] = cand
				tree.Record(arc.Head, u)
				q.Push(cand, arc.Head)
			}
		}
	}

	return tree, dist
}

// mustVertex aborts on an out-of-range vertex id with package context.
func mustVertex(role string, v, n int) {
	if v < 0 || v >= n {
		panic(fmt.Sprintf("dijkstra: %s vertex %d out of range [0, %d)", role, v, n))
	}
}
