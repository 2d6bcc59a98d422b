package bfs

import "fmt"

// noPredecessor marks a vertex with no recorded parent: a source of the
// traversal, or a vertex the traversal never reached.
const noPredecessor = -1

// Tree is a predecessor tree: per vertex, the parent on a discovered
// shortest-path tree from one or more sources. It is produced as a
// by-product of Predecessors (here and in the dijkstra package) and
// queried via Search / SearchBy for path reconstruction.
//
// A tree built by a single traversal is acyclic by construction; the
// reconstruction walk nevertheless guards against a hand-constructed or
// corrupted tree containing a cycle, terminating instead of looping.
type Tree struct {
	pred []int // pred[v] is the parent of v, or noPredecessor
}

// NewTree returns a tree of the given order with no predecessors
// recorded. Panics if order is negative.
func NewTree(order int) *Tree {
	if order < 0 {
		panic(fmt.Sprintf("bfs: negative order %d", order))
	}
	pred := make([]int, order)
	for i := range pred {
		pred[i] = noPredecessor
	}

	return &Tree{pred: pred}
}

// Order reports the number of vertices the tree spans.
func (t *Tree) Order() int { return len(t.pred) }

// Record sets pred as the parent of v, replacing any earlier parent.
// Panics if either vertex is out of range.
func (t *Tree) Record(v, pred int) {
	t.mustVertex(v)
	t.mustVertex(pred)
	t.pred[v] = pred
}

// Predecessor returns the recorded parent of v and whether one exists.
// Panics if v is out of range.
func (t *Tree) Predecessor(v int) (int, bool) {
	t.mustVertex(v)
	if t.pred[v] == noPredecessor {
		return 0, false
	}

	return t.pred[v], true
}

// Search walks the predecessor chain starting at s until it reaches
// target, returning the visited vertices in walk order (s first, target
// last). It returns nil when the chain ends before reaching target or
// when the walk revisits a vertex.
//
// Panics if s is out of range.
func (t *Tree) Search(s, target int) []int {
	return t.SearchBy(s, func(v, _ int, _ bool) bool { return v == target })
}

// SearchBy generalizes Search to an arbitrary stop condition: the walk
// starts at s and follows predecessor links, appending each vertex to the
// path; it stops successfully at the first vertex for which
// isEnd(vertex, pred, hasPred) reports true. A walk that runs out of
// predecessors before isEnd matches returns nil.
//
// A visited guard terminates the walk (returning nil) if the predecessor
// structure contains a cycle.
//
// Panics if s is out of range.
func (t *Tree) SearchBy(s int, isEnd func(v, pred int, hasPred bool) bool) []int {
	t.mustVertex(s)
	visited := make([]bool, len(t.pred))
	path := make([]int, 0)
	for v := s; ; {
		if visited[v] {
			return nil // corrupted tree: cycle in predecessor links
		}
		visited[v] = true
		path = append(path, v)
		pred, ok := t.Predecessor(v)
		if isEnd(v, pred, ok) {
			return path
		}
		if !ok {
			return nil
		}
		v = pred
	}
}

func (t *Tree) mustVertex(v int) {
	if v < 0 || v >= len(t.pred) {
		panic(fmt.Sprintf("bfs: vertex %d out of range [0, %d)", v, len(t.pred)))
	}
}
