package dijkstra

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// entry pairs a tentative weight with a vertex. Smaller weights have
// higher priority; ties break on the vertex id so pop order is
// deterministic for equal weights.
type entry[W constraints.Unsigned] struct {
	weight W
	vertex int
}

// Queue is a binary min-heap of (weight, vertex) entries built for the
// lazy-deletion strategy: when a shorter distance to a vertex is found,
// a fresh entry is pushed and the outdated one stays in the heap. The
// consuming loop discards an entry at pop time when its weight exceeds
// the vertex's currently recorded distance. An indexed decrease-key heap
// is a valid substitution with no observable behavioral difference.
type Queue[W constraints.Unsigned] struct {
	h entryHeap[W]
}

// NewQueue returns an empty queue.
func NewQueue[W constraints.Unsigned]() *Queue[W] { return &Queue[W]{} }

// Len reports the number of entries, stale ones included.
func (q *Queue[W]) Len() int { return len(q.h) }

// Push inserts an entry for vertex v with tentative weight w.
func (q *Queue[W]) Push(w W, v int) {
	heap.Push(&q.h, entry[W]{weight: w, vertex: v})
}

// Pop removes and returns the minimum-weight entry; ok is false when the
// queue is empty.
func (q *Queue[W]) Pop() (w W, v int, ok bool) {
	if len(q.h) == 0 {
		return 0, 0, false
	}
	e := heap.Pop(&q.h).(entry[W])

	return e.weight, e.vertex, true
}

// entryHeap implements heap.Interface; Queue wraps it so callers cannot
// bypass the heap invariants.
type entryHeap[W constraints.Unsigned] []entry[W]

func (h entryHeap[W]) Len() int { return len(h) }

func (h entryHeap[W]) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}

	return h[i].vertex < h[j].vertex
}

func (h entryHeap[W]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[W]) Push(x any) { *h = append(*h, x.(entry[W])) }

func (h *entryHeap[W]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
