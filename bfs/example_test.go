package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
)

// ExampleDistances demonstrates multi-source hop counts on a small
// network: two broadcast origins cover the ring from both sides.
func ExampleDistances() {
	// Ring 0→1→2→3→4→5→0.
	d := core.NewAdjacencyList(6)
	for i := 0; i < 6; i++ {
		d.AddArc(i, (i+1)%6)
	}

	fmt.Println(bfs.Distances(d, 0, 3))
	// Output:
	// [0 1 2 0 1 2]
}

// ExampleTree_Search reconstructs the fewest-hop route recorded by a
// traversal.
func ExampleTree_Search() {
	// Two competing routes from 0 to 4: 0→1→2→4 and 0→3→4.
	d := core.NewAdjacencyList(5)
	d.AddArc(0, 1)
	d.AddArc(1, 2)
	d.AddArc(2, 4)
	d.AddArc(0, 3)
	d.AddArc(3, 4)

	tree, dist := bfs.Predecessors(d, 0)
	fmt.Println("hops:", dist[4])

	// Walk from the destination back to the source, then print it
	// source-first by walking the tree from 4 until the root.
	path := tree.SearchBy(4, func(_, _ int, hasPred bool) bool { return !hasPred })
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	fmt.Println("route:", path)
	// Output:
	// hops: 2
	// route: [0 3 4]
}
