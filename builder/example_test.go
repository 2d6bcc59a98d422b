package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// Build a directed cycle and read hop counts from vertex 0.
func ExampleCycle() {
	d, err := builder.Cycle(5)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	fmt.Println(bfs.Distances(d, 0))
	// Output:
	// [0 1 2 3 4]
}

// Lift a path topology into a unit-cost weighted digraph and run
// Dijkstra from vertex 0.
func ExampleAssignWeights() {
	topo, err := builder.Path(4)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	d, err := builder.AssignWeights(topo, builder.ConstWeight[uint64](3))
	if err != nil {
		fmt.Println("weights:", err)
		return
	}
	fmt.Println(dijkstra.Distances(d, 0))
	// Output:
	// [0 3 6 9]
}
