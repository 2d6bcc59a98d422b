package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/bellmanford"
	"github.com/katalvlaran/pathfind/core"
)

// ExampleDistances shows negative arcs without a negative cycle: a rebate
// on the leg 2→1 makes the indirect route cheaper than the direct arc.
func ExampleDistances() {
	d := core.NewWeightedAdjacencyList[int64](3)
	d.AddArc(0, 1, 4)
	d.AddArc(0, 2, 3)
	d.AddArc(2, 1, -5)

	dist, err := bellmanford.Distances(d, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output:
	// [0 -2 3]
}

// ExampleDistances_negativeCycle demonstrates the recoverable outcome: a
// cycle whose weights sum below zero yields no answer.
func ExampleDistances_negativeCycle() {
	d := core.NewWeightedAdjacencyList[int64](2)
	d.AddArc(0, 1, 1)
	d.AddArc(1, 0, -3)

	_, err := bellmanford.Distances(d, 0)
	fmt.Println(errors.Is(err, bellmanford.ErrNegativeCycle))
	// Output:
	// true
}
