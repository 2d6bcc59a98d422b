package bellmanford_test

import (
	"testing"

	"github.com/katalvlaran/pathfind/bellmanford"
	"github.com/katalvlaran/pathfind/core"
)

// layeredDigraph builds layers×width vertices with full arcs between
// consecutive layers, weights alternating sign but no negative cycle.
func layeredDigraph(layers, width int) *core.WeightedAdjacencyList[int64] {
	d := core.NewWeightedAdjacencyList[int64](layers * width)
	for l := 0; l+1 < layers; l++ {
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				w := int64((i+j)%5) - 1 // -1..3, acyclic so safe
				d.AddArc(l*width+i, (l+1)*width+j, w)
			}
		}
	}

	return d
}

func BenchmarkDistances(b *testing.B) {
	d := layeredDigraph(32, 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bellmanford.Distances(d, 0); err != nil {
			b.Fatal(err)
		}
	}
}
