package floydwarshall_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/floydwarshall"
)

// BenchmarkDistances_Random measures the O(V³) closure on a random
// digraph of fixed order and density.
func BenchmarkDistances_Random(b *testing.B) {
	const (
		n = 128
		p = 0.25
	)
	rng := rand.New(rand.NewSource(1))
	d := core.NewWeightedAdjacencyList[int64](n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < p {
				d.AddArc(u, v, int64(rng.Intn(1000)))
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = floydwarshall.Distances(d)
	}
}
