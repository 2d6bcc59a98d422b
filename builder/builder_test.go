package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/dijkstra"
)

func TestEmpty(t *testing.T) {
	d, err := builder.Empty(5)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Order())
	assert.Equal(t, 0, d.Size())

	_, err = builder.Empty(-1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPath(t *testing.T) {
	d, err := builder.Path(4)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Size())
	assert.Equal(t, []int{0, 1, 2, 3}, bfs.Distances(d, 0))

	_, err = builder.Path(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	d, err := builder.Cycle(5)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Size())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, bfs.Distances(d, 0))

	// C_1 is a single self-loop.
	loop, err := builder.Cycle(1)
	require.NoError(t, err)
	assert.True(t, loop.HasArc(0, 0))
}

func TestStar(t *testing.T) {
	d, err := builder.Star(6)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Size())
	// Every leaf is one hop from the center and two from any other leaf.
	assert.Equal(t, []int{0, 1, 1, 1, 1, 1}, bfs.Distances(d, 0))
	assert.Equal(t, []int{1, 2, 0, 2, 2, 2}, bfs.Distances(d, 2))
}

func TestComplete(t *testing.T) {
	d, err := builder.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, 12, d.Size())
	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			assert.Equal(t, u != v, d.HasArc(u, v))
		}
	}
}

func TestRandomSparse_Bounds(t *testing.T) {
	_, err := builder.RandomSparse(10, -0.1)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.RandomSparse(10, 1.1)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	full, err := builder.RandomSparse(5, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, full.Size(), "p=1 must build the complete digraph")

	none, err := builder.RandomSparse(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, none.Size())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.RandomSparse(20, 0.3, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.RandomSparse(20, 0.3, builder.WithSeed(7))
	require.NoError(t, err)

	require.Equal(t, a.Size(), b.Size())
	for u := 0; u < 20; u++ {
		assert.Equal(t, a.OutNeighbors(u), b.OutNeighbors(u))
	}
}

func TestRandomTournament(t *testing.T) {
	d, err := builder.RandomTournament(8, builder.WithSeed(3))
	require.NoError(t, err)
	// Exactly one arc per unordered pair.
	assert.Equal(t, 8*7/2, d.Size())
	for u := 0; u < 8; u++ {
		for v := u + 1; v < 8; v++ {
			assert.NotEqual(t, d.HasArc(u, v), d.HasArc(v, u), "pair (%d,%d)", u, v)
		}
	}
}

func TestAssignWeights(t *testing.T) {
	topo, err := builder.Path(4)
	require.NoError(t, err)

	d, err := builder.AssignWeights(topo, builder.ConstWeight[uint64](2))
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 2, 4, 6}, dijkstra.Distances(d, 0))

	_, err = builder.AssignWeights[uint64](nil, builder.ConstWeight[uint64](1))
	assert.ErrorIs(t, err, builder.ErrNilDigraph)
	_, err = builder.AssignWeights[uint64](topo, nil)
	assert.ErrorIs(t, err, builder.ErrNilWeightFunc)
}

func TestAssignWeights_Deterministic(t *testing.T) {
	topo, err := builder.RandomSparse(15, 0.4, builder.WithSeed(11))
	require.NoError(t, err)

	wf := builder.UniformWeight[int64](-5, 5)
	a, err := builder.AssignWeights(topo, wf, builder.WithSeed(13))
	require.NoError(t, err)
	b, err := builder.AssignWeights(topo, wf, builder.WithSeed(13))
	require.NoError(t, err)
	assert.Equal(t, a.Arcs(), b.Arcs())
}

func TestUniformWeight_RangeInclusive(t *testing.T) {
	wf := builder.UniformWeight[int64](3, 1) // swapped bounds
	topo, err := builder.Complete(10)
	require.NoError(t, err)
	d, err := builder.AssignWeights(topo, wf, builder.WithSeed(5))
	require.NoError(t, err)
	for _, arc := range d.Arcs() {
		assert.GreaterOrEqual(t, arc.Weight, int64(1))
		assert.LessOrEqual(t, arc.Weight, int64(3))
	}
}
