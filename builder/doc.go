// Package builder constructs deterministic digraph fixtures for the
// pathfind engines: canonical topologies (Empty, Path, Cycle, Star,
// Complete), stochastic ones (RandomSparse, RandomTournament), and
// AssignWeights to lift any built topology into a weighted digraph.
//
// Design contract:
//
//   - Constructors validate parameters early and return sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ...); they never panic.
//   - Arcs are emitted in a stable, documented order.
//   - Stochastic constructors draw exclusively from a seeded math/rand
//     stream resolved via functional options (WithSeed, WithRand), so
//     the same inputs and seed reproduce the same digraph on every run.
//
// Typical use:
//
//	topo, err := builder.RandomSparse(100, 0.05, builder.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := builder.AssignWeights(topo, builder.UniformWeight[uint64](1, 100), builder.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dist := dijkstra.Distances(d, 0)
package builder
