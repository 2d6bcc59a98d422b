// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); no string comparisons.
//   - Implementations attach context with %w wrapping.
//   - Constructors never panic at runtime; invalid parameters are
//     reported as errors.

package builder

import "errors"

// ErrTooFewVertices indicates that the requested order is smaller than
// the minimum the constructor can build (e.g. Cycle needs at least one
// vertex, Star at least the center).
var ErrTooFewVertices = errors.New("builder: order too small")

// ErrInvalidProbability indicates an arc probability outside the closed
// interval [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNilDigraph indicates that a nil digraph was passed where a built
// topology is required (AssignWeights).
var ErrNilDigraph = errors.New("builder: digraph is nil")

// ErrNilWeightFunc indicates that AssignWeights was called without a
// weight generator.
var ErrNilWeightFunc = errors.New("builder: weight function is nil")
