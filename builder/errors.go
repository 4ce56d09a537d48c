// SPDX-License-Identifier: MIT

// Package: netsim/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors never panic; option constructors (WithX) panic on
//     meaningless input.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, t) is smaller than
// the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidAttachment indicates a preferential-attachment degree m < 1.
var ErrInvalidAttachment = errors.New("builder: attachment count must be positive")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownRegime indicates an unrecognized Erdős–Rényi regime.
var ErrUnknownRegime = errors.New("builder: unknown regime")

// ErrZeroTotalDegree indicates a roulette-wheel draw over candidates whose
// degrees sum to zero. It cannot happen after a complete seed and signals an
// invalid configuration.
var ErrZeroTotalDegree = errors.New("builder: total degree is zero")

// ErrConstructFailed indicates a constructor exhausted its redraw budget or
// received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
