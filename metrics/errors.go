// SPDX-License-Identifier: MIT

package metrics

import "errors"

var (
	// ErrGraphNil is returned when a nil graph or snapshot is measured.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrAlreadyFinalized is returned by Add or Finalize after Finalize.
	ErrAlreadyFinalized = errors.New("metrics: statistics already finalized")

	// ErrNoSamples is returned by Finalize when nothing was added.
	ErrNoSamples = errors.New("metrics: no samples")

	// ErrNodeCount is returned by Finalize for a non-positive node count.
	ErrNodeCount = errors.New("metrics: node count must be positive")

	// ErrUnknownPolicy is returned for an undefined DistancePolicy.
	ErrUnknownPolicy = errors.New("metrics: unknown distance policy")
)
