// SPDX-License-Identifier: MIT

// Package: netsim/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithResolution sets the number of steps of the uniform draw. Zero selects
// the full float64 resolution. Panics on negative values.
func WithResolution(steps int) BuilderOption {
	if steps < 0 {
		panic(fmt.Sprintf("builder: WithResolution(%d)", steps))
	}
	return func(c *builderConfig) {
		c.resolution = steps
	}
}

// WithWheel selects the roulette-wheel implementation used by BarabasiAlbert.
// Panics on an unknown kind.
func WithWheel(kind WheelKind) BuilderOption {
	if kind != WheelLinear && kind != WheelCumulative {
		panic(fmt.Sprintf("builder: WithWheel(%d)", kind))
	}
	return func(c *builderConfig) {
		c.wheel = kind
	}
}

// WithMaxRedraws bounds the duplicate-neighbor redraws for a single new node.
// Panics on n < 1.
func WithMaxRedraws(n int) BuilderOption {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithMaxRedraws(%d)", n))
	}
	return func(c *builderConfig) {
		c.maxRedraws = n
	}
}
