// SPDX-License-Identifier: MIT

// Package: netsim/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil               (stochastic constructors require a seed)
//   • resolution  = DefaultResolution (k/1e6 draws)
//   • wheel       = WheelLinear
//   • maxRedraws  = DefaultMaxRedraws

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// resolution > 0 quantizes draws to k/resolution; 0 uses rng.Float64().
	resolution int
	// wheel selects the roulette-wheel implementation for BarabasiAlbert.
	wheel WheelKind
	// maxRedraws bounds duplicate-neighbor rejections per new node.
	maxRedraws int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		resolution: DefaultResolution,
		wheel:      WheelLinear,
		maxRedraws: DefaultMaxRedraws,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// uniform draws r ∈ [0,1] from cfg.rng. With a positive resolution the draw is
// k/resolution for k uniform in [0, resolution], so both 0 and 1 are reachable.
// Callers must have checked cfg.rng != nil.
func (cfg builderConfig) uniform() float64 {
	if cfg.resolution <= 0 {
		return cfg.rng.Float64()
	}
	return float64(cfg.rng.Intn(cfg.resolution+1)) / float64(cfg.resolution)
}

// newWheel builds the configured roulette wheel over the given weights.
func (cfg builderConfig) newWheel(weights []int) Wheel {
	if cfg.wheel == WheelCumulative {
		return NewCumulativeWheel(weights)
	}
	return NewLinearWheel(weights)
}
