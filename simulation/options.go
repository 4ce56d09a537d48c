// SPDX-License-Identifier: MIT

package simulation

import (
	"fmt"

	"github.com/katalvlaran/netsim/metrics"
	"go.uber.org/zap"
)

// Observer receives the sample of iteration i (0-based), in index order.
// Calls never overlap. In a parallel run a sample is delivered once every
// lower index has completed, so a slow iteration holds back later ones.
type Observer func(i int, s metrics.Sample)

// Option customizes a Runner. Option constructors panic on meaningless
// input; Run never panics.
type Option func(*runnerConfig)

type runnerConfig struct {
	seed     int64
	logger   *zap.Logger
	workers  int
	policy   metrics.DistancePolicy
	observer Observer
}

func newRunnerConfig(opts ...Option) runnerConfig {
	cfg := runnerConfig{
		seed:    defaultSeed,
		logger:  zap.NewNop(),
		workers: 1,
		policy:  metrics.ReachablePairs,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed sets the run seed. Seed 0 selects the default seed, so
// WithSeed(0) and no WithSeed at all give the same streams.
func WithSeed(seed int64) Option {
	return func(c *runnerConfig) { c.seed = seed }
}

// WithLogger routes progress logs to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("simulation: WithLogger(nil)")
	}
	return func(c *runnerConfig) { c.logger = l }
}

// WithWorkers runs up to k iterations concurrently.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("simulation: WithWorkers(%d): need k >= 1", k))
	}
	return func(c *runnerConfig) { c.workers = k }
}

// WithDistancePolicy selects how disconnected graphs report mean distance.
func WithDistancePolicy(p metrics.DistancePolicy) Option {
	if p != metrics.ReachablePairs && p != metrics.ConnectedOnly {
		panic(fmt.Sprintf("simulation: WithDistancePolicy(%v): unknown policy", p))
	}
	return func(c *runnerConfig) { c.policy = p }
}

// WithObserver registers a per-iteration callback. It runs during the run,
// on the goroutine that completed the iteration, and must not block.
func WithObserver(fn Observer) Option {
	return func(c *runnerConfig) { c.observer = fn }
}
