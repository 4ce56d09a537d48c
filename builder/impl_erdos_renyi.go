// SPDX-License-Identifier: MIT

// Package: netsim/builder
//
// impl_erdos_renyi.go - implementation of the ErdosRenyi(n, p) constructor.
//
// Model:
//   - Binomial random graph G(n,p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - p = 0 adds no edge and p = 1 adds all n(n-1)/2 edges, without drawing.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials; every pair is examined exactly once.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j>i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// ErdosRenyi returns a Constructor that samples G(n,p) over n fresh nodes.
func ErdosRenyi(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if err := validateMin(MethodErdosRenyi, "n", n, MinErdosRenyiNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodErdosRenyi, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodErdosRenyi, ErrNeedRandSource)
		}

		// 2) Append the node block.
		base := g.AddNodes(n)

		// 3) Exact endpoints of the probability domain.
		switch p {
		case MinProbability:
			return nil
		case MaxProbability:
			return addCompleteEdges(MethodErdosRenyi, g, base, n)
		}

		// 4) One Bernoulli trial per unordered pair, in stable order.
		var i, j int
		for i = base; i < base+n; i++ {
			for j = i + 1; j < base+n; j++ {
				if cfg.uniform() > p {
					continue
				}
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodErdosRenyi, i, j, err)
				}
			}
		}

		return nil
	}
}

// ErdosRenyiRegime returns a Constructor for G(n,p) with p derived from a
// named regime via RegimeToProbability.
func ErdosRenyiRegime(n int, regime Regime) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		p, err := RegimeToProbability(regime, n)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodErdosRenyi, err)
		}
		return ErdosRenyi(n, p)(g, cfg)
	}
}
