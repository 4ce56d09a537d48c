// SPDX-License-Identifier: MIT

// Package: netsim/builder
//
// impl_barabasi_albert.go - implementation of the BarabasiAlbert(m, t) constructor.
//
// Model:
//   1. Seed: m₀ = m+1 fresh nodes forming K_{m₀}; every seed node starts with
//      degree m ≥ 1, so the first roulette draw has a positive total.
//   2. Growth: for each of t new nodes i, attach i to exactly m distinct
//      existing nodes, one at a time. Each target is drawn by roulette wheel
//      over the degrees of nodes 0..i-1; a draw that hits an already chosen
//      target is rejected and redrawn. The wheel is updated after every
//      accepted edge, and node i joins the wheel once its m edges are placed.
//
// Contract:
//   - m ≥ 1 (else ErrInvalidAttachment); t ≥ 0 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil when t > 0 (else ErrNeedRandSource).
//   - Final node count grows by m+1+t and edge count by m(m+1)/2 + m·t.
//   - More than cfg.maxRedraws rejections for one node → ErrConstructFailed.
//
// Complexity:
//   - WheelLinear:     O(t·m·n) draws dominate.
//   - WheelCumulative: O(t·m·log n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// BarabasiAlbert returns a Constructor that grows a preferential-attachment
// graph with attachment degree m over t growth steps.
func BarabasiAlbert(m, t int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if m < MinAttachment {
			return fmt.Errorf("%s: m=%d < min=%d: %w", MethodBarabasiAlbert, m, MinAttachment, ErrInvalidAttachment)
		}
		if err := validateMin(MethodBarabasiAlbert, "t", t, MinGrowthSteps); err != nil {
			return err
		}
		if cfg.rng == nil && t > 0 {
			return fmt.Errorf("%s: %w", MethodBarabasiAlbert, ErrNeedRandSource)
		}

		// 2) Seed clique.
		m0 := m + 1
		base := g.AddNodes(m0)
		if err := addCompleteEdges(MethodBarabasiAlbert, g, base, m0); err != nil {
			return err
		}
		if t == 0 {
			return nil
		}

		// 3) Growth with roulette-wheel attachment.
		wheel := cfg.newWheel(g.Degrees())
		chosen := make(map[int]struct{}, m)
		for step := 0; step < t; step++ {
			i := g.AddNodes(1)
			if err := attach(g, cfg, wheel, i, m, chosen); err != nil {
				return err
			}
			wheel.Push(m)
		}

		return nil
	}
}

// attach connects new node i to m distinct wheel candidates. chosen is reused
// across calls and cleared on entry.
func attach(g *core.Graph, cfg builderConfig, wheel Wheel, i, m int, chosen map[int]struct{}) error {
	for k := range chosen {
		delete(chosen, k)
	}

	rejected := 0
	for len(chosen) < m {
		v, err := wheel.Select(cfg.uniform())
		if err != nil {
			return fmt.Errorf("%s: node %d: %w", MethodBarabasiAlbert, i, err)
		}
		if _, dup := chosen[v]; dup {
			rejected++
			if rejected > cfg.maxRedraws {
				return fmt.Errorf("%s: node %d: %d duplicate draws: %w",
					MethodBarabasiAlbert, i, rejected, ErrConstructFailed)
			}
			continue
		}
		if err := g.AddEdge(i, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodBarabasiAlbert, i, v, err)
		}
		chosen[v] = struct{}{}
		wheel.Add(v, 1)
	}

	return nil
}
