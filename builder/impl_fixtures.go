// SPDX-License-Identifier: MIT

// Package: netsim/builder
//
// impl_fixtures.go - deterministic topologies: Complete, Path, Cycle, Star.
//
// Contract (all four):
//   • Nodes are appended after g.NodeCount(); local index k maps to base+k.
//   • Edges are emitted in increasing local index order.
//   • No randomness; cfg is ignored.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// Complete returns a Constructor for K_n (n ≥ 1): n(n-1)/2 edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		base := g.AddNodes(n)
		return addCompleteEdges(MethodComplete, g, base, n)
	}
}

// Path returns a Constructor for P_n (n ≥ 2): edges {k,k+1}.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		base := g.AddNodes(n)
		for k := 0; k+1 < n; k++ {
			if err := g.AddEdge(base+k, base+k+1); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodPath, base+k, base+k+1, err)
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for C_n (n ≥ 3): a path closed by {n-1,0}.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		base := g.NodeCount()
		if err := Path(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodCycle, err)
		}
		if err := g.AddEdge(base+n-1, base); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodCycle, base+n-1, base, err)
		}
		return nil
	}
}

// Star returns a Constructor for a star on n nodes (n ≥ 2): local node 0 is
// the hub, nodes 1..n-1 are leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		base := g.AddNodes(n)
		for k := 1; k < n; k++ {
			if err := g.AddEdge(base, base+k); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodStar, base, base+k, err)
			}
		}
		return nil
	}
}
