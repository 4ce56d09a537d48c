// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodErdosRenyi is the canonical name for the ErdosRenyi constructor.
	MethodErdosRenyi = "ErdosRenyi"
	// MethodBarabasiAlbert is the canonical name for the BarabasiAlbert constructor.
	MethodBarabasiAlbert = "BarabasiAlbert"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

const (
	// MinErdosRenyiNodes is the smallest node count for G(n,p).
	MinErdosRenyiNodes = 1
	// MinAttachment is the smallest preferential-attachment degree m.
	MinAttachment = 1
	// MinGrowthSteps is the smallest number of growth steps t.
	MinGrowthSteps = 0
	// MinCompleteNodes is the smallest meaningful K_n.
	MinCompleteNodes = 1
	// MinPathNodes is the smallest path with at least one edge.
	MinPathNodes = 2
	// MinCycleNodes is the smallest simple ring.
	MinCycleNodes = 3
	// MinStarNodes is one hub plus one leaf.
	MinStarNodes = 2
)

//-----------------------------------------------------------------------------
// Probability domain and draw resolution
//-----------------------------------------------------------------------------

const (
	// MinProbability is the lower bound of an edge probability.
	MinProbability = 0.0
	// MaxProbability is the upper bound of an edge probability.
	MaxProbability = 1.0
	// DefaultResolution quantizes uniform draws to k/1e6, k ∈ [0,1e6].
	DefaultResolution = 1_000_000
	// DefaultMaxRedraws bounds duplicate-neighbor redraws for one new node.
	DefaultMaxRedraws = 1 << 20
)
