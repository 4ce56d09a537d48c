// SPDX-License-Identifier: MIT

// Package builder provides internal helper functions used by Constructor
// implementations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// addCompleteEdges connects every unordered pair among nodes base..base+n-1 in
// lexicographic order.
// Complexity: O(n²).
func addCompleteEdges(method string, g *core.Graph, base, n int) error {
	var i, j int
	for i = base; i < base+n; i++ {
		for j = i + 1; j < base+n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, i, j, err)
			}
		}
	}

	return nil
}

// validateMin returns ErrTooFewVertices wrapped with method context when got < min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]. NaN fails.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
