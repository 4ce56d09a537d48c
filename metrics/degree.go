// SPDX-License-Identifier: MIT

package metrics

import "github.com/katalvlaran/netsim/core"

// DegreeHistogram returns h where h[k] is the number of nodes of degree k.
// len(h) is max degree + 1; an empty snapshot yields an empty histogram.
// Complexity: O(n).
func DegreeHistogram(s *core.Snapshot) []int {
	maxDeg := -1
	for v := 0; v < s.NodeCount(); v++ {
		if d := s.Degree(v); d > maxDeg {
			maxDeg = d
		}
	}
	h := make([]int, maxDeg+1)
	for v := 0; v < s.NodeCount(); v++ {
		h[s.Degree(v)]++
	}

	return h
}

// HubDegree returns the maximum observed degree, read off the histogram span.
// An empty snapshot has hub degree 0.
func HubDegree(s *core.Snapshot) int {
	if h := DegreeHistogram(s); len(h) > 0 {
		return len(h) - 1
	}
	return 0
}

// Density returns 2e / (n(n-1)), or 0 when n < 2.
func Density(n, e int) float64 {
	if n < 2 {
		return 0
	}
	return 2 * float64(e) / (float64(n) * float64(n-1))
}
