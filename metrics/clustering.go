// SPDX-License-Identifier: MIT

package metrics

import "github.com/katalvlaran/netsim/core"

// triangleCounter counts edges among a node's neighbors. mark[u] == stamp
// flags u as a neighbor of the node currently being examined; bumping stamp
// clears all marks in O(1).
type triangleCounter struct {
	s     *core.Snapshot
	mark  []int
	stamp int
}

func newTriangleCounter(s *core.Snapshot) *triangleCounter {
	return &triangleCounter{s: s, mark: make([]int, s.NodeCount())}
}

// links returns the number of edges with both endpoints in N(v).
// Complexity: O(Σ_{u∈N(v)} deg(u)).
func (tc *triangleCounter) links(v int) int {
	tc.stamp++
	nbrs := tc.s.Neighbors(v)
	for _, u := range nbrs {
		tc.mark[u] = tc.stamp
	}
	count := 0
	for _, u := range nbrs {
		for _, w := range tc.s.Neighbors(u) {
			if w > u && tc.mark[w] == tc.stamp {
				count++
			}
		}
	}

	return count
}

// local returns links(v) / C(deg v, 2), or 0 when deg v < 2.
func (tc *triangleCounter) local(v int) float64 {
	k := tc.s.Degree(v)
	if k < 2 {
		return 0
	}
	return 2 * float64(tc.links(v)) / (float64(k) * float64(k-1))
}

// LocalClustering returns the fraction of v's neighbor pairs that are
// themselves adjacent; nodes with degree < 2 and invalid ids give 0.
func LocalClustering(s *core.Snapshot, v int) float64 {
	if !s.HasNode(v) {
		return 0
	}
	return newTriangleCounter(s).local(v)
}

// AverageClustering returns the mean local clustering coefficient over all
// nodes, or 0 for an empty snapshot.
// Complexity: O(Σ_v Σ_{u∈N(v)} deg(u)).
func AverageClustering(s *core.Snapshot) float64 {
	n := s.NodeCount()
	if n == 0 {
		return 0
	}
	tc := newTriangleCounter(s)
	sum := 0.0
	for v := 0; v < n; v++ {
		sum += tc.local(v)
	}

	return sum / float64(n)
}
