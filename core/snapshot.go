// SPDX-License-Identifier: MIT

//
// File: snapshot.go
// Role: Immutable read-only view of a Graph in compressed-sparse-row form.
// Determinism:
//   - Neighbor lists are sorted ascending, so traversals over a Snapshot visit
//     nodes in a reproducible order.
// Concurrency:
//   - Freeze takes a read lock on the source; the Snapshot itself is never
//     mutated and needs no locking.

package core

import "sort"

// Snapshot is a frozen copy of a Graph's topology.
//
// The neighbors of node i are targets[offsets[i]:offsets[i+1]].
type Snapshot struct {
	offsets []int
	targets []int
	edges   int
}

// Freeze returns a Snapshot of the current topology of g.
// Complexity: O(n + E·log d_max) for sorting each neighbor list.
func (g *Graph) Freeze() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency)
	s := &Snapshot{
		offsets: make([]int, n+1),
		targets: make([]int, 0, 2*g.edgeCount),
		edges:   g.edgeCount,
	}
	for i, nbrs := range g.adjacency {
		start := len(s.targets)
		for j := range nbrs {
			s.targets = append(s.targets, j)
		}
		sort.Ints(s.targets[start:])
		s.offsets[i+1] = len(s.targets)
	}

	return s
}

// NodeCount returns the number of nodes in the snapshot.
func (s *Snapshot) NodeCount() int { return len(s.offsets) - 1 }

// EdgeCount returns the number of unordered edges in the snapshot.
func (s *Snapshot) EdgeCount() int { return s.edges }

// HasNode reports whether id lies in [0, NodeCount()).
func (s *Snapshot) HasNode(id int) bool { return id >= 0 && id < s.NodeCount() }

// Neighbors returns the sorted neighbor list of i. The returned slice aliases
// the snapshot storage and must not be modified. Callers are expected to pass
// a valid id; out-of-range ids return nil.
func (s *Snapshot) Neighbors(i int) []int {
	if !s.HasNode(i) {
		return nil
	}
	return s.targets[s.offsets[i]:s.offsets[i+1]]
}

// Degree returns the number of neighbors of i, or 0 for an invalid id.
func (s *Snapshot) Degree(i int) int {
	if !s.HasNode(i) {
		return 0
	}
	return s.offsets[i+1] - s.offsets[i]
}

// HasEdge reports whether {i,j} is present using binary search over the
// sorted neighbor list of the lower-degree endpoint.
// Complexity: O(log min(d_i, d_j)).
func (s *Snapshot) HasEdge(i, j int) bool {
	if !s.HasNode(i) || !s.HasNode(j) {
		return false
	}
	if s.Degree(i) > s.Degree(j) {
		i, j = j, i
	}
	nbrs := s.Neighbors(i)
	k := sort.SearchInts(nbrs, j)

	return k < len(nbrs) && nbrs[k] == j
}
