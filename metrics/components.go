// SPDX-License-Identifier: MIT

package metrics

import "github.com/katalvlaran/netsim/core"

// UnionFind is a disjoint-set forest with path halving and union by size.
type UnionFind struct {
	parent []int
	size   []int
	sets   int
}

// NewUnionFind returns n singleton sets.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{parent: make([]int, n), size: make([]int, n), sets: n}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// Find returns the representative of x.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets of a and b and reports whether they were distinct.
func (uf *UnionFind) Union(a, b int) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.sets--
	return true
}

// Sets returns the current number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// ConnectedComponents returns the number of connected components of s.
// Complexity: O((n + E)·α(n)).
func ConnectedComponents(s *core.Snapshot) int {
	uf := NewUnionFind(s.NodeCount())
	for v := 0; v < s.NodeCount(); v++ {
		for _, u := range s.Neighbors(v) {
			if u > v {
				uf.Union(u, v)
			}
		}
	}

	return uf.Sets()
}

// Components returns the node sets of every component, each sorted
// ascending, ordered by their smallest node.
func Components(s *core.Snapshot) [][]int {
	n := s.NodeCount()
	uf := NewUnionFind(n)
	for v := 0; v < n; v++ {
		for _, u := range s.Neighbors(v) {
			if u > v {
				uf.Union(u, v)
			}
		}
	}
	index := make(map[int]int, uf.Sets())
	out := make([][]int, 0, uf.Sets())
	for v := 0; v < n; v++ {
		r := uf.Find(v)
		k, ok := index[r]
		if !ok {
			k = len(out)
			index[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], v)
	}

	return out
}
