// SPDX-License-Identifier: MIT

//
// File: methods_clone.go
// Role: Deep copy of a Graph.

package core

// Clone returns an independent deep copy of g. Later mutations on either
// graph are not visible in the other.
// Complexity: O(n + E). Concurrency: read lock on g only.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		adjacency: make([]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for i, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for j := range nbrs {
			cp[j] = struct{}{}
		}
		out.adjacency[i] = cp
	}

	return out
}
