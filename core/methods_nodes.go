// SPDX-License-Identifier: MIT

//
// File: methods_nodes.go
// Role: Node universe lifecycle and per-node queries.
// Determinism:
//   - Node ids are always contiguous; Degrees() is indexed by node id.

package core

import (
	"fmt"
	"sort"
)

// AddNode makes id part of the node universe. Adding an existing node is a
// no-op; adding an id past the current end extends the universe through id so
// that ids stay contiguous.
//
// Errors:
//   - ErrInvalidNode if id < 0.
//
// Complexity: O(1) amortized per node created.
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return fmt.Errorf("AddNode(%d): %w", id, ErrInvalidNode)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for len(g.adjacency) <= id {
		g.adjacency = append(g.adjacency, make(map[int]struct{}))
	}

	return nil
}

// AddNodes appends k fresh nodes and returns the id of the first one.
// Non-positive k adds nothing and returns NodeCount().
func (g *Graph) AddNodes(k int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.adjacency)
	for i := 0; i < k; i++ {
		g.adjacency = append(g.adjacency, make(map[int]struct{}))
	}

	return first
}

// HasNode reports whether id lies in [0, NodeCount()).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(id)
}

// NodeCount returns the size of the node universe.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Neighbors returns the neighbors of i sorted ascending. The slice is a copy
// and may be modified by the caller.
//
// Errors:
//   - ErrInvalidNode if i is outside the universe.
//
// Complexity: O(d·log d).
func (g *Graph) Neighbors(i int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(i) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrInvalidNode)
	}
	out := make([]int, 0, len(g.adjacency[i]))
	for j := range g.adjacency[i] {
		out = append(out, j)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbors of i.
// Complexity: O(1).
func (g *Graph) Degree(i int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(i) {
		return 0, fmt.Errorf("Degree(%d): %w", i, ErrInvalidNode)
	}

	return len(g.adjacency[i]), nil
}

// Degrees returns the degree of every node, indexed by node id.
// Complexity: O(n).
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adjacency))
	for i, nbrs := range g.adjacency {
		out[i] = len(nbrs)
	}

	return out
}

// TotalDegree returns Σ deg(v), which always equals 2·EdgeCount().
func (g *Graph) TotalDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return 2 * g.edgeCount
}

// valid assumes the caller holds mu.
func (g *Graph) valid(id int) bool {
	return id >= 0 && id < len(g.adjacency)
}
