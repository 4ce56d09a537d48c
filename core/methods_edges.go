// SPDX-License-Identifier: MIT

//
// File: methods_edges.go
// Role: Edge insertion and queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) with From < To.
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the unordered edge {i,j}. Inserting an edge that already
// exists, in either orientation, is a no-op.
//
// Steps:
//  1. Lock mu.
//  2. Validate both endpoints against the current universe.
//  3. Reject self-loops.
//  4. Insert into both adjacency sets unless already present.
//
// Errors:
//   - ErrInvalidNode if either endpoint is outside [0, NodeCount()).
//   - ErrLoopNotAllowed if i == j.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(i, j int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(i) || !g.valid(j) {
		return fmt.Errorf("AddEdge(%d,%d): universe [0,%d): %w", i, j, len(g.adjacency), ErrInvalidNode)
	}
	if i == j {
		return fmt.Errorf("AddEdge(%d,%d): %w", i, j, ErrLoopNotAllowed)
	}
	if _, ok := g.adjacency[i][j]; ok {
		return nil
	}
	g.adjacency[i][j] = struct{}{}
	g.adjacency[j][i] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether {i,j} is present. Out-of-range ids report false.
// Complexity: O(1).
func (g *Graph) HasEdge(i, j int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(i) || !g.valid(j) {
		return false
	}
	_, ok := g.adjacency[i][j]

	return ok
}

// EdgeCount returns the number of unordered edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, normalized and sorted by (From, To).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for i, nbrs := range g.adjacency {
		for j := range nbrs {
			if i < j {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].From != out[b].From {
			return out[a].From < out[b].From
		}
		return out[a].To < out[b].To
	})

	return out
}
