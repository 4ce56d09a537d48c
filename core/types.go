// SPDX-License-Identifier: MIT

//
// File: types.go
// Role: Graph and Edge types, sentinel errors, and the NewGraph constructor.
// Concurrency:
//   - mu guards adjacency and edgeCount; every exported method locks it.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNode indicates a node id outside [0, NodeCount()).
	ErrInvalidNode = errors.New("core: invalid node")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a simple graph.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an unordered node pair, normalized so that From < To.
type Edge struct {
	From int
	To   int
}

// NewEdge returns the normalized form of the pair {i,j}.
func NewEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{From: i, To: j}
}

// Graph is an undirected, unweighted simple graph over nodes 0..n-1.
//
// The zero value is an empty graph ready for AddNode/AddNodes.
type Graph struct {
	mu sync.RWMutex

	// adjacency[i] is the neighbor set of node i.
	adjacency []map[int]struct{}

	// edgeCount is the number of unordered pairs stored.
	edgeCount int
}

// NewGraph creates a graph with nodes 0..n-1 and no edges.
// A non-positive n yields an empty graph.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adjacency: make([]map[int]struct{}, n)}
	for i := range g.adjacency {
		g.adjacency[i] = make(map[int]struct{})
	}

	return g
}
