// SPDX-License-Identifier: MIT

// Package core provides the minimal undirected simple graph used by every
// other netsim package.
//
// The Graph G = (V,E) has a contiguous node universe V = {0,…,n-1} and a
// dynamic edge set E of unordered pairs:
//
//   - No self-loops: AddEdge(v,v) → ErrLoopNotAllowed.
//   - No multi-edges: AddEdge(i,j) after AddEdge(j,i) is a silent no-op.
//   - No weights, no direction, no removal.
//   - Endpoints outside [0, NodeCount()) → ErrInvalidNode.
//
// Storage is one adjacency set per node (adjacency[i][j] = struct{}{}), so
// AddEdge/HasEdge are O(1) and Degree is O(1). A single sync.RWMutex guards
// the adjacency slice and the edge counter; queries take the read lock.
//
// Analysis code does not walk the mutable Graph directly. Freeze() returns a
// Snapshot: an immutable compressed-sparse-row copy with sorted neighbor
// lists. Snapshots are safe for any number of concurrent readers and make
// all-pairs traversals allocation-free.
//
// Core Methods:
//
//	NewGraph(n int) *Graph               // O(n)
//	AddNode(id int) error                // O(1) amortized; grows the universe through id
//	AddNodes(k int) (first int)          // O(k)
//	AddEdge(i, j int) error              // O(1)
//	HasEdge(i, j int) bool               // O(1)
//	Neighbors(i int) ([]int, error)      // O(d·log d), sorted copy
//	Degree(i int) (int, error)           // O(1)
//	Degrees() []int                      // O(n)
//	NodeCount(), EdgeCount() int         // O(1)
//	Edges() []Edge                       // O(E·log E), sorted by (From,To)
//	Clone() *Graph                       // O(n+E)
//	Freeze() *Snapshot                   // O(n+E)
//
// Errors:
//
//	ErrInvalidNode    – endpoint or node id outside the universe
//	ErrLoopNotAllowed – self-loop on a simple graph
package core
