// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a frozen core.Snapshot,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - BFS(s, start, opts...) explores nodes in non-decreasing hop distance
//     from start and returns a Result:
//   - Order: visit sequence
//   - Depth: hop distance per node id, Unreached (-1) if not reached
//   - Parent: predecessor per node id in the BFS tree, -1 for start/unreached
//   - Hooks: WithOnVisit (may abort with an error).
//   - Limits: WithMaxDepth(d > 0); WithContext for cancellation.
//   - Scanner: repeated single-source scans over one Snapshot with reused
//     buffers, for all-pairs work such as mean distance.
//
// Determinism
//
//	Snapshot neighbor lists are sorted ascending and BFS enqueues neighbors in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) per source
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the snapshot pointer is nil.
//   - ErrStartVertexNotFound  if start is outside [0, NodeCount()).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped hook errors from OnVisit; ctx.Err() on cancellation.
package bfs
