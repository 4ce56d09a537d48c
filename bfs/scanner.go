// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// Scanner runs repeated single-source hop-distance scans over one Snapshot,
// reusing its depth and queue buffers between calls. A Scanner is not safe
// for concurrent use; create one per goroutine.
type Scanner struct {
	snap  *core.Snapshot
	depth []int
	queue []int
}

// NewScanner allocates buffers sized for s.
func NewScanner(s *core.Snapshot) (*Scanner, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	n := s.NodeCount()
	return &Scanner{snap: s, depth: make([]int, n), queue: make([]int, 0, n)}, nil
}

// Scan computes the hop distance from start to every node. The returned
// slice is indexed by node id, holds Unreached for unreachable nodes, and
// is only valid until the next Scan.
// Complexity: O(V + E).
func (sc *Scanner) Scan(start int) ([]int, error) {
	if !sc.snap.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	for i := range sc.depth {
		sc.depth[i] = Unreached
	}
	sc.queue = append(sc.queue[:0], start)
	sc.depth[start] = 0

	for head := 0; head < len(sc.queue); head++ {
		u := sc.queue[head]
		next := sc.depth[u] + 1
		for _, v := range sc.snap.Neighbors(u) {
			if sc.depth[v] == Unreached {
				sc.depth[v] = next
				sc.queue = append(sc.queue, v)
			}
		}
	}

	return sc.depth, nil
}

// Reached returns the number of nodes reached by the last Scan, start included.
func (sc *Scanner) Reached() int { return len(sc.queue) }
