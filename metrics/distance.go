// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netsim/bfs"
	"github.com/katalvlaran/netsim/core"
)

// DistancePolicy decides what MeanDistance reports for a disconnected graph.
type DistancePolicy int

const (
	// ReachablePairs averages over reachable ordered pairs only (default).
	ReachablePairs DistancePolicy = iota
	// ConnectedOnly reports +Inf for a graph with more than one component;
	// once a run sees +Inf its averaged distance stays +Inf.
	ConnectedOnly
)

// String returns "reachable" or "connected-only".
func (p DistancePolicy) String() string {
	switch p {
	case ReachablePairs:
		return "reachable"
	case ConnectedOnly:
		return "connected-only"
	}
	return fmt.Sprintf("DistancePolicy(%d)", int(p))
}

// ParseDistancePolicy accepts the String forms.
func ParseDistancePolicy(s string) (DistancePolicy, error) {
	switch s {
	case "reachable", "":
		return ReachablePairs, nil
	case "connected-only", "connected":
		return ConnectedOnly, nil
	}
	return 0, fmt.Errorf("ParseDistancePolicy(%q): %w", s, ErrUnknownPolicy)
}

// Distance is the outcome of an all-sources BFS scan.
type Distance struct {
	// Total is Σ d(s,t) over reachable ordered pairs s ≠ t.
	Total int64
	// Pairs is the number of reachable ordered pairs s ≠ t.
	Pairs int64
	// Mean is Total/Pairs, or 0 when Pairs == 0.
	Mean float64
}

// MeanDistance runs one BFS per source node, adds every positive hop
// distance to Total and counts it in Pairs. Unreached nodes and the source
// itself are skipped, so a disconnected graph yields the mean over pairs
// that are actually connected.
// Complexity: O(n·(n + E)) time, O(n) space.
func MeanDistance(s *core.Snapshot) (Distance, error) {
	if s == nil {
		return Distance{}, ErrGraphNil
	}
	sc, err := bfs.NewScanner(s)
	if err != nil {
		return Distance{}, fmt.Errorf("MeanDistance: %w", err)
	}

	var out Distance
	for src := 0; src < s.NodeCount(); src++ {
		depth, err := sc.Scan(src)
		if err != nil {
			return Distance{}, fmt.Errorf("MeanDistance: %w", err)
		}
		for _, d := range depth {
			if d > 0 {
				out.Total += int64(d)
				out.Pairs++
			}
		}
	}
	if out.Pairs > 0 {
		out.Mean = float64(out.Total) / float64(out.Pairs)
	}

	return out, nil
}

// applyPolicy maps a Distance and component count to the reported value.
func applyPolicy(p DistancePolicy, d Distance, components int) (float64, error) {
	switch p {
	case ReachablePairs:
		return d.Mean, nil
	case ConnectedOnly:
		if components > 1 {
			return math.Inf(1), nil
		}
		return d.Mean, nil
	}
	return 0, fmt.Errorf("%v: %w", p, ErrUnknownPolicy)
}
