// SPDX-License-Identifier: MIT

// Package: netsim/builder
//
// wheel.go - roulette-wheel selection over non-negative integer weights
// (node degrees for preferential attachment).
//
// Selection rule (shared by every Wheel):
//   - P(i) = w_i / Σw.
//   - Given r ∈ [0,1], return the first index i (ascending) whose cumulative
//     probability reaches r.
//   - If accumulation never reaches r (floating-point rounding at the tail),
//     return the last index.
//   - Σw = 0 → ErrZeroTotalDegree.

package builder

import (
	"fmt"
	"math/bits"
)

// WheelKind selects a roulette-wheel implementation.
type WheelKind int

const (
	// WheelLinear rescans all weights on every draw (reference behavior).
	WheelLinear WheelKind = iota
	// WheelCumulative keeps prefix sums in a Fenwick tree.
	WheelCumulative
)

// String returns "linear" or "cumulative".
func (k WheelKind) String() string {
	switch k {
	case WheelLinear:
		return "linear"
	case WheelCumulative:
		return "cumulative"
	}
	return fmt.Sprintf("WheelKind(%d)", int(k))
}

// Wheel is a mutable weighted sampler over indices 0..Len()-1.
type Wheel interface {
	// Push appends a new index with weight w.
	Push(w int)
	// Add changes the weight of index i by delta.
	Add(i, delta int)
	// Len returns the number of indices.
	Len() int
	// Total returns Σw.
	Total() int
	// Select maps r ∈ [0,1] to an index.
	Select(r float64) (int, error)
}

// RouletteWheel applies the selection rule to a weight slice directly.
// The total is recomputed from weights on every call.
// Complexity: O(n).
func RouletteWheel(weights []int, r float64) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("RouletteWheel: no candidates: %w", ErrZeroTotalDegree)
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, fmt.Errorf("RouletteWheel: %d candidates: %w", len(weights), ErrZeroTotalDegree)
	}

	ft := float64(total)
	cum := 0.0
	for i, w := range weights {
		cum += float64(w) / ft
		if r <= cum {
			return i, nil
		}
	}

	return len(weights) - 1, nil
}

// LinearWheel is the reference O(n) wheel.
type LinearWheel struct {
	weights []int
}

// NewLinearWheel copies weights into a new LinearWheel.
func NewLinearWheel(weights []int) *LinearWheel {
	w := make([]int, len(weights))
	copy(w, weights)
	return &LinearWheel{weights: w}
}

func (lw *LinearWheel) Push(w int)       { lw.weights = append(lw.weights, w) }
func (lw *LinearWheel) Add(i, delta int) { lw.weights[i] += delta }
func (lw *LinearWheel) Len() int         { return len(lw.weights) }

func (lw *LinearWheel) Total() int {
	total := 0
	for _, w := range lw.weights {
		total += w
	}
	return total
}

func (lw *LinearWheel) Select(r float64) (int, error) {
	return RouletteWheel(lw.weights, r)
}

// CumulativeWheel answers draws in O(log n) with a Fenwick (binary indexed)
// tree of weights. Index i is searched as the smallest i with
// prefix(i) ≥ r·Σw, which is the linear rule with the division moved to the
// other side of the comparison.
type CumulativeWheel struct {
	tree  []int // 1-based Fenwick array; tree[0] unused
	total int
}

// NewCumulativeWheel builds the tree over weights in O(n).
func NewCumulativeWheel(weights []int) *CumulativeWheel {
	cw := &CumulativeWheel{tree: make([]int, len(weights)+1)}
	for i, w := range weights {
		cw.tree[i+1] += w
		cw.total += w
		if parent := (i + 1) + ((i + 1) & -(i + 1)); parent <= len(weights) {
			cw.tree[parent] += cw.tree[i+1]
		}
	}
	return cw
}

func (cw *CumulativeWheel) Len() int   { return len(cw.tree) - 1 }
func (cw *CumulativeWheel) Total() int { return cw.total }

// Push appends index Len() with weight w. The new Fenwick node covers the
// range (k - lowbit(k), k], so its value is w plus the prefix sums of the
// children it absorbs.
func (cw *CumulativeWheel) Push(w int) {
	k := len(cw.tree)
	val := w
	low := k & -k
	for step := 1; step < low; step <<= 1 {
		val += cw.tree[k-step]
	}
	cw.tree = append(cw.tree, val)
	cw.total += w
}

func (cw *CumulativeWheel) Add(i, delta int) {
	for k := i + 1; k < len(cw.tree); k += k & -k {
		cw.tree[k] += delta
	}
	cw.total += delta
}

func (cw *CumulativeWheel) Select(r float64) (int, error) {
	n := cw.Len()
	if n == 0 || cw.total <= 0 {
		return 0, fmt.Errorf("CumulativeWheel: %d candidates: %w", n, ErrZeroTotalDegree)
	}
	target := r * float64(cw.total)

	// Binary lifting: pos ends as the count of leading indices whose prefix
	// sum stays strictly below target.
	pos := 0
	rem := target
	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		next := pos + step
		if next <= n && float64(cw.tree[next]) < rem {
			pos = next
			rem -= float64(cw.tree[next])
		}
	}
	if pos >= n {
		return n - 1, nil
	}

	return pos, nil
}
