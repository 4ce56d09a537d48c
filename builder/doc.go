// SPDX-License-Identifier: MIT

// Package: netsim/builder
//
// Package builder generates core.Graph instances from composable constructors.
//
// What
//
//   - ErdosRenyi(n, p): binomial random graph G(n,p). Every unordered pair
//     {i,j}, i<j, is examined exactly once in lexicographic order and kept
//     iff a uniform draw r satisfies r ≤ p. p=0 and p=1 are exact.
//   - ErdosRenyiRegime(n, regime): as above with p = RegimeToProbability(regime, n).
//   - BarabasiAlbert(m, t): preferential-attachment growth. A complete seed on
//     m₀ = m+1 nodes, then t new nodes, each attached to m distinct existing
//     nodes drawn by roulette wheel (probability ∝ degree).
//   - Complete(n), Path(n), Cycle(n), Star(n): deterministic fixtures.
//
// Composition
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.BarabasiAlbert(3, 100),
//	)
//
// Every constructor appends its own nodes (ids continue from g.NodeCount()),
// so several constructors can be applied to one graph in order.
//
// Determinism
//
//   - All randomness comes from the *rand.Rand resolved by WithSeed/WithRand.
//   - Same seed, options and constructor order ⇒ identical edge sets.
//   - Uniform draws are quantized to WithResolution steps (default 1e6,
//     r = k/1e6 with k uniform in [0,1e6]); WithResolution(0) uses the full
//     float64 stream.
//
// Roulette wheel
//
//	WheelLinear (default) recomputes the degree total and scans nodes in id
//	order on every draw: O(n) per draw. WheelCumulative keeps degrees in a
//	Fenwick tree: O(log n) per draw and per update, same distribution. Both
//	fall back to the last candidate when floating-point accumulation never
//	reaches r.
//
// Errors
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrInvalidAttachment,
//	ErrNeedRandSource, ErrUnknownRegime, ErrZeroTotalDegree, ErrConstructFailed.
//	Constructors wrap them with the constructor name; use errors.Is.
package builder
