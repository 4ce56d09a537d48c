// SPDX-License-Identifier: MIT

// Package metrics measures structural statistics of a core.Graph and
// averages them over repeated simulations.
//
// Per graph (Measure):
//
//	Edges        |E|
//	HubDegree    maximum degree, len(DegreeHistogram)-1
//	Clustering   mean local clustering coefficient; degree < 2 contributes 0
//	Density      2|E| / (n(n-1)); 0 for n < 2
//	Components   number of connected components (union-find)
//	MeanDistance mean hop distance over reachable ordered pairs (BFS from
//	             every node); see DistancePolicy for disconnected graphs
//
// Across simulations (RunningStatistics):
//
//	Add(sample) accumulates sums; Finalize(n) divides by the number of
//	samples once and derives MeanDegree = 2·Edges/n. A finalized value is
//	never mutated again.
//
// Spread (Summarize) reports per-metric mean and sample standard deviation
// across the captured samples using gonum/stat.
//
// The package never logs; all failures are returned as wrapped sentinels.
package metrics
