// Package netsim simulates random graphs and measures how their structure
// changes with the model parameters.
//
// 🚀 What is netsim?
//
//	A small, deterministic toolkit that brings together:
//		• Core primitives: an undirected simple graph over nodes 0..n-1,
//		  safe for concurrent use, with immutable CSR snapshots
//		• Generators: Erdős–Rényi G(n,p) with named regimes, Barabási–Albert
//		  preferential attachment with linear or Fenwick roulette wheels
//		• Traversal: BFS with hooks, depth limits and cancellation
//		• Metrics: hub degree, density, clustering, components, mean distance
//		• Simulation: repeated generate → measure runs, averaged per metric,
//		  sequential or parallel with identical results
//		• Export: GML graphs plus text or YAML statistics reports
//
// ✨ Why netsim?
//
//   - Reproducible – every iteration draws from a seed-derived stream
//   - Exact where it matters – p=0 and p=1 never draw, edge counts of the
//     growth model are fixed by construction
//   - Interoperable – converters to and from gonum graphs
//
// Packages:
//
//	core/        - Graph, Edge and Snapshot
//	builder/     - ErdosRenyi, BarabasiAlbert, regimes, roulette wheels, fixtures
//	bfs/         - breadth-first traversal and the reusable distance Scanner
//	metrics/     - per-graph Sample, RunningStatistics and Spread
//	simulation/  - Model implementations and the one-shot Runner
//	export/      - GML read/write, reports and the file Sink
//	config/      - batch configuration (YAML + validation)
//	converters/  - gonum adapters
//	cmd/netsim/  - command-line front end
//
// Quick start:
//
//	r := simulation.NewRunner(simulation.NewErdosRenyiRegime(1000, builder.Critical), 10)
//	res, err := r.Run(ctx)
//	// res.Stats.MeanDistance, res.LastGraph, ...
//
//	go install github.com/katalvlaran/netsim/cmd/netsim@latest
package netsim
