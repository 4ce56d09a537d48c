// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between core.Graph and
// gonum.org/v1/gonum/graph, so that gonum's algorithms (topo, path, network)
// can run on netsim graphs and gonum graphs can feed the metrics pipeline.
//
// Node ids map one-to-one: core node i ⇔ gonum node ID int64(i).
package converters
