// SPDX-License-Identifier: MIT

// Package export writes simulation outcomes to disk: the last graph of a
// run as GML and the averaged statistics as a text or YAML report.
//
// GML output follows the layout networkx reads and writes:
//
//	graph [
//	  node [
//	    id 0
//	    label "0"
//	  ]
//	  edge [
//	    source 0
//	    target 1
//	  ]
//	]
//
// ReadGML accepts that layout back, plus an optional "directed 0" key,
// quoted strings containing whitespace, and unknown keys or nested lists,
// which are skipped.
package export
