// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/netsim/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ErrNonContiguousIDs is returned when a gonum graph's node ids are not
// exactly 0..n-1.
var ErrNonContiguousIDs = errors.New("converters: node ids are not contiguous from 0")

// ErrNilGraph is returned for a nil input graph.
var ErrNilGraph = errors.New("converters: graph is nil")

// ToGonum copies g into a new simple.UndirectedGraph.
// Complexity: O(n + E).
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := simple.NewUndirectedGraph()
	for i := 0; i < g.NodeCount(); i++ {
		out.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		out.SetEdge(out.NewEdge(simple.Node(int64(e.From)), simple.Node(int64(e.To))))
	}

	return out, nil
}

// FromGonum copies an undirected gonum graph whose node ids are 0..n-1 into
// a core.Graph. Self-loops are rejected by core.
func FromGonum(ug graph.Undirected) (*core.Graph, error) {
	if ug == nil {
		return nil, ErrNilGraph
	}
	nodes := graph.NodesOf(ug.Nodes())
	ids := make([]int64, len(nodes))
	for i, nd := range nodes {
		ids[i] = nd.ID()
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	for i, id := range ids {
		if id != int64(i) {
			return nil, fmt.Errorf("FromGonum: id %d at rank %d: %w", id, i, ErrNonContiguousIDs)
		}
	}

	g := core.NewGraph(len(ids))
	for _, id := range ids {
		to := ug.From(id)
		for to.Next() {
			v := to.Node().ID()
			if v <= id {
				continue
			}
			if err := g.AddEdge(int(id), int(v)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return g, nil
}
