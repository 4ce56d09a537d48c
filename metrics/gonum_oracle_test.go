// SPDX-License-Identifier: MIT

package metrics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/converters"
	"github.com/katalvlaran/netsim/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"
)

// TestAgainstGonum compares components and mean distance with gonum's
// topo.ConnectedComponents and path.DijkstraAllPaths on sparse random graphs
// that are usually disconnected.
func TestAgainstGonum(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := build(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.ErdosRenyi(30, 0.05))
		ug, err := converters.ToGonum(g)
		require.NoError(t, err)

		s := g.Freeze()
		assert.Equal(t, len(topo.ConnectedComponents(ug)), metrics.ConnectedComponents(s), "seed %d", seed)

		all := path.DijkstraAllPaths(ug)
		var total float64
		var pairs int64
		for u := 0; u < g.NodeCount(); u++ {
			for v := 0; v < g.NodeCount(); v++ {
				if u == v {
					continue
				}
				if w := all.Weight(int64(u), int64(v)); !math.IsInf(w, 1) {
					total += w
					pairs++
				}
			}
		}
		d, err := metrics.MeanDistance(s)
		require.NoError(t, err)
		require.Equal(t, pairs, d.Pairs, "seed %d", seed)
		assert.InDelta(t, total, float64(d.Total), 1e-9)
	}
}
