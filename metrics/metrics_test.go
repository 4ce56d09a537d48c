// SPDX-License-Identifier: MIT

package metrics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/core"
	"github.com/katalvlaran/netsim/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	return g
}

// TestMeanDistance_Path4 checks the hand-computed value 20/12 = 5/3.
func TestMeanDistance_Path4(t *testing.T) {
	d, err := metrics.MeanDistance(build(t, nil, builder.Path(4)).Freeze())
	require.NoError(t, err)
	assert.Equal(t, int64(20), d.Total)
	assert.Equal(t, int64(12), d.Pairs)
	assert.InDelta(t, 5.0/3.0, d.Mean, eps)
}

// TestMeanDistance_PathClosedForm checks mean distance (k+1)/3 on P_k.
func TestMeanDistance_PathClosedForm(t *testing.T) {
	for k := 2; k <= 12; k++ {
		d, err := metrics.MeanDistance(build(t, nil, builder.Path(k)).Freeze())
		require.NoError(t, err)
		assert.InDelta(t, float64(k+1)/3, d.Mean, eps, "k=%d", k)
	}
}

// TestMeanDistance_Degenerate covers nil, empty and edgeless inputs.
func TestMeanDistance_Degenerate(t *testing.T) {
	_, err := metrics.MeanDistance(nil)
	assert.ErrorIs(t, err, metrics.ErrGraphNil)

	d, err := metrics.MeanDistance(core.NewGraph(0).Freeze())
	require.NoError(t, err)
	assert.Equal(t, metrics.Distance{}, d)

	d, err = metrics.MeanDistance(core.NewGraph(5).Freeze())
	require.NoError(t, err)
	assert.Zero(t, d.Pairs)
	assert.Zero(t, d.Mean)
}

// TestMeasure_Disconnected checks both distance policies on P_3 + K_2 + K_1.
func TestMeasure_Disconnected(t *testing.T) {
	g := build(t, nil, builder.Path(3), builder.Complete(2), builder.Complete(1))

	s, err := metrics.Measure(g, metrics.ReachablePairs)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Components)
	// P_3: 2·(1+1+2) = 8 over 6 pairs; K_2: 2 over 2 pairs.
	assert.InDelta(t, 10.0/8.0, s.MeanDistance, eps)

	s, err = metrics.Measure(g, metrics.ConnectedOnly)
	require.NoError(t, err)
	assert.True(t, math.IsInf(s.MeanDistance, 1))

	s, err = metrics.Measure(build(t, nil, builder.Path(4)), metrics.ConnectedOnly)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, s.MeanDistance, eps)

	_, err = metrics.Measure(g, metrics.DistancePolicy(9))
	assert.ErrorIs(t, err, metrics.ErrUnknownPolicy)
	_, err = metrics.Measure(nil, metrics.ReachablePairs)
	assert.ErrorIs(t, err, metrics.ErrGraphNil)
}

// TestMeasure_KnownTopologies runs the full metric set on fixed graphs.
func TestMeasure_KnownTopologies(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want metrics.Sample
	}{
		{
			name: "K5",
			ctor: builder.Complete(5),
			want: metrics.Sample{Nodes: 5, Edges: 10, HubDegree: 4, Clustering: 1, Density: 1, Components: 1, MeanDistance: 1},
		},
		{
			name: "Star5",
			ctor: builder.Star(5),
			// hub to leaves: 4·1·2 = 8; leaf pairs: 12·2 = 24; total 32 / 20.
			want: metrics.Sample{Nodes: 5, Edges: 4, HubDegree: 4, Clustering: 0, Density: 0.4, Components: 1, MeanDistance: 1.6},
		},
		{
			name: "C6",
			ctor: builder.Cycle(6),
			// per source: 1+1+2+2+3 = 9; 54 / 30.
			want: metrics.Sample{Nodes: 6, Edges: 6, HubDegree: 2, Clustering: 0, Density: 0.4, Components: 1, MeanDistance: 1.8},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := metrics.Measure(build(t, nil, tc.ctor), metrics.ReachablePairs)
			require.NoError(t, err)
			assert.Equal(t, tc.want.Nodes, got.Nodes)
			assert.Equal(t, tc.want.Edges, got.Edges)
			assert.Equal(t, tc.want.HubDegree, got.HubDegree)
			assert.Equal(t, tc.want.Components, got.Components)
			assert.InDelta(t, tc.want.Clustering, got.Clustering, eps)
			assert.InDelta(t, tc.want.Density, got.Density, eps)
			assert.InDelta(t, tc.want.MeanDistance, got.MeanDistance, eps)
		})
	}
}

// TestClustering_TriangleWithPendant checks local and average coefficients.
func TestClustering_TriangleWithPendant(t *testing.T) {
	g := core.NewGraph(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	s := g.Freeze()
	assert.InDelta(t, 1.0, metrics.LocalClustering(s, 0), eps)
	assert.InDelta(t, 1.0/3.0, metrics.LocalClustering(s, 2), eps)
	assert.Zero(t, metrics.LocalClustering(s, 3))
	assert.Zero(t, metrics.LocalClustering(s, 7))
	assert.InDelta(t, 7.0/12.0, metrics.AverageClustering(s), eps)
}

// TestDegreeHistogram checks the histogram layout and hub degree.
func TestDegreeHistogram(t *testing.T) {
	s := build(t, nil, builder.Star(4), builder.Complete(1)).Freeze()
	assert.Equal(t, []int{1, 3, 0, 1}, metrics.DegreeHistogram(s))
	assert.Equal(t, 3, metrics.HubDegree(s))

	empty := core.NewGraph(0).Freeze()
	assert.Empty(t, metrics.DegreeHistogram(empty))
	assert.Zero(t, metrics.HubDegree(empty))
}

// TestDensity_Exact checks density == 2|E|/(n(n-1)) for generated graphs.
func TestDensity_Exact(t *testing.T) {
	seed := []builder.BuilderOption{builder.WithSeed(21)}
	for _, g := range []*core.Graph{
		build(t, seed, builder.ErdosRenyi(80, 0.05)),
		build(t, seed, builder.BarabasiAlbert(3, 77)),
	} {
		s, err := metrics.Measure(g, metrics.ReachablePairs)
		require.NoError(t, err)
		n, e := float64(g.NodeCount()), float64(g.EdgeCount())
		assert.Equal(t, 2*e/(n*(n-1)), s.Density)
	}
	assert.Zero(t, metrics.Density(1, 0))
	assert.Zero(t, metrics.Density(0, 0))
}

// TestComponents lists components in order of their smallest node.
func TestComponents(t *testing.T) {
	g := core.NewGraph(6)
	require.NoError(t, g.AddEdge(4, 1))
	require.NoError(t, g.AddEdge(2, 5))
	s := g.Freeze()

	assert.Equal(t, [][]int{{0}, {1, 4}, {2, 5}, {3}}, metrics.Components(s))
	assert.Equal(t, 4, metrics.ConnectedComponents(s))
}

func TestUnionFind(t *testing.T) {
	uf := metrics.NewUnionFind(5)
	assert.True(t, uf.Union(0, 1))
	assert.True(t, uf.Union(3, 4))
	assert.False(t, uf.Union(1, 0))
	assert.True(t, uf.Union(1, 4))
	assert.Equal(t, 2, uf.Sets())
	assert.Equal(t, uf.Find(0), uf.Find(3))
	assert.NotEqual(t, uf.Find(0), uf.Find(2))
}

func TestParseDistancePolicy(t *testing.T) {
	p, err := metrics.ParseDistancePolicy("connected-only")
	require.NoError(t, err)
	assert.Equal(t, metrics.ConnectedOnly, p)
	p, err = metrics.ParseDistancePolicy("")
	require.NoError(t, err)
	assert.Equal(t, metrics.ReachablePairs, p)
	_, err = metrics.ParseDistancePolicy("infinite")
	assert.ErrorIs(t, err, metrics.ErrUnknownPolicy)
	assert.Equal(t, "reachable", metrics.ReachablePairs.String())
}
