// SPDX-License-Identifier: MIT

package simulation_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/core"
	"github.com/katalvlaran/netsim/metrics"
	"github.com/katalvlaran/netsim/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// countingModel builds a fixed path and counts Generate calls.
type countingModel struct {
	n     int
	calls atomic.Int32
	err   error
}

func (m *countingModel) Name() string   { return "path" }
func (m *countingModel) NodeCount() int { return m.n }
func (m *countingModel) Validate() error {
	if m.n < 2 {
		return fmt.Errorf("n=%d: %w", m.n, builder.ErrTooFewVertices)
	}
	return nil
}
func (m *countingModel) Generate(*rand.Rand) (*core.Graph, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return builder.BuildGraph(nil, builder.Path(m.n))
}
func (m *countingModel) Params() map[string]string { return map[string]string{"n": fmt.Sprint(m.n)} }

func TestRun_InvalidConfigurationNeverGenerates(t *testing.T) {
	tests := []struct {
		name  string
		model *countingModel
		sims  int
	}{
		{"zero sims", &countingModel{n: 4}, 0},
		{"negative sims", &countingModel{n: 4}, -3},
		{"invalid model", &countingModel{n: 1}, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := simulation.NewRunner(tc.model, tc.sims)
			res, err := r.Run(context.Background())
			require.ErrorIs(t, err, simulation.ErrInvalidConfiguration)
			assert.Nil(t, res)
			assert.Zero(t, tc.model.calls.Load())
			assert.Equal(t, simulation.Idle, r.State())
		})
	}

	_, err := simulation.NewRunner(nil, 3).Run(context.Background())
	assert.ErrorIs(t, err, simulation.ErrInvalidConfiguration)
}

func TestRun_InvalidModelParameters(t *testing.T) {
	tests := []struct {
		name  string
		model simulation.Model
		want  error
	}{
		{"er n=0", simulation.NewErdosRenyi(0, 0.5), builder.ErrTooFewVertices},
		{"er p>1", simulation.NewErdosRenyi(10, 1.5), builder.ErrInvalidProbability},
		{"er p<0", simulation.NewErdosRenyi(10, -0.1), builder.ErrInvalidProbability},
		{"er bad regime", simulation.NewErdosRenyiRegime(10, builder.Regime(42)), builder.ErrUnknownRegime},
		{"ba m=0", simulation.NewBarabasiAlbert(0, 5), builder.ErrInvalidAttachment},
		{"ba t<0", simulation.NewBarabasiAlbert(2, -1), builder.ErrTooFewVertices},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := simulation.NewRunner(tc.model, 1).Run(context.Background())
			assert.ErrorIs(t, err, simulation.ErrInvalidConfiguration)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRun_Lifecycle(t *testing.T) {
	m := &countingModel{n: 4}
	r := simulation.NewRunner(m, 3)
	assert.Equal(t, simulation.Idle, r.State())

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, simulation.Finalized, r.State())
	assert.Equal(t, int32(3), m.calls.Load())
	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.Equal(t, 3, res.Sims)
	assert.Len(t, res.Samples, 3)
	require.NotNil(t, res.LastGraph)
	assert.Equal(t, 4, res.LastGraph.NodeCount())

	_, err = r.Run(context.Background())
	assert.ErrorIs(t, err, simulation.ErrAlreadyRun)
	assert.Equal(t, int32(3), m.calls.Load())
}

// TestRun_PathDistance checks S=1 on P_k against (k+1)/3.
func TestRun_PathDistance(t *testing.T) {
	for _, k := range []int{4, 7, 10} {
		res, err := simulation.NewRunner(&countingModel{n: k}, 1).Run(context.Background())
		require.NoError(t, err)
		assert.InDelta(t, float64(k+1)/3, res.Stats.MeanDistance, 1e-12)
		assert.InDelta(t, 2*float64(k-1)/float64(k), res.Stats.MeanDegree, 1e-12)
	}
}

func TestRun_GenerationFailure(t *testing.T) {
	m := &countingModel{n: 4, err: fmt.Errorf("wheel: %w", builder.ErrZeroTotalDegree)}
	r := simulation.NewRunner(m, 5)
	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, simulation.ErrInvalidConfiguration)
	assert.ErrorIs(t, err, builder.ErrZeroTotalDegree)
	assert.Equal(t, simulation.Failed, r.State())
	assert.Equal(t, int32(1), m.calls.Load())

	boom := errors.New("boom")
	_, err = simulation.NewRunner(&countingModel{n: 4, err: boom}, 2).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, simulation.ErrInvalidConfiguration)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := &countingModel{n: 4}
	r := simulation.NewRunner(m, 3)
	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, simulation.Failed, r.State())
	assert.Zero(t, m.calls.Load())
}

// TestRun_ErdosRenyiEndpoints checks exact p=0 and p=1 averages.
func TestRun_ErdosRenyiEndpoints(t *testing.T) {
	res, err := simulation.NewRunner(simulation.NewErdosRenyi(30, 0), 3).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Stats.Edges)
	assert.Equal(t, 30.0, res.Stats.Components)
	assert.Zero(t, res.Stats.MeanDistance)

	res, err = simulation.NewRunner(simulation.NewErdosRenyi(30, 1), 3).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(30*29/2), res.Stats.Edges)
	assert.Equal(t, 1.0, res.Stats.Density)
	assert.Equal(t, 1.0, res.Stats.Clustering)
	assert.Equal(t, 29.0, res.Stats.MeanDegree)
}

// TestRun_BarabasiAlbertCounts checks node and edge counts of every sample.
func TestRun_BarabasiAlbertCounts(t *testing.T) {
	for _, wheel := range []builder.WheelKind{builder.WheelLinear, builder.WheelCumulative} {
		m := &simulation.BarabasiAlbertModel{M: 3, T: 60, Wheel: wheel}
		res, err := simulation.NewRunner(m, 4, simulation.WithSeed(5)).Run(context.Background())
		require.NoError(t, err)
		for _, s := range res.Samples {
			assert.Equal(t, 64, s.Nodes)
			assert.Equal(t, 3*4/2+3*60, s.Edges)
			assert.Equal(t, 1, s.Components)
		}
	}
}

func TestRun_Reproducible(t *testing.T) {
	run := func(seed int64) *simulation.Result {
		res, err := simulation.NewRunner(simulation.NewErdosRenyi(40, 0.08), 4,
			simulation.WithSeed(seed)).Run(context.Background())
		require.NoError(t, err)
		return res
	}
	a, b := run(11), run(11)
	assert.Equal(t, a.Samples, b.Samples)
	assert.Equal(t, a.Stats, b.Stats)
	assert.Equal(t, a.LastGraph.Edges(), b.LastGraph.Edges())
	assert.NotEqual(t, a.RunID, b.RunID)

	c := run(12)
	assert.NotEqual(t, a.LastGraph.Edges(), c.LastGraph.Edges())
}

// TestRun_ParallelMatchesSequential relies on per-iteration RNG streams.
func TestRun_ParallelMatchesSequential(t *testing.T) {
	model := simulation.NewBarabasiAlbertNodes(80, 2)
	seq, err := simulation.NewRunner(model, 8, simulation.WithSeed(3)).Run(context.Background())
	require.NoError(t, err)
	par, err := simulation.NewRunner(model, 8, simulation.WithSeed(3),
		simulation.WithWorkers(4)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seq.Samples, par.Samples)
	assert.Equal(t, seq.Stats, par.Stats)
	assert.Equal(t, seq.Spread, par.Spread)
	assert.Equal(t, seq.LastGraph.Edges(), par.LastGraph.Edges())
}

// TestRun_StatsAreSampleMeans compares the finalized statistics with the
// arithmetic mean of the observed per-iteration samples.
func TestRun_StatsAreSampleMeans(t *testing.T) {
	var (
		order []int
		seen  []metrics.Sample
	)
	obs := func(i int, s metrics.Sample) {
		order = append(order, i)
		seen = append(seen, s)
	}
	model := simulation.NewErdosRenyiRegime(60, builder.SuperCritical)
	res, err := simulation.NewRunner(model, 6, simulation.WithSeed(8),
		simulation.WithObserver(obs), simulation.WithWorkers(3)).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, order)
	assert.Equal(t, res.Samples, seen)

	var edges, hub, cc, dens, comp, dist float64
	for _, s := range seen {
		edges += float64(s.Edges)
		hub += float64(s.HubDegree)
		cc += s.Clustering
		dens += s.Density
		comp += float64(s.Components)
		dist += s.MeanDistance
	}
	const tol = 1e-12
	assert.InDelta(t, edges/6, res.Stats.Edges, tol)
	assert.InDelta(t, hub/6, res.Stats.HubDegree, tol)
	assert.InDelta(t, cc/6, res.Stats.Clustering, tol)
	assert.InDelta(t, dens/6, res.Stats.Density, tol)
	assert.InDelta(t, comp/6, res.Stats.Components, tol)
	assert.InDelta(t, dist/6, res.Stats.MeanDistance, tol)
	assert.InDelta(t, 2*(edges/6)/60, res.Stats.MeanDegree, tol)
	assert.InDelta(t, res.Stats.Edges, res.Spread.Edges.Mean, 1e-9)
}

// TestRun_ObserverSeesProgress checks that samples are delivered while the
// run is still generating, not in one batch after the last iteration.
func TestRun_ObserverSeesProgress(t *testing.T) {
	model := &countingModel{n: 6}
	var generated []int32
	obs := func(i int, _ metrics.Sample) {
		generated = append(generated, model.calls.Load())
	}
	_, err := simulation.NewRunner(model, 4, simulation.WithObserver(obs)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4}, generated)
}

func TestRun_ObserverStopsOnFailure(t *testing.T) {
	model := &countingModel{n: 6}
	var observed int
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	obs := func(i int, _ metrics.Sample) {
		observed++
		if i == 1 {
			cancel()
		}
	}
	_, err := simulation.NewRunner(model, 5, simulation.WithObserver(obs)).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, observed)
	assert.EqualValues(t, 2, model.calls.Load())
}

func TestRun_ParallelObserverIndexOrder(t *testing.T) {
	var order []int
	obs := func(i int, _ metrics.Sample) { order = append(order, i) }
	_, err := simulation.NewRunner(simulation.NewBarabasiAlbertNodes(40, 2), 24,
		simulation.WithWorkers(5), simulation.WithObserver(obs)).Run(context.Background())
	require.NoError(t, err)
	want := make([]int, 24)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, order)
}

func TestRun_Logging(t *testing.T) {
	zc, logs := observer.New(zapcore.InfoLevel)
	_, err := simulation.NewRunner(&countingModel{n: 5}, 3,
		simulation.WithLogger(zap.New(zc))).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("iteration started").Len())
	assert.Equal(t, 3, logs.FilterMessage("iteration done").Len())
	require.Equal(t, 1, logs.FilterMessage("run finalized").Len())
	entry := logs.FilterMessage("run started").All()[0]
	assert.Equal(t, "path", entry.ContextMap()["model"])
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { simulation.WithWorkers(0) })
	assert.Panics(t, func() { simulation.WithLogger(nil) })
	assert.Panics(t, func() { simulation.WithDistancePolicy(metrics.DistancePolicy(7)) })
}

func TestConnectedOnlyPolicy(t *testing.T) {
	res, err := simulation.NewRunner(simulation.NewErdosRenyi(20, 0), 2,
		simulation.WithDistancePolicy(metrics.ConnectedOnly)).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Stats.MeanDistance > 1e300)
	assert.Equal(t, metrics.ConnectedOnly, res.Policy)
}
