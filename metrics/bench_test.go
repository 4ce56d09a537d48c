// SPDX-License-Identifier: MIT

package metrics_test

import (
	"testing"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/metrics"
)

func BenchmarkMeasure_BA1000(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.BarabasiAlbert(3, 996))
	if err != nil {
		b.Fatal(err)
	}
	s := g.Freeze()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := metrics.MeasureSnapshot(s, metrics.ReachablePairs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAverageClustering_ER1000(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.ErdosRenyi(1000, 0.01))
	if err != nil {
		b.Fatal(err)
	}
	s := g.Freeze()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = metrics.AverageClustering(s)
	}
}
