// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// Sample holds the per-graph metrics of one simulation iteration.
type Sample struct {
	Nodes        int     `yaml:"nodes"`
	Edges        int     `yaml:"edges"`
	HubDegree    int     `yaml:"hub_degree"`
	Clustering   float64 `yaml:"clustering"`
	Density      float64 `yaml:"density"`
	Components   int     `yaml:"components"`
	MeanDistance float64 `yaml:"mean_distance"`
}

// Measure freezes g and computes every Sample field under policy.
func Measure(g *core.Graph, policy DistancePolicy) (Sample, error) {
	if g == nil {
		return Sample{}, ErrGraphNil
	}
	return MeasureSnapshot(g.Freeze(), policy)
}

// MeasureSnapshot computes every Sample field for s under policy.
// Complexity: dominated by MeanDistance, O(n·(n + E)).
func MeasureSnapshot(s *core.Snapshot, policy DistancePolicy) (Sample, error) {
	if s == nil {
		return Sample{}, ErrGraphNil
	}
	n, e := s.NodeCount(), s.EdgeCount()
	out := Sample{
		Nodes:      n,
		Edges:      e,
		HubDegree:  HubDegree(s),
		Clustering: AverageClustering(s),
		Density:    Density(n, e),
		Components: ConnectedComponents(s),
	}

	d, err := MeanDistance(s)
	if err != nil {
		return Sample{}, fmt.Errorf("Measure: %w", err)
	}
	if out.MeanDistance, err = applyPolicy(policy, d, out.Components); err != nil {
		return Sample{}, fmt.Errorf("Measure: %w", err)
	}

	return out, nil
}
