// SPDX-License-Identifier: MIT

package metrics

import "fmt"

// RunningStatistics accumulates Sample sums across simulations.
//
// Before Finalize each field holds a running sum; after Finalize it holds
// the arithmetic mean over Count() samples. The zero value is ready to use.
type RunningStatistics struct {
	Edges        float64 `yaml:"edges"`
	HubDegree    float64 `yaml:"hub_degree"`
	Clustering   float64 `yaml:"clustering"`
	Density      float64 `yaml:"density"`
	Components   float64 `yaml:"components"`
	MeanDistance float64 `yaml:"mean_distance"`

	// MeanDegree is derived once by Finalize as 2·Edges/n.
	MeanDegree float64 `yaml:"mean_degree"`

	count     int
	finalized bool
}

// Add accumulates one sample.
func (rs *RunningStatistics) Add(s Sample) error {
	if rs.finalized {
		return fmt.Errorf("Add: %w", ErrAlreadyFinalized)
	}
	rs.Edges += float64(s.Edges)
	rs.HubDegree += float64(s.HubDegree)
	rs.Clustering += s.Clustering
	rs.Density += s.Density
	rs.Components += float64(s.Components)
	rs.MeanDistance += s.MeanDistance
	rs.count++

	return nil
}

// Finalize divides every sum by Count() and derives MeanDegree for a graph
// of nodeCount nodes. It may be called once.
func (rs *RunningStatistics) Finalize(nodeCount int) error {
	switch {
	case rs.finalized:
		return fmt.Errorf("Finalize: %w", ErrAlreadyFinalized)
	case rs.count == 0:
		return fmt.Errorf("Finalize: %w", ErrNoSamples)
	case nodeCount <= 0:
		return fmt.Errorf("Finalize: n=%d: %w", nodeCount, ErrNodeCount)
	}

	s := float64(rs.count)
	rs.Edges /= s
	rs.HubDegree /= s
	rs.Clustering /= s
	rs.Density /= s
	rs.Components /= s
	rs.MeanDistance /= s
	rs.MeanDegree = 2 * rs.Edges / float64(nodeCount)
	rs.finalized = true

	return nil
}

// Count returns the number of samples added.
func (rs *RunningStatistics) Count() int { return rs.count }

// Finalized reports whether Finalize has succeeded.
func (rs *RunningStatistics) Finalized() bool { return rs.finalized }
