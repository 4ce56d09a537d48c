// SPDX-License-Identifier: MIT

package metrics

import "gonum.org/v1/gonum/stat"

// Summary is the mean and sample standard deviation of one metric.
type Summary struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
}

// Spread summarizes every Sample field across iterations.
type Spread struct {
	Edges        Summary `yaml:"edges"`
	HubDegree    Summary `yaml:"hub_degree"`
	Clustering   Summary `yaml:"clustering"`
	Density      Summary `yaml:"density"`
	Components   Summary `yaml:"components"`
	MeanDistance Summary `yaml:"mean_distance"`
}

// Summarize computes a Spread over samples. With fewer than two samples the
// standard deviations are 0. Infinite distances propagate as in gonum/stat.
func Summarize(samples []Sample) Spread {
	col := func(f func(Sample) float64) Summary {
		if len(samples) == 0 {
			return Summary{}
		}
		xs := make([]float64, len(samples))
		for i, s := range samples {
			xs[i] = f(s)
		}
		if len(xs) < 2 {
			return Summary{Mean: xs[0]}
		}
		mean, std := stat.MeanStdDev(xs, nil)
		return Summary{Mean: mean, StdDev: std}
	}

	return Spread{
		Edges:        col(func(s Sample) float64 { return float64(s.Edges) }),
		HubDegree:    col(func(s Sample) float64 { return float64(s.HubDegree) }),
		Clustering:   col(func(s Sample) float64 { return s.Clustering }),
		Density:      col(func(s Sample) float64 { return s.Density }),
		Components:   col(func(s Sample) float64 { return float64(s.Components) }),
		MeanDistance: col(func(s Sample) float64 { return s.MeanDistance }),
	}
}
