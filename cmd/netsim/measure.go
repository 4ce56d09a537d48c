// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/netsim/export"
	"github.com/katalvlaran/netsim/metrics"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newMeasureCommand() *cobra.Command {
	var policy string
	cmd := &cobra.Command{
		Use:   "measure FILE.gml...",
		Short: "Print the metrics of existing GML graphs as YAML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := metrics.ParseDistancePolicy(policy)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			for _, path := range args {
				s, err := measureFile(path, p)
				if err != nil {
					return err
				}
				doc := struct {
					File   string         `yaml:"file"`
					Sample metrics.Sample `yaml:"metrics"`
				}{path, s}
				if err := enc.Encode(doc); err != nil {
					return err
				}
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&policy, "distance", metrics.ReachablePairs.String(), "Mean distance on disconnected graphs: reachable or connected-only")
	return cmd
}

func measureFile(path string, policy metrics.DistancePolicy) (metrics.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return metrics.Sample{}, err
	}
	defer f.Close()
	g, err := export.ReadGML(f)
	if err != nil {
		return metrics.Sample{}, fmt.Errorf("%s: %w", path, err)
	}
	return metrics.Measure(g, policy)
}
