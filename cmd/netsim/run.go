// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/netsim/config"
	"github.com/katalvlaran/netsim/export"
	"github.com/katalvlaran/netsim/simulation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runOpts struct {
	configPath string
	cfg        config.Config
}

func newRunCommand(root *rootOpts) *cobra.Command {
	opts := &runOpts{cfg: config.Default()}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a model over a parameter grid and export the results",
		Long: `Run S simulations for every point of the parameter grid.

For each grid point the last generated graph is written to
<out>_n=<n>_p=<p>.gml (Erdős–Rényi) or <out>_t=<t>_m=<m>.gml
(Barabási–Albert), and the averaged statistics are appended to
<out>_stats.txt (or <out>_stats.yaml with --report-format yaml).

Flags override values read from --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			logger, err := root.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			return runBatch(cmd, cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML batch file; flags given explicitly override it")
	f.StringVar(&opts.cfg.Model, "model", opts.cfg.Model, "Model: e (Erdős–Rényi) or b (Barabási–Albert)")
	f.IntSliceVarP(&opts.cfg.Nodes, "nodes", "n", opts.cfg.Nodes, "Node counts")
	f.Float64SliceVar(&opts.cfg.P, "p", nil, "Explicit edge probabilities (Erdős–Rényi); overrides --regime")
	f.StringSliceVar(&opts.cfg.Regimes, "regime", opts.cfg.Regimes, "Erdős–Rényi regimes: sub-critical, critical, super-critical, connected")
	f.IntSliceVar(&opts.cfg.M, "m", opts.cfg.M, "Attachment counts (Barabási–Albert)")
	f.IntVarP(&opts.cfg.Sims, "sims", "s", opts.cfg.Sims, "Simulations per grid point")
	f.Int64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "Run seed; 0 selects a fixed default")
	f.IntVarP(&opts.cfg.Workers, "workers", "w", opts.cfg.Workers, "Concurrent simulations per grid point")
	f.StringVarP(&opts.cfg.Out, "out", "o", "", "Output prefix (default erdos_renyi or barabasi_albert)")
	f.StringVar(&opts.cfg.ReportFormat, "report-format", opts.cfg.ReportFormat, "Report format: text or yaml")
	f.StringVar(&opts.cfg.DistancePolicy, "distance", opts.cfg.DistancePolicy, "Mean distance on disconnected graphs: reachable or connected-only")
	f.StringVar(&opts.cfg.Wheel, "wheel", opts.cfg.Wheel, "Roulette wheel for Barabási–Albert: linear or cumulative")
	f.BoolVar(&opts.cfg.Samples, "samples", false, "Include per-iteration samples in YAML reports")
	return cmd
}

// resolve merges --config with explicitly set flags and validates.
func (o *runOpts) resolve(cmd *cobra.Command) (config.Config, error) {
	if o.configPath == "" {
		return o.cfg, o.cfg.Validate()
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	override := map[string]func(){
		"model":         func() { cfg.Model = o.cfg.Model },
		"nodes":         func() { cfg.Nodes = o.cfg.Nodes },
		"p":             func() { cfg.P = o.cfg.P },
		"regime":        func() { cfg.Regimes = o.cfg.Regimes },
		"m":             func() { cfg.M = o.cfg.M },
		"sims":          func() { cfg.Sims = o.cfg.Sims },
		"seed":          func() { cfg.Seed = o.cfg.Seed },
		"workers":       func() { cfg.Workers = o.cfg.Workers },
		"out":           func() { cfg.Out = o.cfg.Out },
		"report-format": func() { cfg.ReportFormat = o.cfg.ReportFormat },
		"distance":      func() { cfg.DistancePolicy = o.cfg.DistancePolicy },
		"wheel":         func() { cfg.Wheel = o.cfg.Wheel },
		"samples":       func() { cfg.Samples = o.cfg.Samples },
	}
	for name, apply := range override {
		if f.Changed(name) {
			apply()
		}
	}
	return cfg, cfg.Validate()
}

// runBatch runs every plan of cfg and exports each result.
func runBatch(cmd *cobra.Command, cfg config.Config, logger *zap.Logger) error {
	plans, err := cfg.Plans()
	if err != nil {
		return err
	}
	ropts, err := cfg.RunnerOptions(logger)
	if err != nil {
		return err
	}
	format, err := cfg.Format()
	if err != nil {
		return err
	}
	sinkOpts := []export.SinkOption{export.WithSinkLogger(logger)}
	if cfg.Samples {
		sinkOpts = append(sinkOpts, export.WithSamples())
	}
	sink, err := export.NewSink(cfg.OutPrefix(), format, sinkOpts...)
	if err != nil {
		return err
	}

	for i, model := range plans {
		res, err := simulation.NewRunner(model, cfg.Sims, ropts...).Run(cmd.Context())
		if err != nil {
			sink.Close()
			return fmt.Errorf("plan %d/%d: %w", i+1, len(plans), err)
		}
		if _, err := sink.Write(res); err != nil {
			sink.Close()
			return err
		}
		if err := export.WriteReport(cmd.OutOrStdout(), res); err != nil {
			sink.Close()
			return err
		}
	}
	return sink.Close()
}
