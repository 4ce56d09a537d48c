// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/export"
	"github.com/katalvlaran/netsim/metrics"
	"github.com/katalvlaran/netsim/simulation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every configuration problem.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config describes one batch of simulations over a parameter grid.
type Config struct {
	// Model is "e" (Erdős–Rényi) or "b" (Barabási–Albert); the long model
	// names are accepted too.
	Model string `yaml:"model" validate:"required,oneof=e er erdos-renyi b ba barabasi-albert"`
	// Nodes lists the node counts to simulate.
	Nodes []int `yaml:"nodes" validate:"required,min=1,dive,gt=0"`
	// P lists explicit edge probabilities. When empty, Regimes is used.
	P []float64 `yaml:"p" validate:"omitempty,dive,gte=0,lte=1"`
	// Regimes lists named G(n,p) regimes used when P is empty.
	Regimes []string `yaml:"regimes" validate:"omitempty,dive,required"`
	// M lists attachment counts for Barabási–Albert; t = n - m - 1.
	M []int `yaml:"m" validate:"omitempty,dive,gte=1"`

	Sims    int   `yaml:"sims" validate:"gte=1"`
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers" validate:"gte=1"`

	// Out is the output file prefix; empty selects a per-model default.
	Out            string `yaml:"out"`
	ReportFormat   string `yaml:"report_format" validate:"omitempty,oneof=text txt yaml yml"`
	DistancePolicy string `yaml:"distance_policy" validate:"omitempty,oneof=reachable connected connected-only"`
	Wheel          string `yaml:"wheel" validate:"omitempty,oneof=linear cumulative"`
	// Samples adds per-iteration samples to YAML reports.
	Samples bool `yaml:"samples"`
}

// Default returns the stock batch: Erdős–Rényi at 500, 1000 and 5000 nodes
// in every regime, m ∈ {3,4} for Barabási–Albert, 10 simulations each.
func Default() Config {
	regimes := make([]string, 0, 4)
	for _, r := range builder.AllRegimes() {
		regimes = append(regimes, r.String())
	}
	return Config{
		Model:          "e",
		Nodes:          []int{500, 1000, 5000},
		Regimes:        regimes,
		M:              []int{3, 4},
		Sims:           10,
		Seed:           1,
		Workers:        1,
		ReportFormat:   string(export.FormatText),
		DistancePolicy: metrics.ReachablePairs.String(),
		Wheel:          builder.WheelLinear.String(),
	}
}

// Load reads a YAML file over Default and validates the result. Unknown
// keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode is Load for an already opened reader. An empty document yields
// Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config.Decode: %w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and every named enum value.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, formatValidationError(err))
	}
	if c.ModelName() == simulation.ModelBarabasiAlbert && len(c.M) == 0 {
		return fmt.Errorf("%w: m is required for %s", ErrInvalid, simulation.ModelBarabasiAlbert)
	}
	if c.ModelName() == simulation.ModelErdosRenyi && len(c.P) == 0 && len(c.Regimes) == 0 {
		return fmt.Errorf("%w: p or regimes is required for %s", ErrInvalid, simulation.ModelErdosRenyi)
	}
	for _, s := range c.Regimes {
		if _, err := builder.ParseRegime(s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// formatValidationError renders validator errors one field at a time.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

// ModelName maps the short model flag to a simulation model name.
func (c Config) ModelName() string {
	switch strings.ToLower(c.Model) {
	case "b", "ba", simulation.ModelBarabasiAlbert:
		return simulation.ModelBarabasiAlbert
	}
	return simulation.ModelErdosRenyi
}

// OutPrefix returns Out, or "erdos_renyi" / "barabasi_albert" when empty.
func (c Config) OutPrefix() string {
	if c.Out != "" {
		return c.Out
	}
	if c.ModelName() == simulation.ModelBarabasiAlbert {
		return "barabasi_albert"
	}
	return "erdos_renyi"
}

// Format returns the parsed report format.
func (c Config) Format() (export.Format, error) {
	return export.ParseFormat(c.ReportFormat)
}

// Plans expands the grid into models, in the order nodes × (p | regime)
// for Erdős–Rényi and nodes × m for Barabási–Albert. Every model is
// validated.
func (c Config) Plans() ([]simulation.Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var out []simulation.Model
	switch c.ModelName() {
	case simulation.ModelBarabasiAlbert:
		wheel := builder.WheelLinear
		if c.Wheel == builder.WheelCumulative.String() {
			wheel = builder.WheelCumulative
		}
		for _, n := range c.Nodes {
			for _, m := range c.M {
				model := simulation.NewBarabasiAlbertNodes(n, m)
				model.Wheel = wheel
				out = append(out, model)
			}
		}
	default:
		for _, n := range c.Nodes {
			if len(c.P) > 0 {
				for _, p := range c.P {
					out = append(out, simulation.NewErdosRenyi(n, p))
				}
				continue
			}
			for _, s := range c.Regimes {
				r, _ := builder.ParseRegime(s)
				out = append(out, simulation.NewErdosRenyiRegime(n, r))
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: parameter grid is empty", ErrInvalid)
	}
	for _, m := range out {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return out, nil
}

// RunnerOptions translates the run-level settings into simulation options.
func (c Config) RunnerOptions(logger *zap.Logger) ([]simulation.Option, error) {
	policy, err := metrics.ParseDistancePolicy(c.DistancePolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return nil, fmt.Errorf("%w: workers=%d", ErrInvalid, c.Workers)
	}
	opts := []simulation.Option{
		simulation.WithSeed(c.Seed),
		simulation.WithWorkers(c.Workers),
		simulation.WithDistancePolicy(policy),
	}
	if logger != nil {
		opts = append(opts, simulation.WithLogger(logger))
	}
	return opts, nil
}
