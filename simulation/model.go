// SPDX-License-Identifier: MIT

package simulation

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/core"
)

// Model is a random-graph generator with immutable parameters.
type Model interface {
	// Name is a short identifier such as "erdos-renyi".
	Name() string
	// NodeCount is the node count of every generated graph.
	NodeCount() int
	// Validate reports out-of-range parameters.
	Validate() error
	// Generate samples one graph using rng. It must not retain rng.
	Generate(rng *rand.Rand) (*core.Graph, error)
	// Params renders the parameters for reports and file names.
	Params() map[string]string
}

// Model names.
const (
	ModelErdosRenyi     = "erdos-renyi"
	ModelBarabasiAlbert = "barabasi-albert"
)

// ErdosRenyiModel samples G(n,p). P is used verbatim unless FromRegime is
// set, in which case p = RegimeToProbability(Regime, N).
type ErdosRenyiModel struct {
	N          int
	P          float64
	Regime     builder.Regime
	FromRegime bool
	// Resolution overrides the uniform draw resolution when > 0.
	Resolution int
}

// NewErdosRenyi returns a model with an explicit edge probability.
func NewErdosRenyi(n int, p float64) *ErdosRenyiModel {
	return &ErdosRenyiModel{N: n, P: p}
}

// NewErdosRenyiRegime returns a model whose p follows a named regime.
func NewErdosRenyiRegime(n int, regime builder.Regime) *ErdosRenyiModel {
	return &ErdosRenyiModel{N: n, Regime: regime, FromRegime: true}
}

func (m *ErdosRenyiModel) Name() string   { return ModelErdosRenyi }
func (m *ErdosRenyiModel) NodeCount() int { return m.N }

// Probability returns the effective edge probability.
func (m *ErdosRenyiModel) Probability() (float64, error) {
	if m.FromRegime {
		return builder.RegimeToProbability(m.Regime, m.N)
	}
	return m.P, nil
}

func (m *ErdosRenyiModel) Validate() error {
	if m.N < builder.MinErdosRenyiNodes {
		return fmt.Errorf("%s: n=%d: %w", ModelErdosRenyi, m.N, builder.ErrTooFewVertices)
	}
	p, err := m.Probability()
	if err != nil {
		return fmt.Errorf("%s: %w", ModelErdosRenyi, err)
	}
	if !(p >= builder.MinProbability && p <= builder.MaxProbability) {
		return fmt.Errorf("%s: p=%g: %w", ModelErdosRenyi, p, builder.ErrInvalidProbability)
	}
	if m.Resolution < 0 {
		return fmt.Errorf("%s: resolution=%d: %w", ModelErdosRenyi, m.Resolution, ErrInvalidConfiguration)
	}
	return nil
}

func (m *ErdosRenyiModel) Generate(rng *rand.Rand) (*core.Graph, error) {
	p, err := m.Probability()
	if err != nil {
		return nil, err
	}
	opts := []builder.BuilderOption{builder.WithRand(rng)}
	if m.Resolution > 0 {
		opts = append(opts, builder.WithResolution(m.Resolution))
	}
	return builder.BuildGraph(opts, builder.ErdosRenyi(m.N, p))
}

func (m *ErdosRenyiModel) Params() map[string]string {
	out := map[string]string{"n": strconv.Itoa(m.N)}
	if p, err := m.Probability(); err == nil {
		out["p"] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	if m.FromRegime {
		out["regime"] = m.Regime.String()
	}
	return out
}

// BarabasiAlbertModel grows a preferential-attachment graph from a K_{M+1}
// seed over T steps, giving M+1+T nodes.
type BarabasiAlbertModel struct {
	M, T  int
	Wheel builder.WheelKind
}

// NewBarabasiAlbert returns a model using the linear roulette wheel.
func NewBarabasiAlbert(m, t int) *BarabasiAlbertModel {
	return &BarabasiAlbertModel{M: m, T: t}
}

// NewBarabasiAlbertNodes returns a model reaching n nodes in total, i.e.
// t = n - m - 1.
func NewBarabasiAlbertNodes(n, m int) *BarabasiAlbertModel {
	return &BarabasiAlbertModel{M: m, T: n - m - 1}
}

func (m *BarabasiAlbertModel) Name() string   { return ModelBarabasiAlbert }
func (m *BarabasiAlbertModel) NodeCount() int { return m.M + 1 + m.T }

func (m *BarabasiAlbertModel) Validate() error {
	if m.M < builder.MinAttachment {
		return fmt.Errorf("%s: m=%d: %w", ModelBarabasiAlbert, m.M, builder.ErrInvalidAttachment)
	}
	if m.T < builder.MinGrowthSteps {
		return fmt.Errorf("%s: t=%d: %w", ModelBarabasiAlbert, m.T, builder.ErrTooFewVertices)
	}
	if m.Wheel != builder.WheelLinear && m.Wheel != builder.WheelCumulative {
		return fmt.Errorf("%s: wheel %v: %w", ModelBarabasiAlbert, m.Wheel, ErrInvalidConfiguration)
	}
	return nil
}

func (m *BarabasiAlbertModel) Generate(rng *rand.Rand) (*core.Graph, error) {
	opts := []builder.BuilderOption{builder.WithRand(rng), builder.WithWheel(m.Wheel)}
	return builder.BuildGraph(opts, builder.BarabasiAlbert(m.M, m.T))
}

func (m *BarabasiAlbertModel) Params() map[string]string {
	return map[string]string{
		"m": strconv.Itoa(m.M),
		"t": strconv.Itoa(m.T),
		"n": strconv.Itoa(m.NodeCount()),
	}
}
