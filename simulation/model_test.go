// SPDX-License-Identifier: MIT

package simulation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErdosRenyiModel(t *testing.T) {
	m := simulation.NewErdosRenyiRegime(100, builder.Critical)
	require.NoError(t, m.Validate())
	p, err := m.Probability()
	require.NoError(t, err)
	assert.InDelta(t, 0.01, p, 1e-15)
	assert.Equal(t, map[string]string{"n": "100", "p": "0.01", "regime": "critical"}, m.Params())
	assert.Equal(t, 100, m.NodeCount())

	g, err := m.Generate(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 100, g.NodeCount())

	explicit := simulation.NewErdosRenyi(5, 0.25)
	assert.Equal(t, map[string]string{"n": "5", "p": "0.25"}, explicit.Params())
	assert.Equal(t, simulation.ModelErdosRenyi, explicit.Name())
}

func TestBarabasiAlbertModel(t *testing.T) {
	m := simulation.NewBarabasiAlbertNodes(500, 3)
	assert.Equal(t, 496, m.T)
	assert.Equal(t, 500, m.NodeCount())
	assert.Equal(t, map[string]string{"m": "3", "t": "496", "n": "500"}, m.Params())
	assert.Equal(t, simulation.ModelBarabasiAlbert, m.Name())

	bad := &simulation.BarabasiAlbertModel{M: 2, T: 3, Wheel: builder.WheelKind(9)}
	assert.ErrorIs(t, bad.Validate(), simulation.ErrInvalidConfiguration)

	g, err := simulation.NewBarabasiAlbert(2, 10).Generate(rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	assert.Equal(t, 13, g.NodeCount())
	assert.Equal(t, 3+2*10, g.EdgeCount())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", simulation.Idle.String())
	assert.Equal(t, "finalized", simulation.Finalized.String())
	assert.Equal(t, "State(9)", simulation.State(9).String())
}
