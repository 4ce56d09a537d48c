// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/netsim/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegimeToProbability(t *testing.T) {
	const n = 1000
	tests := []struct {
		regime builder.Regime
		want   float64
	}{
		{builder.SubCritical, 0.6 / n},
		{builder.Critical, 1.0 / n},
		{builder.SuperCritical, 3.0 / n},
		{builder.Connected, 1.6 * math.Log(n) / n},
	}
	for _, tc := range tests {
		t.Run(tc.regime.String(), func(t *testing.T) {
			p, err := builder.RegimeToProbability(tc.regime, n)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, p, 1e-15)
		})
	}

	_, err := builder.RegimeToProbability(builder.Critical, 0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RegimeToProbability(builder.Regime(-1), 10)
	assert.ErrorIs(t, err, builder.ErrUnknownRegime)
}

// TestRegimeToProbability_Domain checks p ∈ [0,1] for small n.
func TestRegimeToProbability_Domain(t *testing.T) {
	for n := 1; n <= 64; n++ {
		for _, r := range builder.AllRegimes() {
			p, err := builder.RegimeToProbability(r, n)
			require.NoError(t, err)
			assert.True(t, p >= 0 && p <= 1, "regime %v n=%d p=%g", r, n, p)
		}
	}
}

func TestParseRegime(t *testing.T) {
	tests := map[string]builder.Regime{
		"sub-critical":   builder.SubCritical,
		"SubCritical":    builder.SubCritical,
		"0":              builder.SubCritical,
		"critical":       builder.Critical,
		"super_critical": builder.SuperCritical,
		"super":          builder.SuperCritical,
		" connected ":    builder.Connected,
		"3":              builder.Connected,
	}
	for in, want := range tests {
		got, err := builder.ParseRegime(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := builder.ParseRegime("dense")
	assert.ErrorIs(t, err, builder.ErrUnknownRegime)

	assert.Equal(t, "super-critical", builder.SuperCritical.String())
	assert.Equal(t, "Regime(8)", builder.Regime(8).String())
}
