// SPDX-License-Identifier: MIT

package circuit_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/glomnet/circuit"
	"github.com/katalvlaran/glomnet/connectivity"
	"github.com/katalvlaran/glomnet/sampling"
	"github.com/stretchr/testify/require"
)

func TestDefaultParamsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, circuit.DefaultParams().Validate())
}

// TestValidatePreconditions: every violation matches ErrInvalidParams and its cause,
// and the message names the field.
func TestValidatePreconditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edit  func(p *circuit.Params)
		cause error
		field string
	}{
		{"negative-kenyon", func(p *circuit.Params) { p.Populations.Kenyon = -1 },
			connectivity.ErrNegativeSize, "populations.kenyon"},
		{"p2k-fraction", func(p *circuit.Params) { p.P2K.Fraction = 1.5 },
			connectivity.ErrInvalidProbability, "p2k.fraction"},
		{"k2e-nan-fraction", func(p *circuit.Params) { p.K2E.Fraction = math.NaN() },
			connectivity.ErrInvalidProbability, "k2e.fraction"},
		{"f2r-fanout-negative", func(p *circuit.Params) { p.F2R.FanOut = -2 },
			connectivity.ErrInvalidFanOut, "f2r.fan_out"},
		{"f2r-fanout-too-large", func(p *circuit.Params) {
			p.Populations.Glomeruli = 3
			p.F2R.FanOut = 4
		}, connectivity.ErrCapacity, "f2r.fan_out"},
		{"f2r-capacity-too-small", func(p *circuit.Params) {
			p.Populations.Features = 10
			p.Populations.Glomeruli = 4
			p.F2R.FanOut = 2
			p.F2R.Capacity = 4
		}, connectivity.ErrCapacity, "f2r.capacity"},
		{"f2r-fanout-with-one-input", func(p *circuit.Params) {
			p.F2R.FanOut = 1
			p.F2R.OneInputPerRow = true
		}, connectivity.ErrInvalidFanOut, "f2r.one_input_per_row"},
		{"p2k-negative-std", func(p *circuit.Params) { p.P2K.Std = -0.1 },
			sampling.ErrNegativeStd, "p2k"},
		{"pi2k-negative-cap", func(p *circuit.Params) { p.PI2K.Cap = -1 },
			sampling.ErrNegativeCeiling, "pi2k.cap"},
		{"l2g-fill", func(p *circuit.Params) { p.L2G.Fill = -0.2 },
			connectivity.ErrInvalidProbability, "l2g.fill"},
		{"gaba-inf", func(p *circuit.Params) { p.GABASens.Std = math.Inf(1) },
			sampling.ErrNonFinite, "gaba_sens"},
		{"r2p-negative-std", func(p *circuit.Params) { p.R2P.Std = -1 },
			sampling.ErrNegativeStd, "r2p"},
		{"gamma-zero-std", func(p *circuit.Params) { p.NoiseR = circuit.Noise{Family: sampling.FamilyGamma, Mean: 5} },
			sampling.ErrNonPositiveStd, "noise_r"},
		{"gamma-zero-mean", func(p *circuit.Params) { p.RSpont = circuit.Noise{Family: sampling.FamilyGamma, Std: 1} },
			sampling.ErrNonPositiveMean, "r_spont"},
		{"unknown-family", func(p *circuit.Params) { p.NoiseK.Family = "uniform" },
			sampling.ErrUnknownFamily, "noise_k"},
		{"octo2pi-nan", func(p *circuit.Params) { p.Octo2PIMult = math.NaN() },
			sampling.ErrNonFinite, "octo2pi_mult"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := circuit.DefaultParams()
			tc.edit(&p)

			err := p.Validate()
			require.ErrorIs(t, err, circuit.ErrInvalidParams)
			require.ErrorIs(t, err, tc.cause)
			require.Contains(t, err.Error(), tc.field)

			m, err := circuit.Build(p, circuit.WithSeed(1))
			require.Nil(t, m, "no partial model")
			require.True(t, errors.Is(err, circuit.ErrInvalidParams))
		})
	}
}

// TestValidateRoundRobinSkipsEmptySources: a fan-out on a projection without
// sources is not a capacity problem.
func TestValidateRoundRobinSkipsEmptySources(t *testing.T) {
	t.Parallel()

	p := circuit.DefaultParams()
	p.Populations.PI = 0
	p.PI2K = circuit.Projection{FanOut: 3}
	require.NoError(t, p.Validate())
}
