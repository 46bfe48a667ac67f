// SPDX-License-Identifier: MIT

package sampling_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/glomnet/sampling"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestGammaParams(t *testing.T) {
	t.Parallel()

	k, theta, err := sampling.GammaParams(6, 3)
	require.NoError(t, err)
	require.InDelta(t, 4.0, k, 1e-12)
	require.InDelta(t, 1.5, theta, 1e-12)
	require.InDelta(t, 6.0, k*theta, 1e-12)
	require.InDelta(t, 9.0, k*theta*theta, 1e-12)
}

// TestGammaParamsPreconditions covers the std <= 0 and mean <= 0 scenarios.
func TestGammaParamsPreconditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mean, std float64
		want      error
	}{
		{"zero-std", 5, 0, sampling.ErrNonPositiveStd},
		{"negative-std", 5, -1, sampling.ErrNonPositiveStd},
		{"zero-mean", 0, 1, sampling.ErrNonPositiveMean},
		{"negative-mean", -2, 1, sampling.ErrNonPositiveMean},
		{"inf", math.Inf(1), 1, sampling.ErrNonFinite},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := sampling.GammaParams(tc.mean, tc.std)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := sampling.GammaVector(sampling.NewRand(1), 10, 5, 0)
	require.ErrorIs(t, err, sampling.ErrNonPositiveStd)
}

// TestGammaVectorMoments: sample mean and std converge within 5% at 10,000 draws.
func TestGammaVectorMoments(t *testing.T) {
	t.Parallel()

	tests := []struct{ mean, std float64 }{
		{3, 1},
		{5, 2},
		{0.5, 0.25},
	}
	for _, tc := range tests {
		xs, err := sampling.GammaVector(sampling.NewRand(2024), 10000, tc.mean, tc.std)
		require.NoError(t, err)
		m, s := stat.MeanStdDev(xs, nil)
		require.InEpsilon(t, tc.mean, m, 0.05)
		require.InEpsilon(t, tc.std, s, 0.05)
		for _, x := range xs {
			require.GreaterOrEqual(t, x, 0.0)
		}
	}
}

func TestNoiseVector(t *testing.T) {
	t.Parallel()

	t.Run("gaussian-base", func(t *testing.T) {
		t.Parallel()
		v, err := sampling.NoiseVector(sampling.NewRand(4), 50, sampling.Noise{Mean: 1, Std: 0, Base: 2})
		require.NoError(t, err)
		for _, x := range v {
			require.Equal(t, 3.0, x)
		}
	})

	t.Run("gamma-ceiling", func(t *testing.T) {
		t.Parallel()
		cfg := sampling.Noise{Family: sampling.FamilyGamma, Mean: 5, Std: 5, Ceiling: 6}
		v, err := sampling.NoiseVector(sampling.NewRand(4), 2000, cfg)
		require.NoError(t, err)
		zeros := 0
		for _, x := range v {
			require.LessOrEqual(t, x, 6.0)
			if x == 0 {
				zeros++
			}
		}
		require.Positive(t, zeros, "outliers above the ceiling are zeroed")
	})

	t.Run("unknown-family", func(t *testing.T) {
		t.Parallel()
		_, err := sampling.NoiseVector(sampling.NewRand(4), 3, sampling.Noise{Family: "poisson", Mean: 1, Std: 1})
		require.ErrorIs(t, err, sampling.ErrUnknownFamily)
	})

	t.Run("gamma-std-zero", func(t *testing.T) {
		t.Parallel()
		_, err := sampling.NoiseVector(sampling.NewRand(4), 3, sampling.Noise{Family: sampling.FamilyGamma, Mean: 5})
		require.ErrorIs(t, err, sampling.ErrNonPositiveStd)
	})
}
