// SPDX-License-Identifier: MIT

package connectivity_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/glomnet/connectivity"
	"github.com/katalvlaran/glomnet/matrix"
	"github.com/katalvlaran/glomnet/sampling"
	"github.com/stretchr/testify/require"
)

// TestBernoulliMaskValidation checks the documented error priority.
func TestBernoulliMaskValidation(t *testing.T) {
	t.Parallel()

	rng := sampling.NewRand(1)
	tests := []struct {
		name       string
		rows, cols int
		p          float64
		nilRand    bool
		want       error
	}{
		{"negative-rows", -1, 2, 0.5, false, connectivity.ErrNegativeSize},
		{"p-below", 2, 2, -0.1, false, connectivity.ErrInvalidProbability},
		{"p-above", 2, 2, 1.1, false, connectivity.ErrInvalidProbability},
		{"p-nan", 2, 2, math.NaN(), false, connectivity.ErrInvalidProbability},
		{"nil-rand", 2, 2, 0.5, true, connectivity.ErrNeedRandSource},
	}
	for _, tc := range tests {
		r := rng
		if tc.nilRand {
			r = nil
		}
		_, err := connectivity.BernoulliMask(r, tc.rows, tc.cols, tc.p)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestBernoulliMaskExtremes(t *testing.T) {
	t.Parallel()

	none, err := connectivity.BernoulliMask(sampling.NewRand(1), 4, 6, 0)
	require.NoError(t, err)
	require.Equal(t, 0, none.Count())

	all, err := connectivity.BernoulliMask(sampling.NewRand(1), 4, 6, 1)
	require.NoError(t, err)
	require.Equal(t, 24, all.Count())

	empty, err := connectivity.BernoulliMask(sampling.NewRand(1), 0, 6, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 6, empty.Cols())
}

func TestBernoulliMaskDensityAndReproducibility(t *testing.T) {
	t.Parallel()

	a, err := connectivity.BernoulliMask(sampling.NewRand(77), 100, 100, 0.3)
	require.NoError(t, err)
	b, err := connectivity.BernoulliMask(sampling.NewRand(77), 100, 100, 0.3)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.InDelta(t, 3000, a.Count(), 200)
}

func TestKeepOneInputPerRow(t *testing.T) {
	t.Parallel()

	mask, err := connectivity.BernoulliMask(sampling.NewRand(3), 20, 8, 0.5)
	require.NoError(t, err)
	before := mask.Copy()

	require.NoError(t, connectivity.KeepOneInputPerRow(sampling.NewRand(4), mask))
	for i, c := range mask.RowCounts() {
		prev := before.RowCounts()[i]
		if prev == 0 {
			require.Equal(t, 0, c)
			continue
		}
		require.Equal(t, 1, c, "row %d", i)
		for j := 0; j < mask.Cols(); j++ {
			on, _ := mask.At(i, j)
			was, _ := before.At(i, j)
			if on {
				require.True(t, was, "kept entry must have been active")
			}
		}
	}

	require.ErrorIs(t, connectivity.KeepOneInputPerRow(nil, mask), connectivity.ErrNeedRandSource)
	var nilMask *matrix.Mask
	require.ErrorIs(t, connectivity.KeepOneInputPerRow(sampling.NewRand(1), nilMask), matrix.ErrNilMatrix)
}
