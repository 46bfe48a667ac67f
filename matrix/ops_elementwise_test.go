// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/glomnet/matrix"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 1, 4, []float64{-2, -0.5, 0.5, 7})
	require.NoError(t, m.ClampBelow(0))
	require.Equal(t, []float64{0, 0, 0.5, 7}, m.RawData())

	require.NoError(t, m.ClampAbove(5))
	require.Equal(t, []float64{0, 0, 0.5, 5}, m.RawData())

	require.ErrorIs(t, m.ClampBelow(math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.ClampAbove(math.Inf(1)), matrix.ErrNaNInf)
}

func TestMaskBy(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2, []float64{1, 2, 3, 4})
	mask := MustMask(t, 2, 2, []int{1, 0, 0, 1})
	require.NoError(t, m.MaskBy(mask))
	require.Equal(t, []float64{1, 0, 0, 4}, m.RawData())

	wrong := MustMask(t, 2, 3, []int{1, 1, 1, 1, 1, 1})
	require.ErrorIs(t, m.MaskBy(wrong), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.MaskBy(nil), matrix.ErrNilMatrix)
}

func TestZeroDiagonal(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, m.ZeroDiagonal())
	require.Equal(t, []float64{0, 2, 3, 4, 0, 6, 7, 8, 0}, m.RawData())

	rect := MustDense(t, 2, 3, nil)
	require.ErrorIs(t, rect.ZeroDiagonal(), matrix.ErrNonSquare)
}

func TestScaleRowsCols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rows  bool
		scale []float64
		want  []float64
		err   error
	}{
		{"rows", true, []float64{2, 0.5}, []float64{2, 4, 1.5, 2}, nil},
		{"cols", false, []float64{2, 0.5}, []float64{2, 1, 6, 2}, nil},
		{"rows-bad-len", true, []float64{1}, []float64{1, 2, 3, 4}, matrix.ErrDimensionMismatch},
		{"cols-bad-len", false, []float64{1, 2, 3}, []float64{1, 2, 3, 4}, matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := MustDense(t, 2, 2, []float64{1, 2, 3, 4})
			var err error
			if tc.rows {
				err = m.ScaleRows(tc.scale)
			} else {
				err = m.ScaleCols(tc.scale)
			}
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, m.RawData(), "failed calls must leave the matrix untouched")
		})
	}
}

func TestScaleAndMulElem(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, m.Scale(0.5))
	require.Equal(t, []float64{0.5, 1, 1.5, 2}, m.RawData())

	o := MustDense(t, 2, 2, []float64{2, 0, 1, 2})
	require.NoError(t, m.MulElem(o))
	require.Equal(t, []float64{1, 0, 1.5, 4}, m.RawData())

	require.ErrorIs(t, m.MulElem(MustDense(t, 1, 2, nil)), matrix.ErrDimensionMismatch)
}
