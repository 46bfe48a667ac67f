// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/glomnet/matrix"
	"github.com/stretchr/testify/require"
)

// TestNormalizeRowsZeroRow: zero-sum rows stay all-zero and no NaN appears.
func TestNormalizeRowsZeroRow(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 2, []float64{
		1, 3,
		0, 0,
		2, 2,
	})
	sums, err := matrix.NormalizeRows(m)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 0, 4}, sums)
	require.Equal(t, []float64{0.25, 0.75, 0, 0, 0.5, 0.5}, m.RawData())
	for _, v := range m.RawData() {
		require.False(t, math.IsNaN(v))
	}

	after, err := matrix.RowSums(m)
	require.NoError(t, err)
	require.InDelta(t, 1.0, after[0], 1e-12)
	require.Equal(t, 0.0, after[1])
}

func TestNormalizeRowsNil(t *testing.T) {
	t.Parallel()

	var m *matrix.Dense
	_, err := matrix.NormalizeRows(m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestOffDiagonalCounters(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 3, []float64{
		5, 1, 0,
		0, 5, 2,
		3, 0, 0,
	})
	nz, err := m.OffDiagonalNonZero()
	require.NoError(t, err)
	require.Equal(t, 3, nz)

	zeros, err := m.OffDiagonalZeros()
	require.NoError(t, err)
	require.Equal(t, 3, zeros)
	require.Equal(t, 5, m.NonZero())
	require.Equal(t, 0.0, m.Min())
	require.Equal(t, 5.0, m.Max())

	_, err = MustDense(t, 2, 3, nil).OffDiagonalNonZero()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
