// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/glomnet/matrix"
	"github.com/stretchr/testify/require"
)

// TestMaskBasics covers allocation, bounds and degree counters.
func TestMaskBasics(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewMask(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m := MustMask(t, 2, 3, []int{
		1, 0, 1,
		0, 1, 1,
	})
	require.Equal(t, 4, m.Count())
	require.Equal(t, []int{2, 2}, m.RowCounts())
	require.Equal(t, []int{1, 1, 2}, m.ColCounts())

	on, err := m.At(1, 1)
	require.NoError(t, err)
	require.True(t, on)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, true), matrix.ErrOutOfRange)

	require.Equal(t, "[1, 0, 1]\n[0, 1, 1]\n", m.String())
}

// TestMaskDenseAndCopy checks 0/1 conversion and deep copies.
func TestMaskDenseAndCopy(t *testing.T) {
	t.Parallel()

	m := MustMask(t, 2, 2, []int{1, 0, 0, 1})
	d := m.Dense()
	require.Equal(t, []float64{1, 0, 0, 1}, d.RawData())

	cp := m.Copy()
	require.True(t, cp.Equal(m))
	require.NoError(t, cp.Set(0, 1, true))
	require.False(t, cp.Equal(m))
	require.Equal(t, 2, m.Count())
}
