// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/glomnet/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroArea verifies that empty populations produce empty, correctly shaped matrices.
func TestNewDenseZeroArea(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 0}, {0, 4}, {3, 0}} {
		m, err := matrix.NewDense(tc.r, tc.c)
		require.NoError(t, err)
		r, c := m.Shape()
		require.Equal(t, tc.r, r)
		require.Equal(t, tc.c, c)
		require.Empty(t, m.RawData())
		require.Equal(t, 0, m.NonZero())
	}
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2, nil)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias of ErrOutOfRange
}

// TestSetRejectsNaNInf checks the numeric policy of Set and Apply.
func TestSetRejectsNaNInf(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2, nil)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	err := m.Apply(func(i, j int, v float64) float64 { return 1 / v }) // 1/0 = +Inf
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewDenseFromBadData checks length validation and copy semantics.
func TestNewDenseFromBadData(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadData)

	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	src[0] = 99
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v, "NewDenseFrom must copy its input")
}

// TestCopyIndependence ensures Clone()/Copy() do not share storage.
func TestCopyIndependence(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2, []float64{1, 0, 0, 2})
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, 3))

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	cp := m.Copy()
	require.True(t, cp.Equal(m))
	require.NoError(t, cp.Set(1, 1, 5))
	require.False(t, cp.Equal(m))
}

// TestRowAndDo verifies row extraction and row-major traversal order.
func TestRowAndDo(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 4
	})
	require.Equal(t, []float64{1, 2, 3, 4}, seen)
}

// TestString renders a small matrix.
func TestString(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2, []float64{1, 2.5, 0, 4})
	require.Equal(t, "[1, 2.5]\n[0, 4]\n", m.String())
}
