// SPDX-License-Identifier: MIT

package connectivity_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/glomnet/connectivity"
	"github.com/katalvlaran/glomnet/matrix"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	conn, err := matrix.NewDenseFrom(2, 3, []float64{0.5, 0.5, 0, 0, 0, 0})
	require.NoError(t, err)
	up, err := matrix.NewDenseFrom(3, 3, []float64{
		0, 2, 4,
		6, 0, 8,
		1, 1, 0,
	})
	require.NoError(t, err)

	out, err := connectivity.Compose(conn, up)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 6, 0, 0, 0}, out.RawData())

	cols, err := connectivity.ComposeColumns(conn, []float64{2, 4, 8})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 0, 0, 0, 0}, cols.RawData())

	_, err = connectivity.Compose(conn, conn)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRowAverageEmptyRow: rows without connections average to 0, not NaN.
func TestRowAverageEmptyRow(t *testing.T) {
	t.Parallel()

	conn, err := matrix.NewDenseFrom(2, 3, []float64{0.25, 0.75, 0, 0, 0, 0})
	require.NoError(t, err)
	mask, err := matrix.NewMask(2, 3)
	require.NoError(t, err)
	require.NoError(t, mask.Set(0, 0, true))
	require.NoError(t, mask.Set(0, 1, true))

	avg, err := connectivity.RowAverage(conn, mask, []float64{4, 8, 100}, 2)
	require.NoError(t, err)
	// (0.25·2·4 + 0.75·2·8) / 2 = (2 + 12) / 2
	require.InDelta(t, 7.0, avg[0], 1e-12)
	require.Equal(t, 0.0, avg[1])
	for _, v := range avg {
		require.False(t, math.IsNaN(v))
	}

	_, err = connectivity.RowAverage(conn, mask, []float64{1}, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
