// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and validators.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/glomnet/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense allocates an r×c *Dense filled from data (row-major) or fails the test.
// A nil data slice yields an all-zero matrix.
func MustDense(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	if data == nil {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)

		return m
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// MustMask builds an r×c mask from a row-major 0/1 pattern.
func MustMask(t *testing.T, r, c int, pattern []int) *matrix.Mask {
	t.Helper()
	require.Len(t, pattern, r*c)
	m, err := matrix.NewMask(r, c)
	require.NoError(t, err)
	for idx, v := range pattern {
		require.NoError(t, m.Set(idx/c, idx%c, v != 0))
	}

	return m
}
