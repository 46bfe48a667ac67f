// SPDX-License-Identifier: MIT
// Package: matrix
//
// Row statistics, sparsity counters and row normalization.
//
// Policy:
//   - Zero-sum rows are detected explicitly and left untouched (all-zero)
//     during normalization, so no NaN/Inf can be produced.
//   - Off-diagonal counters require a square matrix.

package matrix

import (
	"gonum.org/v1/gonum/floats"
)

const (
	opRowSums       = "RowSums"
	opNormalizeRows = "NormalizeRows"
	opOffDiagonal   = "OffDiagonal"
)

// RowSums returns Σ_j m[i,j] for every row i.
// Complexity: O(r*c) time, O(r) space.
func RowSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		sums[i] = floats.Sum(m.data[i*m.c : (i+1)*m.c])
	}

	return sums, nil
}

// NormalizeRows rescales every row with a positive sum so that it sums to 1.
// Rows whose sum is zero (no incoming connection) are skipped and remain
// all-zero. Returns the pre-normalization row sums.
//
// Complexity: O(r*c) time, O(r) space.
func NormalizeRows(m *Dense) ([]float64, error) {
	sums, err := RowSums(m)
	if err != nil {
		return nil, matrixErrorf(opNormalizeRows, err)
	}
	for i, s := range sums {
		if s <= 0 {
			continue // nothing to normalize; avoid 0/0
		}
		floats.Scale(1/s, m.data[i*m.c:(i+1)*m.c])
	}

	return sums, nil
}

// NonZero returns the number of entries different from zero.
// Complexity: O(r*c).
func (m *Dense) NonZero() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}

	return n
}

// OffDiagonalNonZero counts non-zero entries with i != j (square only).
// Complexity: O(n²).
func (m *Dense) OffDiagonalNonZero() (int, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opOffDiagonal, err)
	}
	n := 0
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if i != j && m.data[base+j] != 0 {
				n++
			}
		}
	}

	return n, nil
}

// OffDiagonalZeros counts zero entries with i != j (square only).
// Complexity: O(n²).
func (m *Dense) OffDiagonalZeros() (int, error) {
	nz, err := m.OffDiagonalNonZero()
	if err != nil {
		return 0, err
	}

	return m.r*m.r - m.r - nz, nil
}

// Min returns the smallest entry, or 0 for an empty matrix.
func (m *Dense) Min() float64 {
	if len(m.data) == 0 {
		return 0
	}

	return floats.Min(m.data)
}

// Max returns the largest entry, or 0 for an empty matrix.
func (m *Dense) Max() float64 {
	if len(m.data) == 0 {
		return 0
	}

	return floats.Max(m.data)
}
