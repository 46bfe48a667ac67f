// SPDX-License-Identifier: MIT
// Package: matrix
//
// Matrix products.
//
// Mul delegates the arithmetic to gonum's mat.Dense, writing straight into the
// result buffer (gonum shares the slice it is given, stride == cols).
// gonum refuses zero-length dimensions, so empty shapes are resolved here
// before it is called: a product with any zero dimension is an all-zero
// (possibly empty) aRows×bCols matrix.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opMul     = "Mul"
	opMulDiag = "MulDiag"
)

// Mul returns the product a·b as a new Dense (a.Rows × b.Cols).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.r == 0 || a.c == 0 || b.c == 0 {
		return res, nil // empty or zero-inner product: all zeros
	}

	ga := mat.NewDense(a.r, a.c, a.data)
	gb := mat.NewDense(b.r, b.c, b.data)
	out := mat.NewDense(res.r, res.c, res.data)
	out.Mul(ga, gb)

	return res, nil
}

// MulDiag returns a·diag(v): column j of a scaled by v[j].
// This is how a per-unit vector is relayed through a connectivity matrix.
// Complexity: O(r*c).
func MulDiag(a *Dense, v []float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulDiag, err)
	}
	res := a.Copy()
	if err := res.ScaleCols(v); err != nil {
		return nil, matrixErrorf(opMulDiag, err)
	}

	return res, nil
}
