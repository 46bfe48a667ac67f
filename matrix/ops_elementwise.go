// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place element-wise and broadcast kernels on *Dense used by the
//     connectivity generators: clamping, masking, diagonal removal, row/column
//     scaling and Hadamard products.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1, or i→j for broadcasts).
//   - Operate directly on the flat row-major buffer; no allocations.
//   - Shape violations are reported before any element is touched, so a failed
//     call never leaves a half-updated matrix.

package matrix

import (
	"math"
)

const (
	opClampBelow   = "ClampBelow"
	opClampAbove   = "ClampAbove"
	opMaskBy       = "MaskBy"
	opZeroDiagonal = "ZeroDiagonal"
	opScaleRows    = "ScaleRows"
	opScaleCols    = "ScaleCols"
	opScale        = "Scale"
	opMulElem      = "MulElem"
)

// ClampBelow replaces every entry below lo with lo (lo must be finite).
// With lo = 0 this is the rectification used to forbid negative weights.
// Time: O(r*c). Space: O(1).
func (m *Dense) ClampBelow(lo float64) error {
	if math.IsNaN(lo) || math.IsInf(lo, 0) {
		return matrixErrorf(opClampBelow, ErrNaNInf)
	}
	for idx, v := range m.data {
		if v < lo {
			m.data[idx] = lo
		}
	}

	return nil
}

// ClampAbove replaces every entry above hi with hi (hi must be finite).
// Models a hard weight ceiling.
// Time: O(r*c). Space: O(1).
func (m *Dense) ClampAbove(hi float64) error {
	if math.IsNaN(hi) || math.IsInf(hi, 0) {
		return matrixErrorf(opClampAbove, ErrNaNInf)
	}
	for idx, v := range m.data {
		if v > hi {
			m.data[idx] = hi
		}
	}

	return nil
}

// MaskBy zeroes every entry whose mask bit is false, so unconnected pairs
// stay exactly 0 regardless of the value previously stored.
// Time: O(r*c). Space: O(1).
func (m *Dense) MaskBy(mask *Mask) error {
	if err := ValidateMaskFor(m, mask); err != nil {
		return matrixErrorf(opMaskBy, err)
	}
	for idx, on := range mask.bits {
		if !on {
			m.data[idx] = 0
		}
	}

	return nil
}

// ZeroDiagonal sets m[i,i] = 0 for every i (no self-connections).
// Returns ErrNonSquare for rectangular input.
// Time: O(n). Space: O(1).
func (m *Dense) ZeroDiagonal() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opZeroDiagonal, err)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 0
	}

	return nil
}

// ScaleRows computes m[i,j] *= scale[i] (per-destination gain).
// Time: O(r*c). Space: O(1).
func (m *Dense) ScaleRows(scale []float64) error {
	if err := ValidateVecLen(scale, m.r); err != nil {
		return matrixErrorf(opScaleRows, err)
	}
	var i, j, base int
	var sf float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		sf = scale[i] // row scale once per row
		for j = 0; j < m.c; j++ {
			m.data[base+j] *= sf
		}
	}

	return nil
}

// ScaleCols computes m[i,j] *= scale[j] (per-source gain); equivalent to m·diag(scale).
// Time: O(r*c). Space: O(1).
func (m *Dense) ScaleCols(scale []float64) error {
	if err := ValidateVecLen(scale, m.c); err != nil {
		return matrixErrorf(opScaleCols, err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] *= scale[j]
		}
	}

	return nil
}

// Scale multiplies every entry by alpha (finite).
// Time: O(r*c). Space: O(1).
func (m *Dense) Scale(alpha float64) error {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return matrixErrorf(opScale, ErrNaNInf)
	}
	for idx := range m.data {
		m.data[idx] *= alpha
	}

	return nil
}

// MulElem computes the Hadamard product m ∘ o in place.
// Time: O(r*c). Space: O(1).
func (m *Dense) MulElem(o *Dense) error {
	if err := ValidateNotNil(o); err != nil {
		return matrixErrorf(opMulElem, err)
	}
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opMulElem, err)
	}
	for idx := range m.data {
		m.data[idx] *= o.data[idx]
	}

	return nil
}
