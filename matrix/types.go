// SPDX-License-Identifier: MIT

// Package matrix: shared interfaces.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Shaped is implemented by anything with a destination × source shape
// (Dense, Mask). Validators accept it so masks and weights can be compared.
type Shaped interface {
	Rows() int
	Cols() int
}

// DefaultValidateNaNInf is the numeric policy of newly allocated Dense
// matrices: Set and Apply reject NaN and ±Inf.
const DefaultValidateNaNInf = true
