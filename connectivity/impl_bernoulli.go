// SPDX-License-Identifier: MIT
// Package: connectivity
//
// impl_bernoulli.go: independent-probability masks.
//
// Contract:
//   - rows, cols ≥ 0 (else ErrNegativeSize); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng must be non-nil, even for p ∈ {0,1}: RNG consumption is one
//     Float64 per entry regardless of p.
//   - Entry (i,j) is connected iff rng.Float64() < p.
//
// Complexity:
//   - Time O(rows*cols) trials. Space O(rows*cols) for the mask.
//
// Determinism:
//   - Stable trial order: i asc, j asc.

package connectivity

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/glomnet/matrix"
)

const (
	methodBernoulliMask      = "BernoulliMask"
	methodKeepOneInputPerRow = "KeepOneInputPerRow"
	probMin                  = 0.0
	probMax                  = 1.0
)

// BernoulliMask returns a rows×cols mask where each pair is connected
// independently with probability p.
func BernoulliMask(rng *rand.Rand, rows, cols int, p float64) (*matrix.Mask, error) {
	// 1) Validate parameters early (no RNG consumption on invalid input).
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s: shape %dx%d: %w", methodBernoulliMask, rows, cols, ErrNegativeSize)
	}
	if !(p >= probMin && p <= probMax) { // also rejects NaN
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodBernoulliMask, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodBernoulliMask, ErrNeedRandSource)
	}

	// 2) Allocate and run one trial per entry in row-major order.
	mask, err := matrix.NewMask(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBernoulliMask, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if rng.Float64() < p {
				if err = mask.Set(i, j, true); err != nil {
					return nil, fmt.Errorf("%s: %w", methodBernoulliMask, err)
				}
			}
		}
	}

	return mask, nil
}

// KeepOneInputPerRow reduces every row with two or more active entries to a
// single active entry chosen uniformly among them. Rows with zero or one
// active entry are left as they are and consume no randomness.
// The mask is modified in place.
//
// Complexity: O(rows*cols).
func KeepOneInputPerRow(rng *rand.Rand, mask *matrix.Mask) error {
	if err := matrix.ValidateNotNil(mask); err != nil {
		return fmt.Errorf("%s: %w", methodKeepOneInputPerRow, err)
	}
	if rng == nil {
		return fmt.Errorf("%s: %w", methodKeepOneInputPerRow, ErrNeedRandSource)
	}

	rows, cols := mask.Rows(), mask.Cols()
	active := make([]int, 0, cols)
	for i := 0; i < rows; i++ {
		active = active[:0]
		for j := 0; j < cols; j++ {
			if on, _ := mask.At(i, j); on {
				active = append(active, j)
			}
		}
		if len(active) < 2 {
			continue
		}
		keep := active[rng.IntN(len(active))]
		for _, j := range active {
			if j != keep {
				_ = mask.Set(i, j, false) // indices come from the scan above
			}
		}
	}

	return nil
}
