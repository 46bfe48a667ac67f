// SPDX-License-Identifier: MIT
// Package: connectivity
//
// impl_lateral.go: lateral template with explicit sparsity targeting.
//
// Implementation:
//   - Stage 1: draw the full N×N Normal(mean, std) matrix (row-major), clamp
//     negatives to 0.
//   - Stage 2: zero the diagonal (no self-inhibition).
//   - Stage 3: TargetFill removes exactly
//     deficit = floor((1-fill)·(N²-N)) - (off-diagonal zeros already present)
//     non-zero off-diagonal entries, chosen uniformly without replacement.
//     Candidates are the flat row-major indices of the non-zero
//     off-diagonal entries; selection is a partial Fisher–Yates pass.
//
// When clamping already produced more zeros than the target, deficit ≤ 0
// and nothing is removed: entries are never added back.

package connectivity

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/glomnet/matrix"
	"github.com/katalvlaran/glomnet/sampling"
)

const (
	methodLateral    = "Lateral"
	methodTargetFill = "TargetFill"
	methodModulate   = "Modulate"

	// fillEpsilon absorbs float error in (1-fill)·(N²-N) before flooring,
	// e.g. (1-0.6)·20 = 7.999999999999999.
	fillEpsilon = 1e-9
)

// Lateral returns an n×n template: Normal(mean, std) magnitudes, zero
// diagonal, off-diagonal fill reduced to fill (see file header).
func Lateral(rng *rand.Rand, n int, mean, std, fill float64) (*matrix.Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodLateral, n, ErrNegativeSize)
	}
	if !(fill >= probMin && fill <= probMax) {
		return nil, fmt.Errorf("%s: fill=%.6f: %w", methodLateral, fill, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodLateral, ErrNeedRandSource)
	}

	m, err := sampling.Magnitudes(rng, n, n, mean, std)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLateral, err)
	}
	if err = m.ZeroDiagonal(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodLateral, err)
	}
	if _, err = TargetFill(rng, m, fill); err != nil {
		return nil, fmt.Errorf("%s: %w", methodLateral, err)
	}

	return m, nil
}

// TargetFill zeroes non-zero off-diagonal entries of the square matrix m
// until exactly floor((1-fill)·(N²-N)) off-diagonal entries are zero, so the
// off-diagonal fill is fill within one entry. A matrix that already has at
// least that many zeros is left unchanged. It returns the number of entries
// removed. The diagonal is not inspected or changed.
func TargetFill(rng *rand.Rand, m *matrix.Dense, fill float64) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("%s: %w", methodTargetFill, err)
	}
	if !(fill >= probMin && fill <= probMax) {
		return 0, fmt.Errorf("%s: fill=%.6f: %w", methodTargetFill, fill, ErrInvalidProbability)
	}
	if rng == nil {
		return 0, fmt.Errorf("%s: %w", methodTargetFill, ErrNeedRandSource)
	}
	zeros, err := m.OffDiagonalZeros()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodTargetFill, err)
	}

	n := m.Rows()
	offDiag := n*n - n
	targetZeros := int(math.Floor((1-fill)*float64(offDiag) + fillEpsilon))
	deficit := targetZeros - zeros
	if deficit <= 0 {
		return 0, nil
	}

	// Row-major flatten of the non-zero off-diagonal entries.
	candidates := make([]int, 0, offDiag-zeros)
	m.Do(func(i, j int, v float64) bool {
		if i != j && v != 0 {
			candidates = append(candidates, i*n+j)
		}
		return true
	})

	for _, idx := range sampling.ChooseK(rng, candidates, deficit) {
		if err = m.Set(idx/n, idx%n, 0); err != nil {
			return 0, fmt.Errorf("%s: %w", methodTargetFill, err)
		}
	}

	return deficit, nil
}

// Modulate returns max(0, Normal(mult, std)) ∘ base: every entry of base is
// scaled by its own non-negative jitter draw. Zero entries of base stay zero.
// One draw per entry is consumed (row-major) regardless of base's sparsity.
func Modulate(rng *rand.Rand, base *matrix.Dense, mult, std float64) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(base); err != nil {
		return nil, fmt.Errorf("%s: %w", methodModulate, err)
	}
	jitter, err := sampling.Magnitudes(rng, base.Rows(), base.Cols(), mult, std)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodModulate, err)
	}
	if err = jitter.MulElem(base); err != nil {
		return nil, fmt.Errorf("%s: %w", methodModulate, err)
	}

	return jitter, nil
}
