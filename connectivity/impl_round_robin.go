// SPDX-License-Identifier: MIT
// Package: connectivity
//
// impl_round_robin.go: capacity-constrained round-robin masks.
//
// Model:
//   - A rows×cols mask (destination × source). Every source column must be
//     connected to exactly fanOut distinct destination rows; no destination
//     row may exceed capacity connections.
//   - Columns are visited in ascending order and each one takes its fanOut
//     rows at once: the rows with the most usable capacity, where usable is
//     min(capacity-load, columns still to visit). Ties go to the least-loaded
//     row, then to a random order. This is the Gale–Ryser greedy: it
//     completes whenever rows*capacity ≥ cols*fanOut and fanOut ≤ rows, and
//     keeps in-degrees within one of each other for a uniform capacity.
//
// Contract:
//   - rows, cols ≥ 0 (else ErrNegativeSize); fanOut ≥ 1 and capacity ≥ 0
//     (else ErrInvalidFanOut). capacity == 0 derives ceil(cols*fanOut/rows).
//   - ErrCapacity when fanOut > rows or rows*capacity < cols*fanOut. No
//     partial mask is returned.
//   - cols == 0 yields an empty assignment without consuming randomness.
//
// Complexity:
//   - Time O(cols*rows*log(rows)). Space O(rows) besides the mask.
//
// Determinism:
//   - Columns asc; per column one sampling.ShuffleInts over the row indices
//     0..rows-1 (rows-1 calls to rng.IntN), then a stable sort by
//     (usable desc, load asc).

package connectivity

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/glomnet/matrix"
	"github.com/katalvlaran/glomnet/sampling"
)

const methodRoundRobinMask = "RoundRobinMask"

// DeriveCapacity returns ceil(cols*fanOut/rows), the smallest uniform
// per-row capacity able to absorb cols*fanOut connections. rows must be > 0.
func DeriveCapacity(rows, cols, fanOut int) int {
	return (cols*fanOut + rows - 1) / rows
}

// RoundRobinMask builds a capacity-constrained mask (see file header).
func RoundRobinMask(rng *rand.Rand, rows, cols, fanOut, capacity int) (*matrix.Mask, error) {
	// 1) Validate domains.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s: shape %dx%d: %w", methodRoundRobinMask, rows, cols, ErrNegativeSize)
	}
	if fanOut < 1 || capacity < 0 {
		return nil, fmt.Errorf("%s: fanOut=%d capacity=%d: %w",
			methodRoundRobinMask, fanOut, capacity, ErrInvalidFanOut)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRoundRobinMask, ErrNeedRandSource)
	}

	mask, err := matrix.NewMask(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRoundRobinMask, err)
	}
	if cols == 0 {
		return mask, nil // no source needs a destination
	}

	// 2) Feasibility: each column needs fanOut distinct rows and the rows
	// together must offer cols*fanOut slots.
	if fanOut > rows {
		return nil, fmt.Errorf("%s: fanOut=%d > rows=%d: %w", methodRoundRobinMask, fanOut, rows, ErrCapacity)
	}
	if capacity == 0 {
		capacity = DeriveCapacity(rows, cols, fanOut)
	}
	if rows*capacity < cols*fanOut {
		return nil, fmt.Errorf("%s: rows*capacity=%d < cols*fanOut=%d: %w",
			methodRoundRobinMask, rows*capacity, cols*fanOut, ErrCapacity)
	}

	// 3) One column at a time.
	var (
		load  = make([]int, rows)
		order = make([]int, rows)
		i, j  int
	)
	for j = 0; j < cols; j++ {
		remaining := cols - j
		usable := func(r int) int { return min(capacity-load[r], remaining) }
		for i = range order {
			order[i] = i
		}
		sampling.ShuffleInts(rng, order)
		slices.SortStableFunc(order, func(a, b int) int {
			if d := usable(b) - usable(a); d != 0 {
				return d
			}
			return load[a] - load[b]
		})

		for _, i = range order[:fanOut] {
			if usable(i) <= 0 {
				return nil, fmt.Errorf("%s: col %d: no row with spare capacity: %w",
					methodRoundRobinMask, j, ErrCapacity)
			}
			load[i]++
			if err = mask.Set(i, j, true); err != nil {
				return nil, fmt.Errorf("%s: %w", methodRoundRobinMask, err)
			}
		}
	}

	return mask, nil
}
