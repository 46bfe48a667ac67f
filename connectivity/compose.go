// SPDX-License-Identifier: MIT
// Package: connectivity
//
// compose.go: two-hop derivations through a connection matrix.
//
// A row-normalized conn (destination × intermediate) relays quantities
// defined on the intermediate population: a matrix (Compose), a per-unit
// column scaling (ComposeColumns) or an averaged per-unit drive (RowAverage).

package connectivity

import (
	"fmt"

	"github.com/katalvlaran/glomnet/matrix"
)

const (
	methodCompose        = "Compose"
	methodComposeColumns = "ComposeColumns"
	methodRowAverage     = "RowAverage"
)

// Compose returns conn·upstream.
func Compose(conn, upstream *matrix.Dense) (*matrix.Dense, error) {
	out, err := matrix.Mul(conn, upstream)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompose, err)
	}

	return out, nil
}

// ComposeColumns returns conn·diag(v): column j of conn scaled by v[j].
func ComposeColumns(conn *matrix.Dense, v []float64) (*matrix.Dense, error) {
	out, err := matrix.MulDiag(conn, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComposeColumns, err)
	}

	return out, nil
}

// RowAverage returns, for every destination row i,
//
//	Σ_j conn[i,j]·mult·v[j] / |{j : mask[i,j]}|
//
// and 0 for rows without any connection.
func RowAverage(conn *matrix.Dense, mask *matrix.Mask, v []float64, mult float64) ([]float64, error) {
	if err := matrix.ValidateMaskFor(conn, mask); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRowAverage, err)
	}
	weighted, err := matrix.MulDiag(conn, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRowAverage, err)
	}
	sums, err := matrix.RowSums(weighted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRowAverage, err)
	}

	counts := mask.RowCounts()
	out := make([]float64, len(sums))
	for i, s := range sums {
		if counts[i] == 0 {
			continue
		}
		out[i] = mult * s / float64(counts[i])
	}

	return out, nil
}
