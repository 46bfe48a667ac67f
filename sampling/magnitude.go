// SPDX-License-Identifier: MIT
// Package: sampling
//
// magnitude.go: Gaussian synaptic magnitudes.
//
// Implementation:
//   - Stage 1: validate rng, shape and (mean, std).
//   - Stage 2: draw Normal(mean, std) for every entry in row-major order.
//   - Stage 3: clamp negatives to 0; for masked variants multiply by the mask
//     and apply the optional ceiling.

package sampling

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/glomnet/matrix"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	methodMagnitudes       = "Magnitudes"
	methodMaskedMagnitudes = "MaskedMagnitudes"
	methodGaussianVector   = "GaussianVector"
)

// validateGaussian checks a (mean, std) pair for Normal draws.
func validateGaussian(mean, std float64) error {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(std) || math.IsInf(std, 0) {
		return ErrNonFinite
	}
	if std < 0 {
		return ErrNegativeStd
	}

	return nil
}

// normal returns the gonum Normal distribution driven by rng.
func normal(rng *rand.Rand, mean, std float64) distuv.Normal {
	return distuv.Normal{Mu: mean, Sigma: std, Src: rng}
}

// Magnitudes returns a rows×cols matrix of Normal(mean, std) draws with
// negative values clamped to 0.
//
// Errors: ErrNilRand, ErrNegativeSize, ErrNegativeStd, ErrNonFinite.
//
// Complexity: O(rows*cols) time and draws.
func Magnitudes(rng *rand.Rand, rows, cols int, mean, std float64) (*matrix.Dense, error) {
	if rng == nil {
		return nil, samplingErrorf(methodMagnitudes, ErrNilRand)
	}
	if rows < 0 || cols < 0 {
		return nil, samplingErrorf(methodMagnitudes, ErrNegativeSize)
	}
	if err := validateGaussian(mean, std); err != nil {
		return nil, samplingErrorf(methodMagnitudes, err)
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, samplingErrorf(methodMagnitudes, err)
	}
	dist := normal(rng, mean, std)
	err = m.Apply(func(_, _ int, _ float64) float64 {
		return dist.Rand()
	})
	if err != nil {
		return nil, samplingErrorf(methodMagnitudes, err)
	}
	if err = m.ClampBelow(0); err != nil {
		return nil, samplingErrorf(methodMagnitudes, err)
	}

	return m, nil
}

// MaskedMagnitudes draws a magnitude matrix with the mask's shape, zeroes
// every unconnected entry and, when ceiling > 0, clamps values above it.
// The result satisfies weight[i,j] != 0 ⇒ mask[i,j].
//
// Errors: as Magnitudes, plus ErrNegativeCeiling and matrix.ErrNilMatrix.
func MaskedMagnitudes(rng *rand.Rand, mask *matrix.Mask, mean, std, ceiling float64) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(mask); err != nil {
		return nil, samplingErrorf(methodMaskedMagnitudes, err)
	}
	if ceiling < 0 {
		return nil, samplingErrorf(methodMaskedMagnitudes, ErrNegativeCeiling)
	}
	m, err := Magnitudes(rng, mask.Rows(), mask.Cols(), mean, std)
	if err != nil {
		return nil, samplingErrorf(methodMaskedMagnitudes, err)
	}
	if err = m.MaskBy(mask); err != nil {
		return nil, samplingErrorf(methodMaskedMagnitudes, err)
	}
	if ceiling > 0 {
		if err = m.ClampAbove(ceiling); err != nil {
			return nil, samplingErrorf(methodMaskedMagnitudes, err)
		}
	}

	return m, nil
}

// GaussianVector returns n draws of max(0, Normal(mean, std)).
//
// Errors: ErrNilRand, ErrNegativeSize, ErrNegativeStd, ErrNonFinite.
func GaussianVector(rng *rand.Rand, n int, mean, std float64) ([]float64, error) {
	if rng == nil {
		return nil, samplingErrorf(methodGaussianVector, ErrNilRand)
	}
	if n < 0 {
		return nil, samplingErrorf(methodGaussianVector, ErrNegativeSize)
	}
	if err := validateGaussian(mean, std); err != nil {
		return nil, samplingErrorf(methodGaussianVector, err)
	}
	dist := normal(rng, mean, std)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Max(0, dist.Rand())
	}

	return out, nil
}
