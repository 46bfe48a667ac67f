// SPDX-License-Identifier: MIT
// Package: sampling
//
// derive.go: per-neuron vectors derived from another vector.
//
// Two shapes of derivation occur in the model:
//   - multiplicative: out[i] = max(0, Normal(mult, std)) · base[i]
//   - additive:       out[i] = max(0, mult·base[i] + std·N(0,1))
//
// Both consume exactly len(base) Normal draws in index order.

package sampling

import (
	"math"
	"math/rand/v2"
)

const (
	methodJitterVector = "JitterVector"
	methodOffsetVector = "OffsetVector"
)

// JitterVector scales every base entry by its own non-negative
// Normal(mult, std) factor. Zero base entries stay zero.
func JitterVector(rng *rand.Rand, base []float64, mult, std float64) ([]float64, error) {
	out, err := GaussianVector(rng, len(base), mult, std)
	if err != nil {
		return nil, samplingErrorf(methodJitterVector, err)
	}
	for i, b := range base {
		out[i] *= b
	}

	return out, nil
}

// OffsetVector returns max(0, mult·base[i] + std·z_i) with z_i ~ N(0,1).
func OffsetVector(rng *rand.Rand, base []float64, mult, std float64) ([]float64, error) {
	if rng == nil {
		return nil, samplingErrorf(methodOffsetVector, ErrNilRand)
	}
	if math.IsNaN(mult) || math.IsInf(mult, 0) {
		return nil, samplingErrorf(methodOffsetVector, ErrNonFinite)
	}
	if err := validateGaussian(0, std); err != nil {
		return nil, samplingErrorf(methodOffsetVector, err)
	}
	dist := normal(rng, 0, std)
	out := make([]float64, len(base))
	for i, b := range base {
		out[i] = math.Max(0, mult*b+dist.Rand())
	}

	return out, nil
}
