// SPDX-License-Identifier: MIT
// Package: sampling
//
// gamma.go: moment-matched Gamma draws and noise vectors.
//
// A Gamma with shape k and scale θ has mean kθ and variance kθ². Matching a
// target (m, s) gives k = (m/s)², θ = s²/m. gonum's distuv.Gamma is
// parameterised by rate, so Beta = 1/θ.

package sampling

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	methodGammaParams = "GammaParams"
	methodGammaVector = "GammaVector"
	methodNoiseVector = "NoiseVector"
)

// Family names the distribution a noise vector is drawn from.
type Family string

const (
	// FamilyGaussian draws max(0, Normal(Mean, Std)).
	FamilyGaussian Family = "gaussian"
	// FamilyGamma draws a Gamma moment-matched to (Mean, Std).
	FamilyGamma Family = "gamma"
)

// Noise describes a per-neuron vector: Base + draw, where draw comes from
// Family with the given Mean and Std. When Ceiling > 0, draws above it are
// replaced by 0 (outlier suppression). An empty Family means gaussian.
type Noise struct {
	Family  Family  `yaml:"family"`
	Mean    float64 `yaml:"mean"`
	Std     float64 `yaml:"std"`
	Base    float64 `yaml:"base"`
	Ceiling float64 `yaml:"ceiling"`
}

// Validate reports the first invalid field of n.
func (n Noise) Validate() error {
	if math.IsNaN(n.Base) || math.IsInf(n.Base, 0) || math.IsNaN(n.Ceiling) || math.IsInf(n.Ceiling, 0) {
		return ErrNonFinite
	}
	if n.Ceiling < 0 {
		return ErrNegativeCeiling
	}
	switch n.Family {
	case "", FamilyGaussian:
		return validateGaussian(n.Mean, n.Std)
	case FamilyGamma:
		_, _, err := GammaParams(n.Mean, n.Std)
		return err
	default:
		return ErrUnknownFamily
	}
}

// GammaParams returns the shape k and scale θ of the Gamma distribution whose
// mean is mean and standard deviation is std.
//
// Errors:
//   - ErrNonPositiveStd when std <= 0 (checked first).
//   - ErrNonPositiveMean when mean <= 0.
//   - ErrNonFinite for NaN/Inf inputs.
func GammaParams(mean, std float64) (shape, scale float64, err error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(std) || math.IsInf(std, 0) {
		return 0, 0, samplingErrorf(methodGammaParams, ErrNonFinite)
	}
	if std <= 0 {
		return 0, 0, samplingErrorf(methodGammaParams, ErrNonPositiveStd)
	}
	if mean <= 0 {
		return 0, 0, samplingErrorf(methodGammaParams, ErrNonPositiveMean)
	}
	ratio := mean / std

	return ratio * ratio, std * std / mean, nil
}

// GammaVector returns n draws from the Gamma distribution moment-matched to
// (mean, std).
//
// Errors: ErrNilRand, ErrNegativeSize, plus those of GammaParams.
func GammaVector(rng *rand.Rand, n int, mean, std float64) ([]float64, error) {
	if rng == nil {
		return nil, samplingErrorf(methodGammaVector, ErrNilRand)
	}
	if n < 0 {
		return nil, samplingErrorf(methodGammaVector, ErrNegativeSize)
	}
	shape, scale, err := GammaParams(mean, std)
	if err != nil {
		return nil, samplingErrorf(methodGammaVector, err)
	}
	dist := distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: rng}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out, nil
}

// NoiseVector draws an n-vector described by cfg: Base + draw, with draws
// above a positive Ceiling replaced by 0. The result is clamped at 0.
func NoiseVector(rng *rand.Rand, n int, cfg Noise) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, samplingErrorf(methodNoiseVector, err)
	}

	var (
		out []float64
		err error
	)
	switch cfg.Family {
	case FamilyGamma:
		out, err = GammaVector(rng, n, cfg.Mean, cfg.Std)
	default:
		out, err = GaussianVector(rng, n, cfg.Mean, cfg.Std)
	}
	if err != nil {
		return nil, samplingErrorf(methodNoiseVector, err)
	}

	for i, v := range out {
		if cfg.Ceiling > 0 && v > cfg.Ceiling {
			v = 0
		}
		out[i] = math.Max(0, cfg.Base+v)
	}

	return out, nil
}
