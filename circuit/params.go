// SPDX-License-Identifier: MIT
// Package: circuit
//
// params.go: the declared input record.
//
// Params is a fully typed value: every hyperparameter has a named field and
// a yaml tag. It is treated as read-only by Build and copied into the Model.

package circuit

import (
	"github.com/katalvlaran/glomnet/sampling"
)

// Populations holds the neuron counts. All must be ≥ 0.
type Populations struct {
	Features  int `yaml:"features"`
	Glomeruli int `yaml:"glomeruli"`
	PI        int `yaml:"pi"`
	Kenyon    int `yaml:"kenyon"`
	Extrinsic int `yaml:"extrinsic"`
}

// Projection configures a masked feed-forward projection.
//
// Mask mode:
//   - FanOut == 0: Bernoulli mask, each pair connected with probability Fraction.
//   - FanOut > 0: round-robin mask, each source connected to exactly FanOut
//     destinations, at most Capacity inputs per destination (0 derives
//     ceil(sources·FanOut/destinations)).
//
// OneInputPerRow then optionally reduces every destination to one input.
// It applies to Bernoulli mode only; Validate rejects it together with FanOut.
// Weights are max(0, Normal(Mean, Std)) on connected pairs, clamped to Cap
// when Cap > 0.
type Projection struct {
	Fraction       float64 `yaml:"fraction"`
	FanOut         int     `yaml:"fan_out"`
	Capacity       int     `yaml:"capacity"`
	OneInputPerRow bool    `yaml:"one_input_per_row"`
	Mean           float64 `yaml:"mean"`
	Std            float64 `yaml:"std"`
	Cap            float64 `yaml:"cap"`
}

// Gaussian is a (Mean, Std) pair for per-neuron draws clamped at 0.
type Gaussian struct {
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
}

// Modulation derives a quantity from another one with a Normal(Mult, Std)
// factor or offset (see the field docs on Params).
type Modulation struct {
	Mult float64 `yaml:"mult"`
	Std  float64 `yaml:"std"`
}

// Lateral configures the glomerulus-to-glomerulus template.
// Fill is the target fraction of non-zero off-diagonal entries.
type Lateral struct {
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
	Fill float64 `yaml:"fill"`
}

// Noise describes a per-neuron noise or spontaneous-rate vector.
type Noise = sampling.Noise

// Params is the complete input of Build.
type Params struct {
	Populations Populations `yaml:"populations"`

	// Feed-forward projections (destination × source).
	F2R  Projection `yaml:"f2r"`  // G×F, features to receptor neurons
	P2K  Projection `yaml:"p2k"`  // K×G, projection neurons to Kenyon cells
	G2PI Projection `yaml:"g2pi"` // PI×G, row-normalized after masking
	PI2K Projection `yaml:"pi2k"` // K×PI
	K2E  Projection `yaml:"k2e"`  // E×K

	// Receptor neurons.
	RSpont Noise      `yaml:"r_spont"` // spontaneous firing rate
	R2G    Gaussian   `yaml:"r2g"`
	R2P    Modulation `yaml:"r2p"`  // factor on R2G
	R2L    Modulation `yaml:"r2l"`  // factor on R2G
	R2PI   Modulation `yaml:"r2pi"` // factor on R2G, relayed through G2PI

	// Lateral inhibition.
	L2G      Lateral    `yaml:"l2g"`
	GABASens Gaussian   `yaml:"gaba_sens"` // per-destination row scaling
	L2R      Modulation `yaml:"l2r"`       // factor on the sensitivity-scaled template
	L2P      Modulation `yaml:"l2p"`
	L2L      Modulation `yaml:"l2l"`

	// Octopamine.
	Octo2G      Gaussian   `yaml:"octo2g"`
	Octo2K      Gaussian   `yaml:"octo2k"`
	Octo2E      Gaussian   `yaml:"octo2e"`
	Octo2P      Modulation `yaml:"octo2p"` // offset Mult·Octo2G + Std·N(0,1)
	Octo2L      Modulation `yaml:"octo2l"`
	Octo2R      Modulation `yaml:"octo2r"`
	Octo2PIMult float64    `yaml:"octo2pi_mult"`

	// Noise levels.
	NoiseR  Noise `yaml:"noise_r"`
	NoiseP  Noise `yaml:"noise_p"`
	NoiseL  Noise `yaml:"noise_l"`
	NoisePI Noise `yaml:"noise_pi"`
	NoiseK  Noise `yaml:"noise_k"`
	NoiseE  Noise `yaml:"noise_e"`

	// Kenyon global damping.
	KGlobalDamp Gaussian `yaml:"k_global_damp"`
}

// DefaultParams returns the reference configuration: a small network with
// 85 features, 85 glomeruli, no PIs, 2000 Kenyon cells and 10 readouts.
func DefaultParams() Params {
	return Params{
		Populations: Populations{
			Features:  85,
			Glomeruli: 85,
			PI:        0,
			Kenyon:    2000,
			Extrinsic: 10,
		},

		F2R:  Projection{FanOut: 1, Mean: 0.6, Std: 0.08},
		P2K:  Projection{Fraction: 0.33, Mean: 0.5, Std: 0.05, Cap: 0.8},
		G2PI: Projection{Fraction: 0.2, Mean: 1, Std: 0.1},
		PI2K: Projection{Fraction: 0.65, Mean: 0.5, Std: 0.05, Cap: 0.5},
		K2E:  Projection{Fraction: 1, Mean: 0.1, Std: 0.01, Cap: 10},

		RSpont: Noise{Family: sampling.FamilyGamma, Mean: 0.5, Std: 0.25, Base: 0},
		R2G:    Gaussian{Mean: 5, Std: 2},
		R2P:    Modulation{Mult: 8, Std: 1},
		R2L:    Modulation{Mult: 8, Std: 1},
		R2PI:   Modulation{Mult: 6, Std: 0.5},

		L2G:      Lateral{Mean: 0.8, Std: 0.1, Fill: 0.5},
		GABASens: Gaussian{Mean: 1, Std: 0.2},
		L2R:      Modulation{Mult: 0, Std: 0},
		L2P:      Modulation{Mult: 1, Std: 0.1},
		L2L:      Modulation{Mult: 1, Std: 0.1},

		Octo2G:      Gaussian{Mean: 0, Std: 0},
		Octo2K:      Gaussian{Mean: 0, Std: 0},
		Octo2E:      Gaussian{Mean: 0, Std: 0},
		Octo2P:      Modulation{Mult: 4, Std: 0},
		Octo2L:      Modulation{Mult: 1, Std: 0},
		Octo2R:      Modulation{Mult: 4, Std: 0},
		Octo2PIMult: 1,

		NoiseR:  Noise{Family: sampling.FamilyGamma, Mean: 1.5, Std: 1.5, Ceiling: 15},
		NoiseP:  Noise{Family: sampling.FamilyGamma, Mean: 1.5, Std: 1.5, Ceiling: 15},
		NoiseL:  Noise{Family: sampling.FamilyGamma, Mean: 1.5, Std: 1.5},
		NoisePI: Noise{Family: sampling.FamilyGaussian, Mean: 0, Std: 0},
		NoiseK:  Noise{Family: sampling.FamilyGaussian, Mean: 0, Std: 0},
		NoiseE:  Noise{Family: sampling.FamilyGaussian, Mean: 0, Std: 0},

		KGlobalDamp: Gaussian{Mean: 0, Std: 0},
	}
}
