// SPDX-License-Identifier: MIT
// Package: circuit
//
// build.go: the Build orchestrator.
//
// Design contract:
//   - One entry point: Build(params, opts...). Validates params, resolves the
//     config, runs the stages in order, checks the Layout.
//   - Any stage error is wrapped with "Build: <stage>: %w" and returned
//     immediately; no partial Model is returned.
//
// RNG invocation order (a single *rand.Rand drives everything):
//  1. f2r:         F2R mask, then F2R magnitudes
//  2. receptors:   RSpont, R2G, R2P, R2L, R2PICol
//  3. lateral:     L2G template, GABASens, then L2R, L2P, L2L jitter
//  4. p2k:         P2K mask and weights
//  5. pi:          G2PI mask and weights (then row-normalized; L2PI and R2PI
//     are derived without drawing)
//  6. pi2k, k2e:   PI2K, then K2E masks and weights
//  7. octopamine:  Octo2G, Octo2K, Octo2P, Octo2L, Octo2R, Octo2E
//     (Octo2PI is derived without drawing)
//  8. noise:       NoisePI, NoiseK, NoiseE, NoiseR, NoiseP, NoiseL
//  9. damping:     KGlobalDamp
//
// Matrices are drawn row-major, one draw per entry regardless of the mask.
// Changing this order changes every model produced from a given seed.

package circuit

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/glomnet/connectivity"
	"github.com/katalvlaran/glomnet/matrix"
	"github.com/katalvlaran/glomnet/sampling"
)

// stage is one deterministic step of Build. Stages read m.Params, write
// their artifacts into m and draw from rng in their documented order.
type stage struct {
	name string
	run  func(m *Model, rng *rand.Rand) error
}

// buildStages is the fixed stage order (see file header).
var buildStages = []stage{
	{"f2r", buildF2R},
	{"receptors", buildReceptors},
	{"lateral", buildLateral},
	{"p2k", buildP2K},
	{"pi", buildPI},
	{"pi2k", buildPI2K},
	{"k2e", buildK2E},
	{"octopamine", buildOctopamine},
	{"noise", buildNoise},
	{"damping", buildDamping},
}

// Build generates a Model from p.
//
// Errors:
//   - ErrInvalidParams (plus the cause) when p fails Validate.
//   - Stage errors wrapped with the stage name.
//   - ErrLayoutMismatch if an artifact does not match Layout.
//
// Complexity: dominated by the K×G and E×K projections, O(K·G + E·K + G²·PI).
func Build(p Params, opts ...Option) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuildConfig(opts...)
	log := cfg.logger.With(slog.String("component", "circuit"))

	m := &Model{Params: p}
	for _, st := range buildStages {
		if err := st.run(m, cfg.rng); err != nil {
			log.Debug("stage failed", slog.String("stage", st.name), slog.Any("error", err))
			return nil, stageErrorf(st.name, err)
		}
		log.Debug("stage complete", slog.String("stage", st.name))
	}
	if err := checkLayout(m); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	pop := p.Populations
	log.Info("model built",
		slog.Int("features", pop.Features),
		slog.Int("glomeruli", pop.Glomeruli),
		slog.Int("pi", pop.PI),
		slog.Int("kenyon", pop.Kenyon),
		slog.Int("extrinsic", pop.Extrinsic),
		slog.Int("p2k_synapses", m.P2KMask.Count()),
	)

	return m, nil
}

// project builds the mask and weights of a rows×cols projection.
func project(rng *rand.Rand, rows, cols int, pr Projection) (*matrix.Mask, *matrix.Dense, error) {
	var (
		mask *matrix.Mask
		err  error
	)
	if pr.FanOut > 0 {
		mask, err = connectivity.RoundRobinMask(rng, rows, cols, pr.FanOut, pr.Capacity)
	} else {
		mask, err = connectivity.BernoulliMask(rng, rows, cols, pr.Fraction)
	}
	if err != nil {
		return nil, nil, err
	}
	if pr.OneInputPerRow {
		if err = connectivity.KeepOneInputPerRow(rng, mask); err != nil {
			return nil, nil, err
		}
	}
	w, err := sampling.MaskedMagnitudes(rng, mask, pr.Mean, pr.Std, pr.Cap)
	if err != nil {
		return nil, nil, err
	}

	return mask, w, nil
}

func buildF2R(m *Model, rng *rand.Rand) error {
	pop := m.Params.Populations
	mask, w, err := project(rng, pop.Glomeruli, pop.Features, m.Params.F2R)
	if err != nil {
		return err
	}
	m.F2RMask, m.F2R = mask, w

	return nil
}

func buildReceptors(m *Model, rng *rand.Rand) error {
	p, g := m.Params, m.Params.Populations.Glomeruli
	var err error
	if m.RSpont, err = sampling.NoiseVector(rng, g, p.RSpont); err != nil {
		return fmt.Errorf("r_spont: %w", err)
	}
	if m.R2G, err = sampling.GaussianVector(rng, g, p.R2G.Mean, p.R2G.Std); err != nil {
		return fmt.Errorf("r2g: %w", err)
	}
	if m.R2P, err = sampling.JitterVector(rng, m.R2G, p.R2P.Mult, p.R2P.Std); err != nil {
		return fmt.Errorf("r2p: %w", err)
	}
	if m.R2L, err = sampling.JitterVector(rng, m.R2G, p.R2L.Mult, p.R2L.Std); err != nil {
		return fmt.Errorf("r2l: %w", err)
	}
	if m.R2PICol, err = sampling.JitterVector(rng, m.R2G, p.R2PI.Mult, p.R2PI.Std); err != nil {
		return fmt.Errorf("r2pi: %w", err)
	}

	return nil
}

// buildLateral draws the L2G template and GABA sensitivities. L2R, L2P and
// L2L jitter the template after scaling row i by GABASens[i]; the stored
// L2G is the template scaled by the mean sensitivity instead.
func buildLateral(m *Model, rng *rand.Rand) error {
	p, g := m.Params, m.Params.Populations.Glomeruli
	template, err := connectivity.Lateral(rng, g, p.L2G.Mean, p.L2G.Std, p.L2G.Fill)
	if err != nil {
		return err
	}
	if m.GABASens, err = sampling.GaussianVector(rng, g, p.GABASens.Mean, p.GABASens.Std); err != nil {
		return fmt.Errorf("gaba_sens: %w", err)
	}

	sens := template.Copy()
	if err = sens.ScaleRows(m.GABASens); err != nil {
		return err
	}
	if m.L2R, err = connectivity.Modulate(rng, sens, p.L2R.Mult, p.L2R.Std); err != nil {
		return fmt.Errorf("l2r: %w", err)
	}
	if m.L2P, err = connectivity.Modulate(rng, sens, p.L2P.Mult, p.L2P.Std); err != nil {
		return fmt.Errorf("l2p: %w", err)
	}
	if m.L2L, err = connectivity.Modulate(rng, sens, p.L2L.Mult, p.L2L.Std); err != nil {
		return fmt.Errorf("l2l: %w", err)
	}

	// A negative configured mean scales by 0.
	if err = template.Scale(math.Max(0, p.GABASens.Mean)); err != nil {
		return err
	}
	m.L2G = template

	return nil
}

func buildP2K(m *Model, rng *rand.Rand) error {
	pop := m.Params.Populations
	mask, w, err := project(rng, pop.Kenyon, pop.Glomeruli, m.Params.P2K)
	if err != nil {
		return err
	}
	m.P2KMask, m.P2K = mask, w

	return nil
}

// buildPI draws G2PI, normalizes its rows and relays the lateral template
// and the receptor drive onto the PIs.
func buildPI(m *Model, rng *rand.Rand) error {
	pop := m.Params.Populations
	mask, w, err := project(rng, pop.PI, pop.Glomeruli, m.Params.G2PI)
	if err != nil {
		return err
	}
	if _, err = matrix.NormalizeRows(w); err != nil {
		return err
	}
	m.G2PIMask, m.G2PI = mask, w

	if m.L2PI, err = connectivity.Compose(m.G2PI, m.L2G); err != nil {
		return fmt.Errorf("l2pi: %w", err)
	}
	if m.R2PI, err = connectivity.ComposeColumns(m.G2PI, m.R2PICol); err != nil {
		return fmt.Errorf("r2pi: %w", err)
	}

	return nil
}

func buildPI2K(m *Model, rng *rand.Rand) error {
	pop := m.Params.Populations
	mask, w, err := project(rng, pop.Kenyon, pop.PI, m.Params.PI2K)
	if err != nil {
		return err
	}
	m.PI2KMask, m.PI2K = mask, w

	return nil
}

func buildK2E(m *Model, rng *rand.Rand) error {
	pop := m.Params.Populations
	mask, w, err := project(rng, pop.Extrinsic, pop.Kenyon, m.Params.K2E)
	if err != nil {
		return err
	}
	m.K2EMask, m.K2E = mask, w

	return nil
}

func buildOctopamine(m *Model, rng *rand.Rand) error {
	p, pop := m.Params, m.Params.Populations
	var err error
	if m.Octo2G, err = sampling.GaussianVector(rng, pop.Glomeruli, p.Octo2G.Mean, p.Octo2G.Std); err != nil {
		return fmt.Errorf("octo2g: %w", err)
	}
	if m.Octo2K, err = sampling.GaussianVector(rng, pop.Kenyon, p.Octo2K.Mean, p.Octo2K.Std); err != nil {
		return fmt.Errorf("octo2k: %w", err)
	}
	if m.Octo2P, err = sampling.OffsetVector(rng, m.Octo2G, p.Octo2P.Mult, p.Octo2P.Std); err != nil {
		return fmt.Errorf("octo2p: %w", err)
	}
	if m.Octo2L, err = sampling.OffsetVector(rng, m.Octo2G, p.Octo2L.Mult, p.Octo2L.Std); err != nil {
		return fmt.Errorf("octo2l: %w", err)
	}
	if m.Octo2R, err = sampling.OffsetVector(rng, m.Octo2G, p.Octo2R.Mult, p.Octo2R.Std); err != nil {
		return fmt.Errorf("octo2r: %w", err)
	}

	// Averaged octopamine drive per PI; 0 for PIs without glomerular input.
	if m.Octo2PI, err = connectivity.RowAverage(m.G2PI, m.G2PIMask, m.Octo2G, p.Octo2PIMult); err != nil {
		return fmt.Errorf("octo2pi: %w", err)
	}
	for i, v := range m.Octo2PI {
		m.Octo2PI[i] = math.Max(0, v)
	}

	if m.Octo2E, err = sampling.GaussianVector(rng, pop.Extrinsic, p.Octo2E.Mean, p.Octo2E.Std); err != nil {
		return fmt.Errorf("octo2e: %w", err)
	}

	return nil
}

func buildNoise(m *Model, rng *rand.Rand) error {
	p, pop := m.Params, m.Params.Populations
	targets := []struct {
		field string
		n     int
		cfg   Noise
		dst   *[]float64
	}{
		{"noise_pi", pop.PI, p.NoisePI, &m.NoisePI},
		{"noise_k", pop.Kenyon, p.NoiseK, &m.NoiseK},
		{"noise_e", pop.Extrinsic, p.NoiseE, &m.NoiseE},
		{"noise_r", pop.Glomeruli, p.NoiseR, &m.NoiseR},
		{"noise_p", pop.Glomeruli, p.NoiseP, &m.NoiseP},
		{"noise_l", pop.Glomeruli, p.NoiseL, &m.NoiseL},
	}
	for _, tg := range targets {
		v, err := sampling.NoiseVector(rng, tg.n, tg.cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", tg.field, err)
		}
		*tg.dst = v
	}

	return nil
}

func buildDamping(m *Model, rng *rand.Rand) error {
	p := m.Params
	v, err := sampling.GaussianVector(rng, p.Populations.Kenyon, p.KGlobalDamp.Mean, p.KGlobalDamp.Std)
	if err != nil {
		return fmt.Errorf("k_global_damp: %w", err)
	}
	m.KGlobalDamp = v

	return nil
}
