// SPDX-License-Identifier: MIT
// Package: circuit
//
// validate.go: up-front precondition checks for Params.
//
// Order (first violation wins):
//   - population sizes, then projections (F2R, P2K, G2PI, PI2K, K2E), then
//     receptor, lateral, octopamine, noise and damping groups.
//
// Field names in errors use the yaml spelling, e.g. "p2k.fraction".

package circuit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glomnet/connectivity"
	"github.com/katalvlaran/glomnet/sampling"
)

// Validate reports the first field of p that violates its domain. The
// returned error matches ErrInvalidParams and the underlying sentinel.
func (p Params) Validate() error {
	pop := p.Populations
	sizes := []struct {
		field string
		n     int
	}{
		{"populations.features", pop.Features},
		{"populations.glomeruli", pop.Glomeruli},
		{"populations.pi", pop.PI},
		{"populations.kenyon", pop.Kenyon},
		{"populations.extrinsic", pop.Extrinsic},
	}
	for _, s := range sizes {
		if s.n < 0 {
			return paramErrorf(s.field, fmt.Errorf("%d: %w", s.n, connectivity.ErrNegativeSize))
		}
	}

	projections := []struct {
		field      string
		proj       Projection
		rows, cols int
	}{
		{"f2r", p.F2R, pop.Glomeruli, pop.Features},
		{"p2k", p.P2K, pop.Kenyon, pop.Glomeruli},
		{"g2pi", p.G2PI, pop.PI, pop.Glomeruli},
		{"pi2k", p.PI2K, pop.Kenyon, pop.PI},
		{"k2e", p.K2E, pop.Extrinsic, pop.Kenyon},
	}
	for _, pr := range projections {
		if err := pr.proj.validate(pr.field, pr.rows, pr.cols); err != nil {
			return err
		}
	}

	gaussians := []struct {
		field string
		g     Gaussian
	}{
		{"r2g", p.R2G},
		{"gaba_sens", p.GABASens},
		{"octo2g", p.Octo2G},
		{"octo2k", p.Octo2K},
		{"octo2e", p.Octo2E},
		{"k_global_damp", p.KGlobalDamp},
	}
	for _, g := range gaussians {
		if err := checkGaussian(g.g.Mean, g.g.Std); err != nil {
			return paramErrorf(g.field, err)
		}
	}

	modulations := []struct {
		field string
		m     Modulation
	}{
		{"r2p", p.R2P}, {"r2l", p.R2L}, {"r2pi", p.R2PI},
		{"l2r", p.L2R}, {"l2p", p.L2P}, {"l2l", p.L2L},
		{"octo2p", p.Octo2P}, {"octo2l", p.Octo2L}, {"octo2r", p.Octo2R},
	}
	for _, m := range modulations {
		if err := checkGaussian(m.m.Mult, m.m.Std); err != nil {
			return paramErrorf(m.field, err)
		}
	}

	if err := checkGaussian(p.L2G.Mean, p.L2G.Std); err != nil {
		return paramErrorf("l2g", err)
	}
	if err := checkFraction(p.L2G.Fill); err != nil {
		return paramErrorf("l2g.fill", err)
	}
	if math.IsNaN(p.Octo2PIMult) || math.IsInf(p.Octo2PIMult, 0) {
		return paramErrorf("octo2pi_mult", sampling.ErrNonFinite)
	}

	noises := []struct {
		field string
		n     Noise
	}{
		{"r_spont", p.RSpont},
		{"noise_r", p.NoiseR}, {"noise_p", p.NoiseP}, {"noise_l", p.NoiseL},
		{"noise_pi", p.NoisePI}, {"noise_k", p.NoiseK}, {"noise_e", p.NoiseE},
	}
	for _, n := range noises {
		if err := n.n.Validate(); err != nil {
			return paramErrorf(n.field, err)
		}
	}

	return nil
}

// validate checks a projection feeding a rows×cols matrix, including the
// feasibility of round-robin mode.
func (pr Projection) validate(field string, rows, cols int) error {
	if err := checkFraction(pr.Fraction); err != nil {
		return paramErrorf(field+".fraction", err)
	}
	if pr.FanOut < 0 {
		return paramErrorf(field+".fan_out", connectivity.ErrInvalidFanOut)
	}
	if pr.Capacity < 0 {
		return paramErrorf(field+".capacity", connectivity.ErrInvalidFanOut)
	}
	if pr.FanOut > 0 && pr.OneInputPerRow {
		return paramErrorf(field+".one_input_per_row",
			fmt.Errorf("cannot be combined with fan_out=%d: %w", pr.FanOut, connectivity.ErrInvalidFanOut))
	}
	if err := checkGaussian(pr.Mean, pr.Std); err != nil {
		return paramErrorf(field, err)
	}
	if math.IsNaN(pr.Cap) || math.IsInf(pr.Cap, 0) {
		return paramErrorf(field+".cap", sampling.ErrNonFinite)
	}
	if pr.Cap < 0 {
		return paramErrorf(field+".cap", sampling.ErrNegativeCeiling)
	}

	if pr.FanOut == 0 || cols == 0 {
		return nil
	}
	if pr.FanOut > rows {
		return paramErrorf(field+".fan_out",
			fmt.Errorf("fan_out=%d > destinations=%d: %w", pr.FanOut, rows, connectivity.ErrCapacity))
	}
	capacity := pr.Capacity
	if capacity == 0 {
		capacity = connectivity.DeriveCapacity(rows, cols, pr.FanOut)
	}
	if rows*capacity < cols*pr.FanOut {
		return paramErrorf(field+".capacity",
			fmt.Errorf("%d slots < %d links: %w", rows*capacity, cols*pr.FanOut, connectivity.ErrCapacity))
	}

	return nil
}

// checkGaussian validates a (mean, std) pair for Normal draws.
func checkGaussian(mean, std float64) error {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(std) || math.IsInf(std, 0) {
		return sampling.ErrNonFinite
	}
	if std < 0 {
		return sampling.ErrNegativeStd
	}

	return nil
}

// checkFraction validates a probability or fill ratio.
func checkFraction(f float64) error {
	if !(f >= 0 && f <= 1) {
		return fmt.Errorf("%v: %w", f, connectivity.ErrInvalidProbability)
	}

	return nil
}
