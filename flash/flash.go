// Package flash implements the outer pressure-enthalpy driver: initial
// temperature estimation, operating-condition classification, adaptive
// enthalpy tolerance, and a damped Newton loop over the isothermal VLE
// solver (package vle) that drives the mixture enthalpy to the target.
package flash

import (
	"fmt"
	"math"

	"github.com/solventus/phflash"
	"github.com/solventus/phflash/component"
	"github.com/solventus/phflash/crosscheck"
	"github.com/solventus/phflash/enthalpy"
	"github.com/solventus/phflash/pr"
	"github.com/solventus/phflash/vle"
)

// Outer-loop constants for the P-H Newton driver.
const (
	MaxIterOuter = 50
	TolTemp      = 1e-2
	maxDeltaT    = 50

	// maxConsecutiveStagnation bounds how many outer iterations in a row
	// may exhaust the line search without reducing |deltaH| before the
	// driver gives up with ErrConvergenceStagnation instead of running
	// out the full MaxIterOuter budget.
	maxConsecutiveStagnation = 5
)

var lineSearchTaus = []float64{1, 0.5, 0.25, 0.125, 0.0625}

// State is the flash output/working record: the full composition,
// equilibrium, and diagnostic state of one flash_calculate invocation.
type State struct {
	T, P, Beta     float64
	Z, X, Y, K     phflash.Vec
	HStar, H       float64
	HL, HV         float64
	ZL, ZV         float64
	LnPhiL, LnPhiV phflash.Vec
	Condition      Condition
	Iterations     int
	Status         phflash.ErrorCode
}

// Calculate runs the full P-H flash: feed z, pressure p, and target
// molar enthalpy hStar, under opts. prev, if non-nil, seeds the initial
// temperature estimate from a previous solution at nearby conditions.
func Calculate(z phflash.Vec, p, hStar float64, opts Options, prev *State) (*State, error) {
	if err := component.ValidateComposition(z); err != nil {
		return nil, err
	}
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 100 || p > 1e8 {
		return nil, phflash.NewError(phflash.ErrInputBadPressure, "Calculate", fmt.Errorf("P = %.6g Pa outside accepted range [100, 1e8]", p))
	}
	if math.IsNaN(hStar) || math.IsInf(hStar, 0) || hStar < -1e7 || hStar > 1e7 {
		return nil, phflash.NewError(phflash.ErrInputBadEnthalpy, "Calculate", fmt.Errorf("H* = %.6g outside accepted range [-1e7, 1e7]", hStar))
	}

	bip, err := component.LoadBIP(opts.BIPSource, opts.CustomBIP)
	if err != nil {
		return nil, err
	}

	var tc, pc, omega phflash.Vec
	var models [phflash.NC]component.IdealGasModel
	for i := 0; i < phflash.NC; i++ {
		tc[i] = component.Table[i].Critical.Tc
		pc[i] = component.Table[i].Critical.Pc
		omega[i] = component.Table[i].Critical.Omega
		models[i] = component.Table[i].IdealGas
	}

	t := InitialTemperature(z, hStar, models, prev)
	state := &State{T: t, P: p, Z: z, HStar: hStar}

	damping := opts.Damping
	if damping <= 0 {
		damping = 1.0
	}
	vleParams := vle.Params{
		Tc: tc, Pc: pc, Omega: omega, Kij: bip,
		UseQuantumH2: opts.UseQuantumH2, RGas: phflash.R,
		UseAnderson: opts.UseAnderson, AndersonDepth: opts.AndersonDepth, Damping: damping,
	}

	var kPrev phflash.Vec
	haveK := false
	var lastErr error
	stagnationStreak := 0

	for iter := 0; iter < MaxIterOuter; iter++ {
		state.Iterations = iter + 1
		cond := ClassifyCondition(t, p, z[phflash.H2])
		state.Condition = cond

		tolH := EnthalpyTolerance(cond)
		if !opts.UseAdaptiveTolerance {
			tolH = EnthalpyTolerance(ConditionDifficult)
		}
		if opts.CustomEnthalpyTol > 0 {
			tolH = opts.CustomEnthalpyTol
		}

		kInit := vle.InitialK(t, p, tc, pc, omega)
		if haveK {
			kInit = kPrev
		}
		if stab, stabErr := vle.CheckStability(t, p, tc, pc, omega, bip, opts.UseQuantumH2, phflash.R, z); stabErr == nil && stab.Unstable {
			kInit = stab.K
		}

		res, vErr := vle.Solve(t, p, vleParams, z, kInit)
		if vErr != nil {
			recovered, recErr := recoverVLE(t, p, vleParams, z, kInit, tc, pc, omega, bip, opts, vErr)
			if recErr != nil {
				state.Status = phflash.CodeOf(recErr)
				return state, recErr
			}
			res = recovered
		}
		kPrev, haveK = res.K, true

		hl, _, err := enthalpy.PhaseEnthalpy(t, p, tc, pc, omega, bip, opts.UseQuantumH2, phflash.R, res.X, models, pr.Liquid)
		if err != nil {
			state.Status = phflash.CodeOf(err)
			return state, err
		}
		hv, _, err := enthalpy.PhaseEnthalpy(t, p, tc, pc, omega, bip, opts.UseQuantumH2, phflash.R, res.Y, models, pr.Vapor)
		if err != nil {
			state.Status = phflash.CodeOf(err)
			return state, err
		}
		hMix := enthalpy.MixtureEnthalpy(res.Beta, hl, hv)
		deltaH := hStar - hMix

		state.Beta, state.X, state.Y, state.K = res.Beta, res.X, res.Y, res.K
		state.ZL, state.ZV = res.ZL, res.ZV
		state.LnPhiL, state.LnPhiV = res.LnPhiL, res.LnPhiV
		state.HL, state.HV, state.H = hl, hv, hMix

		if opts.Trace != nil {
			opts.Trace.Record(state.Iterations, t, deltaH)
		}

		if math.Abs(deltaH) < tolH {
			return finalizeAndValidate(state, tc, pc, omega, opts.Verbose)
		}

		dhdtOpts := enthalpy.DHDTOptions{
			DerivativePerturbation:   opts.DerivativePerturbation,
			MaxReasonableDHDT:        opts.MaxReasonableDHDT,
			Verbose:                  opts.Verbose,
			DisableNumericCrossCheck: !opts.UseAdaptiveDerivative,
		}
		dhdt, err := mixtureDHDT(t, p, tc, pc, omega, bip, opts.UseQuantumH2, res, models, dhdtOpts)
		if err != nil {
			state.Status = phflash.CodeOf(err)
			return state, err
		}

		deltaTNewton := phflash.Clamp(deltaH/dhdt, -maxDeltaT, maxDeltaT)

		newT, stagnating := lineSearch(t, p, deltaTNewton, deltaH, hStar, vleParams, z, res.K, tc, pc, omega, bip, opts, models)
		if stagnating {
			stagnationStreak++
			if stagnationStreak >= maxConsecutiveStagnation {
				err := phflash.NewError(phflash.ErrConvergenceStagnation, "Calculate", fmt.Errorf("line search exhausted without reducing |deltaH| for %d consecutive outer iterations", stagnationStreak))
				state.Status = phflash.CodeOf(err)
				return state, err
			}
		} else {
			stagnationStreak = 0
		}
		lastErr = vErr

		if math.Abs(newT-t) < TolTemp {
			state.T = newT
			return finalizeAndValidate(state, tc, pc, omega, opts.Verbose)
		}
		t = newT
		state.T = t
	}

	err = phflash.NewError(phflash.ErrConvergenceMaxIterOuter, "Calculate", fmt.Errorf("outer Newton loop did not converge within %d iterations (last inner error: %v)", MaxIterOuter, lastErr))
	state.Status = phflash.CodeOf(err)
	return state, err
}

// recoverVLE implements a one-retry recovery policy: on a physical
// failure (trivial solution), retry once seeded from TPD when TPD reports
// instability; on any other failure (numeric, convergence, algorithm or
// otherwise), retry once with Anderson disabled and damping halved, not
// below 0.2.
func recoverVLE(t, p float64, params vle.Params, z, kInit, tc, pc, omega phflash.Vec, bip phflash.Mat, opts Options, cause error) (vle.Result, error) {
	code := phflash.CodeOf(cause)
	retryParams := params
	retrySeed := kInit

	switch code.Category() {
	case phflash.CategoryPhysical:
		if stab, err := vle.CheckStability(t, p, tc, pc, omega, bip, opts.UseQuantumH2, phflash.R, z); err == nil && stab.Unstable {
			retrySeed = stab.K
		}
	default:
		retryParams.UseAnderson = false
		retryParams.Damping = math.Max(0.2, params.Damping*0.5)
	}

	res, err := vle.Solve(t, p, retryParams, z, retrySeed)
	if err != nil {
		return vle.Result{}, err
	}
	return res, nil
}

func mixtureDHDT(t, p float64, tc, pc, omega phflash.Vec, bip phflash.Mat, useQuantumH2 bool, res vle.Result, models [phflash.NC]component.IdealGasModel, opts enthalpy.DHDTOptions) (float64, error) {
	switch {
	case res.Beta <= 0:
		return enthalpy.DHDT(t, p, tc, pc, omega, bip, useQuantumH2, phflash.R, res.X, models, pr.Liquid, opts)
	case res.Beta >= 1:
		return enthalpy.DHDT(t, p, tc, pc, omega, bip, useQuantumH2, phflash.R, res.Y, models, pr.Vapor, opts)
	default:
		dL, err := enthalpy.DHDT(t, p, tc, pc, omega, bip, useQuantumH2, phflash.R, res.X, models, pr.Liquid, opts)
		if err != nil {
			return 0, err
		}
		dV, err := enthalpy.DHDT(t, p, tc, pc, omega, bip, useQuantumH2, phflash.R, res.Y, models, pr.Vapor, opts)
		if err != nil {
			return 0, err
		}
		return (1-res.Beta)*dL + res.Beta*dV, nil
	}
}

// lineSearch applies a damped-step search: try tau in lineSearchTaus and
// accept the first that decreases |deltaH| (re-evaluated by a full inner
// VLE solve at the trial temperature).
func lineSearch(t, p, deltaTNewton, deltaH, hStar float64, params vle.Params, z, kSeed, tc, pc, omega phflash.Vec, bip phflash.Mat, opts Options, models [phflash.NC]component.IdealGasModel) (newT float64, stagnating bool) {
	if !opts.UseLineSearch {
		return t + deltaTNewton, false
	}

	for _, tau := range lineSearchTaus {
		trialT := t + tau*deltaTNewton
		trialRes, err := vle.Solve(trialT, p, params, z, kSeed)
		if err != nil {
			continue
		}
		hl, _, errL := enthalpy.PhaseEnthalpy(trialT, p, tc, pc, omega, bip, opts.UseQuantumH2, phflash.R, trialRes.X, models, pr.Liquid)
		hv, _, errV := enthalpy.PhaseEnthalpy(trialT, p, tc, pc, omega, bip, opts.UseQuantumH2, phflash.R, trialRes.Y, models, pr.Vapor)
		if errL != nil || errV != nil {
			continue
		}
		trialH := enthalpy.MixtureEnthalpy(trialRes.Beta, hl, hv)
		if math.Abs(hStar-trialH) < math.Abs(deltaH) {
			return trialT, false
		}
	}
	return t + lineSearchTaus[len(lineSearchTaus)-1]*deltaTNewton, true
}

// finalizeAndValidate checks the converged-solution invariants (mass
// balance, composition normalization, Z-root ordering) before returning
// the state as successful, then runs the optional corresponding-states
// cross-checks for diagnostic logging.
func finalizeAndValidate(state *State, tc, pc, omega phflash.Vec, verbose bool) (*State, error) {
	sumX, sumY := phflash.Sum(state.X), phflash.Sum(state.Y)
	if math.Abs(sumX-1) > 1e-6 || math.Abs(sumY-1) > 1e-6 {
		err := phflash.NewError(phflash.ErrPhysicalInconsistentZ, "finalizeAndValidate", fmt.Errorf("Σx=%.8g Σy=%.8g, want 1±1e-6", sumX, sumY))
		state.Status = phflash.CodeOf(err)
		return state, err
	}

	maxMassResidual := 0.0
	for i := 0; i < phflash.NC; i++ {
		r := math.Abs(state.Z[i] - (1-state.Beta)*state.X[i] - state.Beta*state.Y[i])
		if r > maxMassResidual {
			maxMassResidual = r
		}
	}
	if maxMassResidual > 1e-8 {
		err := phflash.NewError(phflash.ErrPhysicalInconsistentZ, "finalizeAndValidate", fmt.Errorf("mass-balance residual %.3g exceeds 1e-8", maxMassResidual))
		state.Status = phflash.CodeOf(err)
		return state, err
	}

	if state.Beta > 0 && state.Beta < 1 && state.ZV < state.ZL {
		err := phflash.NewError(phflash.ErrPhysicalInconsistentZ, "finalizeAndValidate", fmt.Errorf("Z_V=%.6g < Z_L=%.6g in two-phase region", state.ZV, state.ZL))
		state.Status = phflash.CodeOf(err)
		return state, err
	}

	state.Status = phflash.Success
	runCrossChecks(state, tc, pc, omega, verbose)
	return state, nil
}

// runCrossChecks evaluates the generalized correlations against the
// converged vapor and liquid roots and, when verbose, logs any large
// disagreement. It never alters state.Status or returns an error: these
// estimates are independent sanity checks, not solver requirements.
func runCrossChecks(state *State, tc, pc, omega phflash.Vec, verbose bool) {
	if state.Beta > 0 {
		tcMixV, pcMixV, omegaMixV := crosscheck.PseudoCriticals(state.Y, tc, pc, omega)
		rep := crosscheck.VaporChecks(state.T, state.P, tcMixV, pcMixV, omegaMixV, phflash.R)
		if rep.HasVirialZ && math.Abs(rep.VirialZ-state.ZV) > 0.1*math.Max(1, math.Abs(state.ZV)) {
			phflash.Logf(verbose, "crosscheck: virial Z disagrees with PR vapor Z", "virialZ", rep.VirialZ, "prZ", state.ZV)
		}
		if rep.HasLeeKeslerZ && math.Abs(rep.LeeKeslerZ-state.ZV) > 0.1*math.Max(1, math.Abs(state.ZV)) {
			phflash.Logf(verbose, "crosscheck: Lee-Kesler Z disagrees with PR vapor Z", "leeKeslerZ", rep.LeeKeslerZ, "prZ", state.ZV)
		}
	}
	if state.Beta < 1 {
		tcMixL, pcMixL, omegaMixL := crosscheck.PseudoCriticals(state.X, tc, pc, omega)
		if vsat, ok := crosscheck.LiquidCheck(state.T, tcMixL, pcMixL, omegaMixL, phflash.R); ok {
			vPR := state.ZL * phflash.R * state.T / state.P
			if math.Abs(vsat-vPR) > 0.5*vPR {
				phflash.Logf(verbose, "crosscheck: Rackett saturated volume disagrees with PR liquid volume", "rackettV", vsat, "prV", vPR)
			}
		}
	}
	for _, name := range []string{"NH3", "H2O"} {
		idx := phflash.NH3
		if name == "H2O" {
			idx = phflash.H2O
		}
		if state.Z[idx] <= 0 {
			continue
		}
		if psat, ok := crosscheck.AntoineCheck(name, state.T); ok {
			if math.Abs(psat-state.P) < 0.2*state.P {
				phflash.Logf(verbose, "crosscheck: Antoine saturation pressure near feed pressure", "component", name, "psat", psat, "p", state.P)
			}
		}
	}
}
