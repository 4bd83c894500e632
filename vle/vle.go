// Package vle implements the isothermal vapor-liquid-equilibrium solver:
// Wilson initialization, Rachford-Rice, successive substitution
// accelerated by package anderson, and tangent-plane-distance stability
// analysis.
package vle

import (
	"fmt"
	"math"

	"github.com/solventus/phflash"
	"github.com/solventus/phflash/anderson"
	"github.com/solventus/phflash/pr"
)

// Convergence constants for the successive-substitution loop.
const (
	TolK        = 1e-6
	TolFugacity = 1e-7
	MaxIterVLE  = 100

	oscillationWindow  = 3
	oscillationGiveUp  = 10
)

// Params bundles everything the VLE solver needs about the fluid system
// and the caller's configuration, independent of the current trial state.
type Params struct {
	Tc, Pc, Omega phflash.Vec
	Kij           phflash.Mat
	UseQuantumH2  bool
	RGas          float64

	UseAnderson   bool
	AndersonDepth int
	Damping       float64
}

// Result is the converged isothermal-flash state at a fixed (T, P).
type Result struct {
	Beta             float64
	X, Y             phflash.Vec
	K                phflash.Vec
	ZL, ZV           float64
	LnPhiL, LnPhiV   phflash.Vec
	Iterations       int
	AndersonFailures int
}

// Solve runs successive substitution, starting from kInit, to find the
// isothermal two-phase equilibrium at (t, p) for feed z.
func Solve(t, p float64, params Params, z, kInit phflash.Vec) (Result, error) {
	k := kInit

	var acc *anderson.Accelerator
	if params.UseAnderson {
		depth := params.AndersonDepth
		if depth == 0 {
			depth = 5
		}
		a, err := anderson.New(depth)
		if err == nil {
			acc = a
		}
	}

	damping := params.Damping
	if damping <= 0 {
		damping = 1.0
	}

	var residualHistory []float64
	oscillationStreak := 0
	andersonFailures := 0

	for iter := 0; iter < MaxIterVLE; iter++ {
		rr, err := SolveRachfordRice(z, k)
		if err != nil {
			return Result{}, err
		}

		var x, y phflash.Vec
		switch {
		case rr.AllLiquid:
			x = z
			sum := 0.0
			for i := 0; i < phflash.NC; i++ {
				sum += z[i] * k[i]
			}
			for i := 0; i < phflash.NC; i++ {
				y[i] = z[i] * k[i] / sum
			}
		case rr.AllVapor:
			y = z
			sum := 0.0
			for i := 0; i < phflash.NC; i++ {
				sum += z[i] / k[i]
			}
			for i := 0; i < phflash.NC; i++ {
				x[i] = z[i] / k[i] / sum
			}
		default:
			x, y = ComposeXY(z, k, rr.Beta)
		}

		resL, err := pr.Evaluate(t, p, params.Tc, params.Pc, params.Omega, params.Kij, x, params.UseQuantumH2, params.RGas, pr.Liquid)
		if err != nil {
			return Result{}, err
		}
		resV, err := pr.Evaluate(t, p, params.Tc, params.Pc, params.Omega, params.Kij, y, params.UseQuantumH2, params.RGas, pr.Vapor)
		if err != nil {
			return Result{}, err
		}

		var kNew phflash.Vec
		for i := 0; i < phflash.NC; i++ {
			kNew[i] = math.Exp(resL.LnPhi[i] - resV.LnPhi[i])
		}

		trivial := true
		for i := 0; i < phflash.NC; i++ {
			if math.Abs(kNew[i]-1) >= 1e-3 {
				trivial = false
				break
			}
		}
		if trivial {
			return Result{}, phflash.NewError(phflash.ErrPhysicalTrivialSolution, "vle.Solve", fmt.Errorf("K converged to the trivial solution (all K ~ 1)"))
		}

		maxLnKDiff := 0.0
		for i := 0; i < phflash.NC; i++ {
			d := math.Abs(math.Log(kNew[i] / k[i]))
			if d > maxLnKDiff {
				maxLnKDiff = d
			}
		}

		maxFugacityDiff := 0.0
		for i := 0; i < phflash.NC; i++ {
			if x[i] <= 0 || y[i] <= 0 {
				continue
			}
			d := math.Abs(math.Log(x[i]) + resL.LnPhi[i] - math.Log(y[i]) - resV.LnPhi[i])
			if d > maxFugacityDiff {
				maxFugacityDiff = d
			}
		}

		if maxLnKDiff < TolK && maxFugacityDiff < TolFugacity {
			return Result{
				Beta: rr.Beta, X: x, Y: y, K: kNew,
				ZL: resL.Z, ZV: resV.Z,
				LnPhiL: resL.LnPhi, LnPhiV: resV.LnPhi,
				Iterations: iter + 1, AndersonFailures: andersonFailures,
			}, nil
		}

		residualHistory = append(residualHistory, maxLnKDiff)
		if n := len(residualHistory); n > oscillationWindow {
			rising := 0
			for i := n - oscillationWindow; i < n; i++ {
				if residualHistory[i] > residualHistory[i-1] {
					rising++
				}
			}
			if rising >= oscillationWindow {
				oscillationStreak++
				damping = math.Max(0.2, damping*0.5)
				if oscillationStreak >= oscillationGiveUp {
					return Result{}, phflash.NewError(phflash.ErrConvergenceOscillation, "vle.Solve", fmt.Errorf("K-value residual oscillated for %d iterations", oscillationStreak))
				}
			} else {
				oscillationStreak = 0
			}
		}

		var kDampedNext phflash.Vec
		for i := 0; i < phflash.NC; i++ {
			kDampedNext[i] = k[i] + damping*(kNew[i]-k[i])
		}

		nextK := kDampedNext
		if acc != nil {
			var residual phflash.Vec
			for i := 0; i < phflash.NC; i++ {
				residual[i] = k[i] - kNew[i]
			}
			accelerated, ok := acc.Update(k, residual, kDampedNext)
			if ok {
				nextK = accelerated
			} else {
				andersonFailures++
				damping = phflash.DampingForFailures(andersonFailures)
			}
		}

		k = nextK
	}

	return Result{}, phflash.NewError(phflash.ErrConvergenceMaxIterVLE, "vle.Solve", fmt.Errorf("exceeded %d iterations", MaxIterVLE))
}

// InitialK returns the Wilson-correlation K-value estimate for (t, p).
func InitialK(t, p float64, tc, pc, omega phflash.Vec) phflash.Vec {
	return WilsonK(t, p, tc, pc, omega)
}
