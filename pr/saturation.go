package pr

import (
	"fmt"
	"math"

	"github.com/solventus/phflash"
)

// SaturationPressure estimates the single-component saturation pressure
// at temperature t from the PR-EOS equal-fugacity condition. It is a
// standalone helper: no other package in this module calls it (package
// crosscheck evaluates the Antoine correlation on its own), and it is
// never used as the flash's VLE solver; that is the job of package vle.
func SaturationPressure(tc, pc, omega, t, rGas float64) (float64, error) {
	if t >= tc {
		return pc, nil
	}

	tr := t / tc
	p := pc * math.Exp(5.373*(1+omega)*(1-1/tr))

	for range 100 {
		pure := Pure(t, tc, pc, omega, rGas)
		aDim, bDim := DimensionlessAB(pure.A, pure.B, p, t, rGas)

		roots, err := SolveZ(aDim, bDim)
		if err != nil {
			return 0, err
		}
		if roots.SingleRoot {
			if roots.ZVapor > 2*bDim {
				p *= 1.1
			} else {
				p *= 0.9
			}
			continue
		}

		bVecSingle := phflash.Vec{pure.B, pure.B, pure.B, pure.B, pure.B}
		sSingle := phflash.Vec{pure.A, pure.A, pure.A, pure.A, pure.A}

		lnPhiL, errL := LnPhi(roots.ZLiquid, aDim, bDim, pure.A, pure.B, bVecSingle, sSingle)
		lnPhiV, errV := LnPhi(roots.ZVapor, aDim, bDim, pure.A, pure.B, bVecSingle, sSingle)
		if errL != nil || errV != nil {
			p *= 0.95
			continue
		}

		diff := lnPhiL[0] - lnPhiV[0]
		if math.Abs(diff) < 1e-8 {
			return p, nil
		}

		ratio := math.Exp(diff)
		ratio = math.Max(0.8, math.Min(1.2, ratio))
		p *= ratio
	}

	return 0, phflash.NewError(phflash.ErrConvergenceMaxIterVLE, "SaturationPressure", fmt.Errorf("did not converge for Tc=%.4g Pc=%.4g T=%.4g", tc, pc, t))
}
