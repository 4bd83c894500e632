package pr

import "math"

// Departure evaluates the PR enthalpy departure function:
//
//	H_dep = R*T*(Z-1) + [T*(da_mix/dT) - a_mix] / (2*sqrt2*b_mix) * ln[(Z+(1+sqrt2)B)/(Z+(1-sqrt2)B)]
//
// bMix is the dimensional mixture parameter b_mix (the prefactor
// denominator); bDim is the dimensionless B = b_mix*P/(RT) the Z-form log
// argument requires. Passing the dimensional b_mix into the log collapses
// the ratio to ~1 and silently drops the departure term.
func Departure(t, z, aMix, daMixDT, bMix, bDim, rGas float64) float64 {
	logRatio := math.Log((z + sigmaPR*bDim) / (z + epsilonPR*bDim))
	return rGas*t*(z-1) + (t*daMixDT-aMix)/(2*math.Sqrt2*bMix)*logRatio
}
