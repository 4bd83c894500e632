package pr

import (
	"fmt"
	"math"

	"github.com/solventus/phflash"
)

// logGuardEpsilon is the minimum margin Z must keep above B before its
// logarithm is evaluated.
const logGuardEpsilon = 1e-12

// LnPhi evaluates the standard PR fugacity-coefficient expression for
// every component:
//
//	ln phi_i = (b_i/b_mix)(Z-1) - ln(Z-B)
//	           - (A/(2*sqrt2*B)) * (2*s_i/a_mix - b_i/b_mix) * ln[(Z+(1+sqrt2)B)/(Z+(1-sqrt2)B)]
//
// where s_i = Σ_j x_j sqrt(a_i a_j)(1-k_ij) (see PartialAMixSum). Z, A and
// B (aDim, bDim) are the dimensionless cubic-in-Z quantities
// (A = a_mix*P/(RT)^2, B = b_mix*P/(RT)); aMixDim and bMixDim are the
// dimensional mixture parameters a_mix and b_mix themselves. The leading
// prefactor A/(2*sqrt2*B) is dimensionless on its own and must use the
// dimensionless A, B: a_mix/b_mix differs from A/B by a factor of RT and
// would leave the whole term carrying units of energy per mole. The
// bracket (2*s_i/a_mix - b_i/b_mix), by contrast, is a ratio of two
// dimensional quantities of the same kind (s_i, a_mix; b_i, b_mix) and is
// invariant under scaling, so it takes the dimensional aMixDim, bMixDim.
// b holds the dimensional pure b_i values.
func LnPhi(z, aDim, bDim, aMixDim, bMixDim float64, b, s phflash.Vec) (phflash.Vec, error) {
	if z <= bDim+logGuardEpsilon {
		return phflash.Vec{}, phflash.NewError(phflash.ErrNumericLogGuard, "LnPhi", fmt.Errorf("Z = %.10g too close to B = %.10g", z, bDim))
	}
	logZMinusB := math.Log(z - bDim)
	logRatio := math.Log((z + sigmaPR*bDim) / (z + epsilonPR*bDim))

	var out phflash.Vec
	for i := 0; i < phflash.NC; i++ {
		term1 := b[i] / bMixDim * (z - 1)
		term2 := -logZMinusB
		var term3 float64
		if aDim > 0 && bDim > 0 {
			term3 = -aDim / (2 * math.Sqrt2 * bDim) * (2*s[i]/aMixDim - b[i]/bMixDim) * logRatio
		}
		out[i] = term1 + term2 + term3
	}
	return out, nil
}
