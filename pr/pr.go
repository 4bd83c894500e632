// Package pr implements the Peng-Robinson cubic equation of state for the
// fixed five-component slate: pure-component parameters, van der Waals
// mixing rules, the hydrogen quantum correction, cubic-in-Z root
// selection, fugacity coefficients, and enthalpy departure.
package pr

import (
	"math"

	"github.com/solventus/phflash"
)

// PR-EOS universal constants (Peng & Robinson, 1976).
const (
	OmegaPR   = 0.07780
	PsiPR     = 0.45724
	sigmaPR   = 1 + math.Sqrt2
	epsilonPR = 1 - math.Sqrt2
)

// PureParams holds one component's PR pure-substance parameters evaluated
// at the current temperature.
type PureParams struct {
	A    float64 // a_i(T)
	B    float64 // b_i
	DaDT float64 // da_i/dT
}

// AlphaM returns the PR alpha-function slope m(omega). The standard PR
// form is used unconditionally; very high acentric factors (omega > 0.49)
// are accepted without the Soave extension the literature sometimes
// recommends there, since none of this module's five components reach
// that range.
func AlphaM(omega float64) float64 {
	return 0.37464 + 1.54226*omega - 0.26992*omega*omega
}

// Pure evaluates a_i(T), b_i and da_i/dT for one component at temperature
// t given its (possibly quantum-corrected) effective critical properties.
func Pure(t, tc, pc, omega, rGas float64) PureParams {
	m := AlphaM(omega)
	tr := t / tc
	sqrtTr := math.Sqrt(tr)
	alphaSqrt := 1 + m*(1-sqrtTr)
	alpha := alphaSqrt * alphaSqrt

	aScale := PsiPR * rGas * rGas * tc * tc / pc
	a := aScale * alpha

	dAlphaDT := -m * alphaSqrt / (sqrtTr * tc)
	daDT := aScale * dAlphaDT

	b := OmegaPR * rGas * tc / pc

	return PureParams{A: a, B: b, DaDT: daDT}
}

// MixParams applies the van der Waals one-fluid mixing rules to a set of
// pure-component parameters, returning a_mix, b_mix and its analytic
// temperature derivative.
func MixParams(x phflash.Vec, pure [phflash.NC]PureParams, kij phflash.Mat) (aMix, bMix, daMixDT float64) {
	for i := 0; i < phflash.NC; i++ {
		bMix += x[i] * pure[i].B
		for j := 0; j < phflash.NC; j++ {
			sqrtAiAj := math.Sqrt(pure[i].A * pure[j].A)
			if sqrtAiAj <= 0 {
				continue
			}
			aMix += x[i] * x[j] * sqrtAiAj * (1 - kij[i][j])
			dsqrt := (pure[i].DaDT*pure[j].A + pure[i].A*pure[j].DaDT) / (2 * sqrtAiAj)
			daMixDT += x[i] * x[j] * dsqrt * (1 - kij[i][j])
		}
	}
	return aMix, bMix, daMixDT
}

// PartialAMixSum returns S_i = Σ_j x_j sqrt(a_i a_j)(1-k_ij), the partial
// molar a-mixing term the fugacity coefficient needs for each component i.
func PartialAMixSum(x phflash.Vec, pure [phflash.NC]PureParams, kij phflash.Mat) phflash.Vec {
	var s phflash.Vec
	for i := 0; i < phflash.NC; i++ {
		for j := 0; j < phflash.NC; j++ {
			s[i] += x[j] * math.Sqrt(pure[i].A*pure[j].A) * (1 - kij[i][j])
		}
	}
	return s
}

// bVec extracts the pure b_i values from a PureParams array.
func bVec(pure [phflash.NC]PureParams) phflash.Vec {
	var b phflash.Vec
	for i := 0; i < phflash.NC; i++ {
		b[i] = pure[i].B
	}
	return b
}

// DimensionlessAB returns the dimensionless EOS parameters A = a_mix*P /
// (R*T)^2 and B = b_mix*P / (R*T).
func DimensionlessAB(aMix, bMix, p, t, rGas float64) (a, b float64) {
	rt := rGas * t
	return aMix * p / (rt * rt), bMix * p / rt
}

// Bundle is the PR parameter state for one (T, composition) pair, built
// fresh for every phase evaluation (never shared across phases, per the
// immutability contract on the underlying critical tables).
type Bundle struct {
	T       float64
	Pure    [phflash.NC]PureParams
	TcUsed  phflash.Vec
	PcUsed  phflash.Vec
	Kij     phflash.Mat
	AMix    float64
	BMix    float64
	DaMixDT float64
}

// NewBundle builds pure and mixture PR parameters at temperature t for
// composition x, applying the hydrogen quantum correction to H2's
// effective criticals when useQuantumH2 is set.
func NewBundle(t float64, tc, pc, omega phflash.Vec, kij phflash.Mat, x phflash.Vec, useQuantumH2 bool, rGas float64) *Bundle {
	tcUsed := tc
	pcUsed := pc
	if useQuantumH2 {
		tEff, pEff := QuantumCorrectedCriticals(t, tc[phflash.H2], pc[phflash.H2])
		tcUsed[phflash.H2] = tEff
		pcUsed[phflash.H2] = pEff
	}

	var pure [phflash.NC]PureParams
	for i := 0; i < phflash.NC; i++ {
		pure[i] = Pure(t, tcUsed[i], pcUsed[i], omega[i], rGas)
	}
	aMix, bMix, daMixDT := MixParams(x, pure, kij)

	return &Bundle{
		T:       t,
		Pure:    pure,
		TcUsed:  tcUsed,
		PcUsed:  pcUsed,
		Kij:     kij,
		AMix:    aMix,
		BMix:    bMix,
		DaMixDT: daMixDT,
	}
}

// PhaseKind selects which cubic root a phase evaluation should use.
type PhaseKind int

const (
	Liquid PhaseKind = iota
	Vapor
)

// PhaseResult bundles everything downstream callers (VLE, enthalpy) need
// out of one EOS evaluation at a fixed (T, P, composition, phase).
type PhaseResult struct {
	Z      float64
	LnPhi  phflash.Vec
	Bundle *Bundle
	ADim   float64
	BDim   float64
}

// Evaluate solves the cubic for Z at (T, P, composition) and computes the
// fugacity coefficients for the requested phase.
func Evaluate(t, p float64, tc, pc, omega phflash.Vec, kij phflash.Mat, comp phflash.Vec, useQuantumH2 bool, rGas float64, kind PhaseKind) (*PhaseResult, error) {
	bundle := NewBundle(t, tc, pc, omega, kij, comp, useQuantumH2, rGas)
	aDim, bDim := DimensionlessAB(bundle.AMix, bundle.BMix, p, t, rGas)

	roots, err := SolveZ(aDim, bDim)
	if err != nil {
		return nil, err
	}

	z := roots.ZLiquid
	if kind == Vapor {
		z = roots.ZVapor
	}

	s := PartialAMixSum(comp, bundle.Pure, kij)
	lnPhi, err := LnPhi(z, aDim, bDim, bundle.AMix, bundle.BMix, bVec(bundle.Pure), s)
	if err != nil {
		return nil, err
	}

	return &PhaseResult{Z: z, LnPhi: lnPhi, Bundle: bundle, ADim: aDim, BDim: bDim}, nil
}
