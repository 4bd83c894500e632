package vle

import (
	"fmt"
	"math"

	"github.com/solventus/phflash"
)

// Rachford-Rice solver constants.
const (
	TolRR     = 1e-10
	MaxIterRR = 30
)

// RRResult describes the outcome of a Rachford-Rice solve, including the
// single-phase shortcuts this module requires.
type RRResult struct {
	Beta       float64
	AllLiquid  bool
	AllVapor   bool
}

// SolveRachfordRice finds beta solving Σ_i z_i(K_i-1)/(1+beta(K_i-1)) = 0
// over the physical bracket [1/(1-Kmax), 1/(1-Kmin)], using a
// safeguarded Newton/bisection hybrid that never lets a Newton step leave
// the bracket. Before searching, it applies the single-phase shortcuts:
// all-liquid when Σz_iK_i <= 1, all-vapor when Σz_i/K_i <= 1.
func SolveRachfordRice(z, k phflash.Vec) (RRResult, error) {
	sumZK, sumZOverK := 0.0, 0.0
	kMax, kMin := k[0], k[0]
	for i := 0; i < phflash.NC; i++ {
		sumZK += z[i] * k[i]
		sumZOverK += z[i] / k[i]
		if k[i] > kMax {
			kMax = k[i]
		}
		if k[i] < kMin {
			kMin = k[i]
		}
	}
	if sumZK <= 1 {
		return RRResult{Beta: 0, AllLiquid: true}, nil
	}
	if sumZOverK <= 1 {
		return RRResult{Beta: 1, AllVapor: true}, nil
	}

	const pad = 1e-9
	lo := 1.0/(1-kMax) + pad
	hi := 1.0/(1-kMin) - pad
	if lo >= hi {
		return RRResult{}, phflash.NewError(phflash.ErrAlgorithmBadBracket, "SolveRachfordRice", fmt.Errorf("empty bracket [%.6g, %.6g] for Kmax=%.6g Kmin=%.6g", lo, hi, kMax, kMin))
	}

	rr := func(beta float64) float64 {
		s := 0.0
		for i := 0; i < phflash.NC; i++ {
			s += z[i] * (k[i] - 1) / (1 + beta*(k[i]-1))
		}
		return s
	}
	rrPrime := func(beta float64) float64 {
		s := 0.0
		for i := 0; i < phflash.NC; i++ {
			d := k[i] - 1
			denom := 1 + beta*d
			s -= z[i] * d * d / (denom * denom)
		}
		return s
	}

	flo, fhi := rr(lo), rr(hi)
	if flo*fhi > 0 {
		return RRResult{}, phflash.NewError(phflash.ErrAlgorithmBadBracket, "SolveRachfordRice", fmt.Errorf("RR(%.6g)=%.6g and RR(%.6g)=%.6g share a sign", lo, flo, hi, fhi))
	}

	beta := 0.5 * (lo + hi)
	for iter := 0; iter < MaxIterRR; iter++ {
		f := rr(beta)
		if math.Abs(f) < TolRR {
			return RRResult{Beta: phflash.Clamp(beta, 0, 1)}, nil
		}

		useNewton := false
		var trial float64
		if fp := rrPrime(beta); fp != 0 {
			trial = beta - f/fp
			if trial > lo && trial < hi {
				useNewton = true
			}
		}

		if f*flo > 0 {
			lo, flo = beta, f
		} else {
			hi, fhi = beta, f
		}

		if useNewton {
			beta = trial
		} else {
			beta = 0.5 * (lo + hi)
		}
	}

	return RRResult{}, phflash.NewError(phflash.ErrConvergenceMaxIterRR, "SolveRachfordRice", fmt.Errorf("did not converge within %d iterations", MaxIterRR))
}

// ComposeXY derives liquid and vapor compositions from feed z, K-values
// and vapor fraction beta: x_i = z_i / (1 + beta(K_i - 1)), y_i = K_i*x_i.
func ComposeXY(z, k phflash.Vec, beta float64) (x, y phflash.Vec) {
	for i := 0; i < phflash.NC; i++ {
		x[i] = z[i] / (1 + beta*(k[i]-1))
		y[i] = k[i] * x[i]
	}
	return x, y
}
