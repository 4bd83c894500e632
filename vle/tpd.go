package vle

import (
	"math"

	"github.com/solventus/phflash"

	"github.com/solventus/phflash/pr"
)

// MaxTPDTrials and the per-trial iteration cap/tolerance from spec
// section 4.3.
const (
	MaxTPDTrials  = 7
	maxTPDIter    = 20
	tpdTol        = 1e-8
	tpdUnstableAt = -1e-8
	trivialKTol   = 1e-3
)

// StabilityResult reports the outcome of a tangent-plane-distance
// analysis at a fixed (T, P, z).
type StabilityResult struct {
	Unstable bool
	W        phflash.Vec // the minimizing trial composition, if unstable
	K        phflash.Vec // w_i/z_i (or z_i/w_i), a seed for VLE re-initialization
	TPDStar  float64
}

type tpdSeed struct {
	w          phflash.Vec
	trialKind  pr.PhaseKind
	refKind    pr.PhaseKind
}

// CheckStability runs Michelsen-style tangent-plane-distance stability
// analysis at (T, P, z): pure-component seeds plus Wilson-derived
// vapor-like and liquid-like trials (MaxTPDTrials total), each iterated
// toward a stationary point of the tangent plane. The first seed to
// converge to a non-trivial composition with TPD* < tpdUnstableAt is
// reported as the instability.
func CheckStability(t, p float64, tc, pc, omega phflash.Vec, kij phflash.Mat, useQuantumH2 bool, rGas float64, z phflash.Vec) (StabilityResult, error) {
	wilsonK := WilsonK(t, p, tc, pc, omega)
	vaporSeed, liquidSeed := wilsonSeeds(z, wilsonK)

	seeds := make([]tpdSeed, 0, MaxTPDTrials)
	for i := 0; i < phflash.NC; i++ {
		var w phflash.Vec
		const purity = 0.98
		remainder := (1 - purity) / float64(phflash.NC-1)
		for j := 0; j < phflash.NC; j++ {
			if j == i {
				w[j] = purity
			} else {
				w[j] = remainder
			}
		}
		seeds = append(seeds, tpdSeed{w: w, trialKind: pr.Vapor, refKind: pr.Liquid})
	}
	seeds = append(seeds, tpdSeed{w: vaporSeed, trialKind: pr.Vapor, refKind: pr.Liquid})
	seeds = append(seeds, tpdSeed{w: liquidSeed, trialKind: pr.Liquid, refKind: pr.Vapor})

	for _, seed := range seeds {
		refRes, err := pr.Evaluate(t, p, tc, pc, omega, kij, z, useQuantumH2, rGas, seed.refKind)
		if err != nil {
			continue
		}

		w := seed.w
		var lastW phflash.Vec
		converged := false
		for iter := 0; iter < maxTPDIter; iter++ {
			trialRes, err := pr.Evaluate(t, p, tc, pc, omega, kij, w, useQuantumH2, rGas, seed.trialKind)
			if err != nil {
				break
			}
			var raw phflash.Vec
			for i := 0; i < phflash.NC; i++ {
				raw[i] = z[i] * math.Exp(refRes.LnPhi[i]-trialRes.LnPhi[i])
			}
			if !phflash.AllFinite(raw) {
				break
			}
			wNew := phflash.Normalize(raw)
			lastW = w
			w = wNew

			maxDelta := 0.0
			for i := 0; i < phflash.NC; i++ {
				if d := math.Abs(w[i] - lastW[i]); d > maxDelta {
					maxDelta = d
				}
			}
			if maxDelta < tpdTol {
				converged = true
				break
			}
		}
		if !converged {
			continue
		}

		if isTrivial(w, z) {
			continue
		}

		trialRes, err := pr.Evaluate(t, p, tc, pc, omega, kij, w, useQuantumH2, rGas, seed.trialKind)
		if err != nil {
			continue
		}
		tpdStar := 0.0
		for i := 0; i < phflash.NC; i++ {
			if w[i] <= 0 || z[i] <= 0 {
				continue
			}
			tpdStar += w[i] * (math.Log(w[i]) + trialRes.LnPhi[i] - math.Log(z[i]) - refRes.LnPhi[i])
		}

		if tpdStar < tpdUnstableAt {
			var k phflash.Vec
			for i := 0; i < phflash.NC; i++ {
				if z[i] <= 0 {
					// Absent from the feed: its K multiplies a zero term
					// in Rachford-Rice regardless, but must stay finite
					// so 0*K doesn't poison the sum with a NaN.
					k[i] = wilsonK[i]
					continue
				}
				switch {
				case seed.trialKind == pr.Vapor:
					k[i] = w[i] / z[i]
				case w[i] > 0:
					k[i] = z[i] / w[i]
				default:
					k[i] = wilsonK[i]
				}
			}
			return StabilityResult{Unstable: true, W: w, K: k, TPDStar: tpdStar}, nil
		}
	}

	return StabilityResult{Unstable: false}, nil
}

func isTrivial(w, z phflash.Vec) bool {
	for i := 0; i < phflash.NC; i++ {
		if z[i] <= 0 {
			continue
		}
		if math.Abs(w[i]/z[i]-1) > trivialKTol {
			return false
		}
	}
	return true
}

func wilsonSeeds(z, k phflash.Vec) (vaporLike, liquidLike phflash.Vec) {
	var vRaw, lRaw phflash.Vec
	for i := 0; i < phflash.NC; i++ {
		vRaw[i] = z[i] * k[i]
		lRaw[i] = z[i] / k[i]
	}
	return phflash.Normalize(vRaw), phflash.Normalize(lRaw)
}
