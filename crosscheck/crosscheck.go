// Package crosscheck runs the generalized corresponding-states and
// saturation correlations (packages abbott, leekesler, liquids, antoine)
// against a converged flash result as an independent, non-authoritative
// consistency check on the PR-EOS vapor and liquid roots. None of these
// estimates ever feed back into the VLE solve; a large disagreement is
// only ever logged, never treated as a solver failure.
package crosscheck

import (
	"github.com/solventus/phflash"
	"github.com/solventus/phflash/abbott"
	"github.com/solventus/phflash/antoine"
	leekesler "github.com/solventus/phflash/lee-kesler"
	"github.com/solventus/phflash/liquids"
	"github.com/solventus/phflash/virial"
)

// Report holds whatever of the four correlations applied at the queried
// state; each Has* flag is false when the correlation's validity range
// excluded the point (e.g. liquid Rackett above Tc, or Lee-Kesler outside
// its tabulated grid), not when it disagrees with the PR result.
type Report struct {
	VirialZ       float64
	HasVirialZ    bool
	LeeKeslerZ    float64
	HasLeeKeslerZ bool
	RackettVL     float64
	HasRackettVL  bool
	AntoinePsatPa float64
	HasAntoine    bool
}

// PseudoCriticals computes Kay's-rule mole-fraction-averaged pseudo
// critical properties for a mixture, the standard cheap way to apply a
// pure-fluid corresponding-states correlation to a mixture.
func PseudoCriticals(x, tc, pc, omega phflash.Vec) (tcMix, pcMix, omegaMix float64) {
	for i := 0; i < phflash.NC; i++ {
		tcMix += x[i] * tc[i]
		pcMix += x[i] * pc[i]
		omegaMix += x[i] * omega[i]
	}
	return
}

// VaporChecks evaluates the abbott generalized second-virial Z and the
// leekesler corresponding-states Z at (t, p) for a vapor-phase pseudo
// critical point, filling in only the estimates whose validity range
// covers this state.
func VaporChecks(t, p, tcMix, pcMix, omegaMix, rGas float64) Report {
	var rep Report

	tr := t / tcMix
	prR := p / pcMix
	if tr > 0 {
		b0, err0 := abbott.B0(tr)
		b1, err1 := abbott.B1(tr)
		if err0 == nil && err1 == nil {
			b := (rGas * tcMix / pcMix) * (b0 + omegaMix*b1)
			if z, err := virial.CompressibilityTwoTerm(t, p, rGas, b); err == nil {
				rep.VirialZ = z
				rep.HasVirialZ = true
			}
		}
	}

	if z, err := leekesler.Z(prR, tr, omegaMix); err == nil {
		rep.LeeKeslerZ = z
		rep.HasLeeKeslerZ = true
	}

	return rep
}

// rackettZc is the widely used Rackett-correlation estimate of the
// critical compressibility factor from the acentric factor, used only to
// back out a critical molar volume for liquids.Vsat (the package does not
// itself carry tabulated Vc/Zc data for these components).
func rackettZc(omega float64) float64 {
	return 0.2905 - 0.085*omega
}

// LiquidCheck evaluates the Rackett saturated-liquid molar volume at
// reduced temperature t/tcMix, returning ok=false at or above the
// critical temperature where the correlation does not apply.
func LiquidCheck(t, tcMix, pcMix, omegaMix, rGas float64) (vsat float64, ok bool) {
	if t >= tcMix {
		return 0, false
	}
	tr := t / tcMix
	zc := rackettZc(omegaMix)
	vc := zc * rGas * tcMix / pcMix
	v, err := liquids.Vsat(vc, zc, tr)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AntoineCheck cross-checks the saturation pressure of ammonia or water at
// tKelvin against the Antoine correlation. name must be "NH3" or "H2O";
// any other name (or a temperature outside the correlation's validity
// range) returns ok=false.
func AntoineCheck(name string, tKelvin float64) (psatPa float64, ok bool) {
	var a *antoine.Antoine
	switch name {
	case "NH3":
		a = antoine.NH3
	case "H2O":
		a = antoine.H2O
	default:
		return 0, false
	}
	p, err := a.PressurePa(tKelvin)
	if err != nil {
		return 0, false
	}
	return p, true
}
