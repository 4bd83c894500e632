// Package component holds the fixed, immutable data model for the five
// species the flash core is built for: critical properties, ideal-gas
// enthalpy models, and the binary-interaction-parameter matrix. The
// critical table and enthalpy models are built once (via Table and
// LoadBIP) and are safe to share freely across goroutines thereafter;
// nothing in this package is mutated after construction.
package component

import (
	"fmt"

	"github.com/solventus/phflash"
)

// Critical holds a component's critical properties and identity.
type Critical struct {
	Name string
	Tc   float64 // critical temperature, K
	Pc   float64 // critical pressure, Pa
	Omega float64 // acentric factor
}

// Component bundles everything the PR-EOS kernel and enthalpy aggregator
// need for one of the five fixed species.
type Component struct {
	Critical Critical
	IdealGas IdealGasModel
}

// Table is the fixed, ordered critical-property and ideal-gas data for
// {H2, N2, O2, NH3, H2O}, indexed by the phflash component constants.
var Table = [phflash.NC]Component{
	phflash.H2: {
		Critical: Critical{Name: "H2", Tc: 33.19, Pc: 1.313e6, Omega: -0.215},
		IdealGas: h2IdealGas,
	},
	phflash.N2: {
		Critical: Critical{Name: "N2", Tc: 126.21, Pc: 3.394e6, Omega: 0.0372},
		IdealGas: n2IdealGas,
	},
	phflash.O2: {
		Critical: Critical{Name: "O2", Tc: 154.58, Pc: 5.043e6, Omega: 0.0222},
		IdealGas: o2IdealGas,
	},
	phflash.NH3: {
		Critical: Critical{Name: "NH3", Tc: 405.5, Pc: 11.28e6, Omega: 0.253},
		IdealGas: nh3IdealGas,
	},
	phflash.H2O: {
		Critical: Critical{Name: "H2O", Tc: 647.1, Pc: 22.064e6, Omega: 0.3443},
		IdealGas: h2oIdealGas,
	},
}

// Tc returns the critical temperatures of all five components, in order.
func Tc() phflash.Vec {
	var v phflash.Vec
	for i := 0; i < phflash.NC; i++ {
		v[i] = Table[i].Critical.Tc
	}
	return v
}

// Pc returns the critical pressures of all five components, in order.
func Pc() phflash.Vec {
	var v phflash.Vec
	for i := 0; i < phflash.NC; i++ {
		v[i] = Table[i].Critical.Pc
	}
	return v
}

// Omega returns the acentric factors of all five components, in order.
func Omega() phflash.Vec {
	var v phflash.Vec
	for i := 0; i < phflash.NC; i++ {
		v[i] = Table[i].Critical.Omega
	}
	return v
}

// ValidateComposition checks the normalization invariant:
// all elements finite and nonnegative, summing to 1 within tolerance.
func ValidateComposition(z phflash.Vec) error {
	if !phflash.AllFinite(z) {
		return phflash.NewError(phflash.ErrInputBadComposition, "ValidateComposition", fmt.Errorf("composition contains non-finite value: %v", z))
	}
	if !phflash.AllNonNegative(z) {
		return phflash.NewError(phflash.ErrInputBadComposition, "ValidateComposition", fmt.Errorf("composition contains negative value: %v", z))
	}
	const tol = 1e-8
	s := phflash.Sum(z)
	if s < 1-tol || s > 1+tol {
		return phflash.NewError(phflash.ErrInputBadComposition, "ValidateComposition", fmt.Errorf("composition sums to %.10g, want 1±%.0e", s, tol))
	}
	return nil
}
