package vle

import (
	"math"

	"github.com/solventus/phflash"
)

// WilsonK returns the Wilson-correlation initial K-value estimate at
// (T, P) given critical temperatures, pressures and acentric factors:
//
//	K_i = (Pc_i / P) * exp[5.373 (1 + omega_i)(1 - Tc_i/T)]
func WilsonK(t, p float64, tc, pc, omega phflash.Vec) phflash.Vec {
	var k phflash.Vec
	for i := 0; i < phflash.NC; i++ {
		k[i] = (pc[i] / p) * math.Exp(5.373*(1+omega[i])*(1-tc[i]/t))
	}
	return k
}
