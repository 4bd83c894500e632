// Package virial solves low-density equations of state (the 2- and 3-term
// virial expansions), consuming the second/third virial coefficients
// produced by generalized correlations such as package abbott. It is used
// in this module as an independent, low-pressure consistency check on the
// PR-EOS vapor root, not as a primary solver.
package virial

import (
	"github.com/solventus/phflash"
)

// MaxValidPressure is the upper pressure (Pa) at which the 2-term virial
// equation is considered valid (15 bar, this correlation's original
// validity limit, converted to SI).
const MaxValidPressure = 15 * 1e5

// SolveForVolumeTwoTerm solves the 2-term virial equation for molar volume.
// It uses the approximation V = RT/P + B.
func SolveForVolumeTwoTerm(T, P, R, B float64) (float64, error) {
	if P <= 0 {
		return 0, phflash.ErrPressure
	}
	if P > MaxValidPressure {
		return 0, phflash.ErrHighPressureTwoTerm
	}
	if T <= 0 {
		return 0, phflash.ErrTemp
	}
	if R <= 0 {
		return 0, phflash.ErrUniversalConst
	}
	if B == 0 {
		return 0, phflash.ErrVirialCoeff
	}

	return (R * T / P) + B, nil
}

// SolveForVolumeThreeTerm solves the 3-term virial equation (Leiden form)
// for molar volume. The equation Z = 1 + B/V + C/V^2 rearranges to a cubic
// equation in V, solved with the shared SolveCubic routine.
func SolveForVolumeThreeTerm(T, P, R, B, C float64) ([3]complex128, error) {
	if P <= 0 {
		return [3]complex128{}, phflash.ErrPressure
	}
	if T <= 0 {
		return [3]complex128{}, phflash.ErrTemp
	}
	if R <= 0 {
		return [3]complex128{}, phflash.ErrUniversalConst
	}
	if B == 0 || C == 0 {
		return [3]complex128{}, phflash.ErrVirialCoeff
	}

	a := P / (R * T)
	b := -1.0
	c := -B
	d := -C

	return phflash.SolveCubic(a, b, c, d)
}

// CompressibilityTwoTerm calculates Z = 1 + BP/RT using the 2-term virial
// equation.
func CompressibilityTwoTerm(T, P, R, B float64) (float64, error) {
	if P <= 0 {
		return 0, phflash.ErrPressure
	}
	if P > MaxValidPressure {
		return 0, phflash.ErrHighPressureTwoTerm
	}
	if T <= 0 {
		return 0, phflash.ErrTemp
	}
	if R <= 0 {
		return 0, phflash.ErrUniversalConst
	}
	if B == 0 {
		return 0, phflash.ErrVirialCoeff
	}

	return 1 + (B*P)/(R*T), nil
}

// CompressibilityThreeTerm calculates Z = 1 + B/V + C/V^2 using the 3-term
// virial equation.
func CompressibilityThreeTerm(V, B, C float64) (float64, error) {
	if V <= 0 {
		return 0, phflash.ErrVolume
	}
	if B == 0 || C == 0 {
		return 0, phflash.ErrVirialCoeff
	}

	return 1 + B/V + C/(V*V), nil
}
