package flash

import (
	"math"

	"github.com/solventus/phflash"
	"github.com/solventus/phflash/component"
	"github.com/solventus/phflash/enthalpy"
)

// minInitialT, maxInitialT are the initial-temperature-estimate clamp bounds.
const (
	minInitialT = 50
	maxInitialT = 1500
)

// InitialTemperature produces a rough initial temperature estimate by
// Newton-inverting the all-vapor ideal-gas enthalpy at the reference
// state, then clips to [minInitialT, maxInitialT]. If prev is non-nil its
// T is used as the seed instead of TRef.
func InitialTemperature(z phflash.Vec, hStar float64, models [phflash.NC]component.IdealGasModel, prev *State) float64 {
	t := phflash.TRef
	if prev != nil && prev.T > 0 {
		t = prev.T
	}

	for iter := 0; iter < 50; iter++ {
		t = phflash.Clamp(t, minInitialT, maxInitialT)
		h, err := enthalpy.IdealGasMixtureEnthalpy(z, models, t, phflash.R)
		if err != nil {
			break
		}
		diff := hStar - h
		if math.Abs(diff) < 1 {
			break
		}
		cp, err := enthalpy.IdealGasMixtureCp(z, models, t, phflash.R)
		if err != nil || cp <= 0 {
			break
		}
		dt := diff / cp
		dt = phflash.Clamp(dt, -200, 200)
		t += dt
	}

	return phflash.Clamp(t, minInitialT, maxInitialT)
}
