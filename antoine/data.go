package antoine

// Of the five fixed components, only ammonia and water condense at
// conditions the flash core is expected to see in practice (H2, N2, O2
// stay supercritical across ordinary feed conditions); Antoine
// coefficients are therefore only carried for those two. They serve only
// as an independent, cheap saturation-pressure cross-check (package
// crosscheck), never as the authoritative VLE result.
var (
	// Ammonia, ln(P[kPa]) = A - B/(T[°C]+C), valid roughly -83 to 60 °C.
	NH3 = &Antoine{
		Name:    "ammonia",
		Formula: "NH3",
		A:       15.499,
		B:       2357.6,
		C:       250.0,
		H:       23.35,
		Range:   TempRange{Low: -83, High: 60},
		Tn:      -33.34,
	}

	// Water, ln(P[kPa]) = A - B/(T[°C]+C), valid 1-100 °C.
	H2O = &Antoine{
		Name:    "water",
		Formula: "H2O",
		A:       16.3872,
		B:       3885.70,
		C:       230.170,
		H:       40.65,
		Range:   TempRange{Low: 1, High: 100},
		Tn:      100.0,
	}
)

// PressurePa calculates the saturation pressure in Pa at temperature t
// given in Kelvin. Returns an error if t falls outside the Antoine
// correlation's valid range.
func (a *Antoine) PressurePa(tKelvin float64) (float64, error) {
	kPa, err := a.Pressure(tKelvin - 273.15)
	if err != nil {
		return 0, err
	}
	return kPa * 1000, nil
}
