package component

import (
	"fmt"
	"math"
)

// TempRange is an inclusive validity range in Kelvin.
type TempRange struct {
	Low, High float64
}

func (r TempRange) Contains(t float64) bool {
	return t >= r.Low && t <= r.High
}

// ShomateCoeffs are the NIST-WebBook-style Shomate coefficients for
// Cp/H/S over a single temperature range, with t = T(K)/1000.
//
//	Cp = A + B*t + C*t^2 + D*t^3 + E/t^2          [J/mol/K]
//	H - H_ref = A*t + B*t^2/2 + C*t^3/3 + D*t^4/4 - E/t + F - H   [kJ/mol]
type ShomateCoeffs struct {
	Range      TempRange
	A, B, C, D, E, F, H float64
}

// NASA7Coeffs are the standard 7-coefficient NASA polynomial form over a
// single temperature range:
//
//	Cp/R = a1 + a2*T + a3*T^2 + a4*T^3 + a5*T^4
//	H/RT = a1 + a2*T/2 + a3*T^2/3 + a4*T^3/4 + a5*T^4/5 + a6/T
type NASA7Coeffs struct {
	Range           TempRange
	A1, A2, A3, A4, A5, A6, A7 float64
}

// IdealGasModel carries both a Shomate and a NASA-7 representation of a
// component's ideal-gas enthalpy, each piecewise over disjoint
// temperature ranges, per the data model's dual-model requirement. The
// two families are independently sourced (NIST WebBook Shomate fits and
// Burcat/GRI-Mech-style NASA-7 fits); CheckContinuity reports the largest
// enthalpy jump across their declared segment boundaries.
type IdealGasModel struct {
	Name    string
	Shomate []ShomateCoeffs
	NASA7   []NASA7Coeffs
}

// shomateAt locates the Shomate segment covering t, or an error if t
// falls outside every segment.
func (m IdealGasModel) shomateAt(t float64) (ShomateCoeffs, error) {
	for _, s := range m.Shomate {
		if s.Range.Contains(t) {
			return s, nil
		}
	}
	return ShomateCoeffs{}, fmt.Errorf("component %s: temperature %.2f K outside Shomate validity ranges", m.Name, t)
}

func (m IdealGasModel) nasaAt(t float64) (NASA7Coeffs, error) {
	for _, n := range m.NASA7 {
		if n.Range.Contains(t) {
			return n, nil
		}
	}
	return NASA7Coeffs{}, fmt.Errorf("component %s: temperature %.2f K outside NASA-7 validity ranges", m.Name, t)
}

// ShomateCp evaluates molar heat capacity, J/mol/K, from the Shomate fit.
func (m IdealGasModel) ShomateCp(t float64) (float64, error) {
	s, err := m.shomateAt(t)
	if err != nil {
		return 0, err
	}
	tt := t / 1000
	return s.A + s.B*tt + s.C*tt*tt + s.D*tt*tt*tt + s.E/(tt*tt), nil
}

// ShomateH evaluates molar enthalpy relative to 298.15 K, J/mol, from the
// Shomate fit.
func (m IdealGasModel) ShomateH(t float64) (float64, error) {
	s, err := m.shomateAt(t)
	if err != nil {
		return 0, err
	}
	tt := t / 1000
	hKJ := s.A*tt + s.B*tt*tt/2 + s.C*tt*tt*tt/3 + s.D*tt*tt*tt*tt/4 - s.E/tt + s.F - s.H
	return hKJ * 1000, nil
}

// NASA7Cp evaluates molar heat capacity, J/mol/K, from the NASA-7 fit.
func (m IdealGasModel) NASA7Cp(t float64, rGas float64) (float64, error) {
	n, err := m.nasaAt(t)
	if err != nil {
		return 0, err
	}
	return rGas * (n.A1 + n.A2*t + n.A3*t*t + n.A4*t*t*t + n.A5*t*t*t*t), nil
}

// NASA7H evaluates molar enthalpy, J/mol, from the NASA-7 fit (absolute,
// referenced to the formation enthalpy baked into A6).
func (m IdealGasModel) NASA7H(t float64, rGas float64) (float64, error) {
	n, err := m.nasaAt(t)
	if err != nil {
		return 0, err
	}
	hOverRT := n.A1 + n.A2*t/2 + n.A3*t*t/3 + n.A4*t*t*t/4 + n.A5*t*t*t*t/5 + n.A6/t
	return hOverRT * rGas * t, nil
}

// CheckContinuity reports the largest relative enthalpy jump found across
// the model's declared segment boundaries, Shomate and NASA-7 alike. On
// each side of a boundary the enthalpy is taken from NASA-7 wherever a
// NASA-7 segment covers that temperature and from Shomate otherwise: a
// Shomate boundary inside NASA-7 coverage is evaluated with NASA-7 on both
// sides, so a Shomate-to-Shomate jump there is not measured, and the end
// of NASA-7 coverage next to a Shomate segment compares NASA-7 with
// Shomate. Boundaries with no valid model on one side are skipped. A
// nonzero result does not by itself invalidate the model: independently-sourced
// polynomial fits routinely disagree by a few percent at their shared
// boundary, and callers are expected to treat this as a soft warning
// rather than a hard failure.
func (m IdealGasModel) CheckContinuity(rGas float64) (maxRelDiff float64, err error) {
	boundaries := map[float64]bool{}
	for _, s := range m.Shomate {
		boundaries[s.Range.Low] = true
		boundaries[s.Range.High] = true
	}
	for _, n := range m.NASA7 {
		boundaries[n.Range.Low] = true
		boundaries[n.Range.High] = true
	}
	for t := range boundaries {
		below, errB := m.enthalpyNear(t-0.01, rGas)
		above, errA := m.enthalpyNear(t+0.01, rGas)
		if errB != nil || errA != nil {
			continue
		}
		denom := math.Max(math.Abs(below), 1.0)
		rel := math.Abs(above-below) / denom
		if rel > maxRelDiff {
			maxRelDiff = rel
		}
	}
	return maxRelDiff, nil
}

func (m IdealGasModel) enthalpyNear(t, rGas float64) (float64, error) {
	if h, err := m.NASA7H(t, rGas); err == nil {
		return h, nil
	}
	return m.ShomateH(t)
}

var h2IdealGas = IdealGasModel{
	Name: "H2",
	Shomate: []ShomateCoeffs{
		{Range: TempRange{298, 1000}, A: 33.066178, B: -11.363417, C: 11.432816, D: -2.772874, E: -0.158558, F: -9.980797, H: 0},
		{Range: TempRange{1000, 2500}, A: 18.563083, B: 12.257357, C: -2.859786, D: 0.268238, E: 1.977990, F: -1.147438, H: 0},
	},
	NASA7: []NASA7Coeffs{
		{Range: TempRange{200, 1000}, A1: 3.298124, A2: 8.249442e-4, A3: -8.143015e-7, A4: -9.475434e-11, A5: 4.134872e-13, A6: -1012.5209, A7: -3.294094},
		{Range: TempRange{1000, 3500}, A1: 2.991423, A2: 7.000644e-4, A3: -5.633829e-8, A4: -9.231578e-12, A5: 1.582752e-15, A6: -835.034, A7: -1.35511},
	},
}

var n2IdealGas = IdealGasModel{
	Name: "N2",
	Shomate: []ShomateCoeffs{
		{Range: TempRange{100, 500}, A: 28.98641, B: 1.853978, C: -9.647459, D: 16.63537, E: 0.000117, F: -8.671914, H: 0},
		{Range: TempRange{500, 2000}, A: 19.50583, B: 19.88705, C: -8.598535, D: 1.369784, E: 0.527601, F: -4.935202, H: 0},
	},
	NASA7: []NASA7Coeffs{
		{Range: TempRange{300, 1000}, A1: 3.298677, A2: 1.408240e-3, A3: -3.963222e-6, A4: 5.641515e-9, A5: -2.444855e-12, A6: -1020.8999, A7: 3.950372},
		{Range: TempRange{1000, 5000}, A1: 2.926640, A2: 1.487977e-3, A3: -5.684761e-7, A4: 1.009704e-10, A5: -6.753351e-15, A6: -922.7977, A7: 5.980528},
	},
}

var o2IdealGas = IdealGasModel{
	Name: "O2",
	Shomate: []ShomateCoeffs{
		{Range: TempRange{100, 700}, A: 31.32234, B: -20.23531, C: 57.86644, D: -36.50624, E: -0.007374, F: -8.903471, H: 0},
		{Range: TempRange{700, 2000}, A: 30.03235, B: 8.772972, C: -3.988133, D: 0.788313, E: -0.741599, F: -11.32468, H: 0},
	},
	NASA7: []NASA7Coeffs{
		{Range: TempRange{300, 1000}, A1: 3.212936, A2: 1.127486e-3, A3: -5.756150e-7, A4: 1.313877e-9, A5: -8.768554e-13, A6: -1005.249, A7: 6.034738},
		{Range: TempRange{1000, 5000}, A1: 3.697578, A2: 6.135197e-4, A3: -1.258842e-7, A4: 1.775281e-11, A5: -1.136435e-15, A6: -1233.930, A7: 3.189166},
	},
}

var nh3IdealGas = IdealGasModel{
	Name: "NH3",
	Shomate: []ShomateCoeffs{
		{Range: TempRange{298, 1400}, A: 19.99563, B: 49.77119, C: -15.37599, D: 1.921168, E: 0.189174, F: -53.30667, H: -45.89806},
	},
	NASA7: []NASA7Coeffs{
		{Range: TempRange{300, 1000}, A1: 4.286027, A2: -4.660523e-3, A3: 2.171659e-5, A4: -2.280959e-8, A5: 8.263804e-12, A6: -6741.728, A7: -0.6258},
		{Range: TempRange{1000, 3000}, A1: 2.634452, A2: 5.666096e-3, A3: -1.727835e-6, A4: 2.386711e-10, A5: -1.257854e-14, A6: -6544.696, A7: 6.566393},
	},
}

var h2oIdealGas = IdealGasModel{
	Name: "H2O",
	Shomate: []ShomateCoeffs{
		{Range: TempRange{500, 1700}, A: 30.09200, B: 6.832514, C: 6.793435, D: -2.534480, E: 0.082139, F: -250.8810, H: -241.8264},
		{Range: TempRange{1700, 6000}, A: 41.96426, B: 8.622053, C: -1.499780, D: 0.098119, E: -11.15764, F: -272.1797, H: -241.8264},
	},
	NASA7: []NASA7Coeffs{
		{Range: TempRange{300, 1000}, A1: 4.198641, A2: -2.036434e-3, A3: 6.520402e-6, A4: -5.487971e-9, A5: 1.771978e-12, A6: -30293.73, A7: -0.849032},
		{Range: TempRange{1000, 5000}, A1: 2.677038, A2: 2.973182e-3, A3: -7.737689e-7, A4: 9.443351e-11, A5: -4.269020e-15, A6: -29885.89, A7: 6.882550},
	},
}
