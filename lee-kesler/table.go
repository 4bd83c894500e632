package leekesler

// table holds a bilinearly-interpolable grid of a corresponding-states
// property over reduced pressure (Pr) and reduced temperature (Tr). Values
// is indexed [TrIndex][PrIndex].
type table struct {
	Pr     []float64
	Tr     []float64
	Values [][]float64
}

// prGrid and trGrid define the compact corresponding-states grid used by
// this package. The retrieval pack this module was built from did not
// carry the full digitized Lee-Kesler chart, so the grid here is derived
// directly from the same generalized Pitzer two-term virial correlation
// already implemented in package abbott (Z0 = 1 + B0*Pr/Tr, Z1 =
// B1*Pr/Tr), evaluated on a coarse grid and bilinearly interpolated. This
// keeps the estimator internally consistent with abbott's correlation
// rather than inventing unrelated numbers, at the cost of validity: like
// the underlying two-term virial form, it should only be trusted at low to
// moderate Pr (below roughly 2) and is not a substitute for the full
// digitized Lee-Kesler tables near the critical point or in the dense
// liquid region.
var prGrid = []float64{0.010, 0.100, 0.200, 0.400, 0.800, 1.000, 1.500, 2.000}
var trGrid = []float64{0.85, 0.90, 1.00, 1.10, 1.20, 1.50, 2.00, 3.00}

// Z0Table is the simple-fluid contribution to the compressibility factor.
var Z0Table = table{
	Pr: prGrid,
	Tr: trGrid,
	Values: [][]float64{
		{0.994537, 0.945374, 0.890748, 0.781496, 0.562992, 0.453740, 0.180610, -0.092520},
		{0.995372, 0.953724, 0.907447, 0.814895, 0.629789, 0.537236, 0.305855, 0.074473},
		{0.996610, 0.966100, 0.932200, 0.864400, 0.728800, 0.661000, 0.491500, 0.322000},
		{0.997461, 0.974608, 0.949216, 0.898432, 0.796863, 0.746079, 0.619118, 0.492158},
		{0.998065, 0.980648, 0.961296, 0.922591, 0.845182, 0.806478, 0.709717, 0.612956},
		{0.999083, 0.990828, 0.981656, 0.963312, 0.926624, 0.908280, 0.862420, 0.816560},
		{0.999719, 0.997190, 0.994379, 0.988758, 0.977517, 0.971896, 0.957844, 0.943792},
		{1.000034, 1.000341, 1.000682, 1.001365, 1.002730, 1.003412, 1.005118, 1.006824},
	},
}

// Z1Table is the acentric-factor correction to the compressibility factor.
var Z1Table = table{
	Pr: prGrid,
	Tr: trGrid,
	Values: [][]float64{
		{-0.002369, -0.023692, -0.047384, -0.094769, -0.189538, -0.236922, -0.355383, -0.473844},
		{-0.001430, -0.014304, -0.028608, -0.057217, -0.114434, -0.143042, -0.214563, -0.286084},
		{-0.000330, -0.003300, -0.006600, -0.013200, -0.026400, -0.033000, -0.049500, -0.066000},
		{0.000216, 0.002158, 0.004316, 0.008633, 0.017265, 0.021582, 0.032373, 0.043163},
		{0.000492, 0.004919, 0.009837, 0.019674, 0.039348, 0.049186, 0.073778, 0.098371},
		{0.000718, 0.007178, 0.014356, 0.028712, 0.057425, 0.071781, 0.107671, 0.143561},
		{0.000648, 0.006482, 0.012964, 0.025928, 0.051857, 0.064821, 0.097231, 0.129642},
		{0.000458, 0.004577, 0.009153, 0.018306, 0.036612, 0.045765, 0.068648, 0.091530},
	},
}
