package pr

// QuantumCorrectedCriticals applies the Prausnitz-Gunn correction for
// quantum gases to hydrogen's critical temperature and pressure. The
// correction is a pure function of T (and hydrogen's fixed molar mass);
// it approaches the classical (Tc, Pc) smoothly as T grows and applies an
// increasingly large shift toward cryogenic conditions.
//
//	Tc_eff = Tc * (1 + cT / (M*T))
//	Pc_eff = Pc * (1 + cP / (M*T))
//
// with M the molar mass in g/mol and cT, cP the standard Prausnitz-Gunn
// constants for hydrogen (cT = 21.8, cP = 44.2, K*g/mol), as given in
// Reid, Prausnitz & Poling, "The Properties of Gases and Liquids". These
// coefficients are carried verbatim rather than re-fit.
const (
	h2MolarMass  = 2.016 // g/mol
	quantumCT    = 21.8  // K*g/mol
	quantumCP    = 44.2  // K*g/mol
)

// QuantumCorrectedCriticals returns hydrogen's effective (Tc, Pc) at
// temperature t.
func QuantumCorrectedCriticals(t, tc, pc float64) (tcEff, pcEff float64) {
	shift := 1.0 / (h2MolarMass * t)
	tcEff = tc * (1 + quantumCT*shift)
	pcEff = pc * (1 + quantumCP*shift)
	return tcEff, pcEff
}
