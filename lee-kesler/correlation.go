// Package leekesler provides a generalized corresponding-states estimate
// of the vapor compressibility factor, used only as an optional,
// non-authoritative cross-check on the PR-EOS result (see package
// crosscheck). It is never used to determine any converged flash
// state.
package leekesler

// Z evaluates the corresponding-states compressibility factor at reduced
// pressure pr and reduced temperature tr for a fluid with acentric factor
// omega: Z = Z0 + omega*Z1.
//
// Usage:
//
//	z, err := leekesler.Z(pr, tr, omega)
func Z(pr, tr, omega float64) (float64, error) {
	z0, err := Z0Table.At(pr, tr)
	if err != nil {
		return 0, err
	}
	z1, err := Z1Table.At(pr, tr)
	if err != nil {
		return 0, err
	}
	return z0 + omega*z1, nil
}
