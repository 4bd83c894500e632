package pr

import (
	"fmt"
	"math"
	"sort"

	"github.com/solventus/phflash"
)

// ZRoots holds the selected liquid-like and vapor-like compressibility
// factors for one cubic solve. SingleRoot is set when the cubic produced
// only one physical root (supercritical-like behavior), in which case
// ZLiquid == ZVapor.
type ZRoots struct {
	ZLiquid    float64
	ZVapor     float64
	SingleRoot bool
}

// SolveZ solves Z^3 - (1-B)Z^2 + (A-3B^2-2B)Z - (AB-B^2-B^3) = 0 for the
// PR-EOS compressibility factor and selects physical roots: the largest
// real root with Z > B for the vapor phase, the smallest for the liquid
// phase. Roots with Z <= B are unphysical and discarded.
func SolveZ(a, b float64) (ZRoots, error) {
	if a <= 0 {
		return ZRoots{}, phflash.NewError(phflash.ErrNumericRootUnphysical, "SolveZ", fmt.Errorf("A = %.6g must be positive", a))
	}
	if b <= 0 {
		return ZRoots{}, phflash.NewError(phflash.ErrNumericRootUnphysical, "SolveZ", fmt.Errorf("B = %.6g must be positive", b))
	}

	c2 := -(1 - b)
	c1 := a - 3*b*b - 2*b
	c0 := -(a*b - b*b - b*b*b)

	roots, err := phflash.SolveCubic(1, c2, c1, c0)
	if err != nil {
		return ZRoots{}, phflash.NewError(phflash.ErrNumericCubicDiscriminant, "SolveZ", err)
	}

	const imagTol = 1e-9
	var physical []float64
	for _, r := range roots {
		if math.Abs(imag(r)) < imagTol && real(r) > b {
			physical = append(physical, real(r))
		}
	}
	if len(physical) == 0 {
		return ZRoots{}, phflash.NewError(phflash.ErrNumericRootUnphysical, "SolveZ", fmt.Errorf("no physical root with Z > B = %.6g", b))
	}
	sort.Float64s(physical)

	if len(physical) == 1 {
		return ZRoots{ZLiquid: physical[0], ZVapor: physical[0], SingleRoot: true}, nil
	}
	return ZRoots{ZLiquid: physical[0], ZVapor: physical[len(physical)-1]}, nil
}
