package phflash

import (
	"errors"
	"math"
)

// degenerateScale sets the relative threshold used to decide that the
// cubic discriminant is numerically indistinguishable from zero. Per spec
// section 4.1, on a near-degenerate discriminant the single-root branch is
// preferred over the three-real-root branch, since rounding error there is
// more likely to fabricate a spurious third root than to hide one.
const degenerateScale = 1e-14

// SolveCubic solves a*x^3 + b*x^2 + c*x + d = 0 and returns all three roots
// (possibly complex). Uses Cardano's method on the depressed cubic.
func SolveCubic(a, b, c, d float64) ([3]complex128, error) {
	if a == 0 {
		return [3]complex128{}, errors.New("equation provided is not cubic (a = 0)")
	}

	// 1. Normalize coefficients
	b /= a
	c /= a
	d /= a

	// 2. Depressed cubic: y^3 + py + q = 0
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d

	// 3. Discriminant
	delta := (q*q)/4 + (p*p*p)/27

	// Scale for the near-degenerate check, so the threshold tracks the
	// magnitude of the coefficients rather than being purely absolute.
	scale := math.Max(1, math.Max(math.Abs(p*p*p/27), math.Abs(q*q/4)))

	// 4. Cube roots of unity
	omega := complex(-0.5, math.Sqrt(3)/2)
	omega2 := complex(-0.5, -math.Sqrt(3)/2)

	var roots [3]complex128

	if delta >= 0 || math.Abs(delta) < degenerateScale*scale {
		// One real root and two complex (or near-degenerate: prefer this
		// branch rather than risk losing a root to rounding noise in the
		// three-real-root formula's acos argument).
		u := complex(math.Cbrt(-q/2+math.Sqrt(math.Max(delta, 0))), 0)
		v := complex(math.Cbrt(-q/2-math.Sqrt(math.Max(delta, 0))), 0)

		y1 := u + v
		y2 := u*omega + v*omega2
		y3 := u*omega2 + v*omega

		shift := complex(b/3, 0)
		roots[0] = y1 - shift
		roots[1] = y2 - shift
		roots[2] = y3 - shift
	} else {
		// Three real roots
		r := math.Sqrt(-p * p * p / 27)
		phi := math.Acos(Clamp(-q/(2*math.Sqrt(-(p*p*p)/27)), -1, 1))
		t := 2 * math.Cbrt(r)

		y1 := complex(t*math.Cos(phi/3), 0)
		y2 := complex(t*math.Cos((phi+2*math.Pi)/3), 0)
		y3 := complex(t*math.Cos((phi+4*math.Pi)/3), 0)

		shift := complex(b/3, 0)
		roots[0] = y1 - shift
		roots[1] = y2 - shift
		roots[2] = y3 - shift
	}

	return roots, nil
}
