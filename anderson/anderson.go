// Package anderson implements a generic, phase-unaware Anderson
// acceleration device for the successive-substitution map g: x -> x -
// f(x). It is deliberately ignorant of what x and f represent; the VLE
// solver drives it on the K-value vector itself, not on ln K, so the
// nonnegativity check in Update applies to the K values. The outer P-H
// driver does not use it.
package anderson

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/solventus/phflash"
)

// MinDepth and MaxDepth bound the accelerator's history depth.
const (
	MinDepth = 2
	MaxDepth = 10
	// maxCondition is the normal-equations condition-number ceiling above
	// which the least-squares step is considered ill-conditioned and the
	// accelerator falls back to an unaccelerated step.
	maxCondition = 1e12
)

// Accelerator holds rolling history buffers of iterate/residual pairs up
// to a fixed maximum depth, sized once at construction.
type Accelerator struct {
	maxDepth int
	xs       []phflash.Vec
	fs       []phflash.Vec
}

// New constructs an Accelerator with the given maximum depth, in
// [MinDepth, MaxDepth].
func New(maxDepth int) (*Accelerator, error) {
	if maxDepth < MinDepth || maxDepth > MaxDepth {
		return nil, fmt.Errorf("anderson: max depth %d out of range [%d, %d]", maxDepth, MinDepth, MaxDepth)
	}
	return &Accelerator{
		maxDepth: maxDepth,
		xs:       make([]phflash.Vec, 0, maxDepth),
		fs:       make([]phflash.Vec, 0, maxDepth),
	}, nil
}

// Reset discards all stored history, returning the accelerator to its
// just-constructed state.
func (a *Accelerator) Reset() {
	a.xs = a.xs[:0]
	a.fs = a.fs[:0]
}

// Depth reports how many (x, f) pairs are currently stored.
func (a *Accelerator) Depth() int {
	return len(a.xs)
}

// Update records (xCurrent, fCurrent) and proposes an accelerated next
// iterate. ok is false when the accelerator declines to propose a step
// (fewer than two iterates stored, ill-conditioned normal equations, or a
// proposal containing NaN or a negative component) — callers must fall
// back to the unaccelerated xNext they pass in.
func (a *Accelerator) Update(xCurrent, fCurrent, xNextUnaccelerated phflash.Vec) (xNext phflash.Vec, ok bool) {
	a.push(xCurrent, fCurrent)

	m := len(a.fs)
	if m < MinDepth {
		return xNextUnaccelerated, false
	}

	gamma, condOK := a.solveGamma(m)
	if !condOK {
		return xNextUnaccelerated, false
	}

	var proposed phflash.Vec
	for k := 0; k < m; k++ {
		for i := 0; i < phflash.NC; i++ {
			proposed[i] += gamma[k] * (a.xs[k][i] - a.fs[k][i])
		}
	}

	if !phflash.AllFinite(proposed) {
		return xNextUnaccelerated, false
	}
	for i := 0; i < phflash.NC; i++ {
		if proposed[i] < 0 {
			return xNextUnaccelerated, false
		}
	}

	return proposed, true
}

func (a *Accelerator) push(x, f phflash.Vec) {
	a.xs = append(a.xs, x)
	a.fs = append(a.fs, f)
	if len(a.xs) > a.maxDepth {
		a.xs = a.xs[1:]
		a.fs = a.fs[1:]
	}
}

// solveGamma minimizes ||sum_k gamma_k f_k||_2 subject to sum_k gamma_k =
// 1, via a Lagrange-multiplier-eliminated normal-equations solve: build
// the Gram matrix G_jk = <f_j, f_k>, solve G*mu = 1 for mu, then
// gamma = mu / sum(mu).
func (a *Accelerator) solveGamma(m int) ([]float64, bool) {
	g := mat.NewDense(m, m, nil)
	for j := 0; j < m; j++ {
		for k := 0; k < m; k++ {
			g.Set(j, k, dot(a.fs[j], a.fs[k]))
		}
	}

	var svd mat.SVD
	ok := svd.Factorize(g, mat.SVDNone)
	if !ok {
		return nil, false
	}
	values := svd.Values(nil)
	if len(values) == 0 || values[len(values)-1] <= 0 {
		return nil, false
	}
	condition := values[0] / values[len(values)-1]
	if math.IsNaN(condition) || math.IsInf(condition, 0) || condition > maxCondition {
		return nil, false
	}

	ones := mat.NewVecDense(m, onesSlice(m))
	mu := mat.NewVecDense(m, nil)
	if err := mu.SolveVec(g, ones); err != nil {
		return nil, false
	}

	sum := 0.0
	for k := 0; k < m; k++ {
		sum += mu.AtVec(k)
	}
	if sum == 0 || math.IsNaN(sum) {
		return nil, false
	}

	gamma := make([]float64, m)
	for k := 0; k < m; k++ {
		gamma[k] = mu.AtVec(k) / sum
	}
	return gamma, true
}

func dot(a, b phflash.Vec) float64 {
	s := 0.0
	for i := 0; i < phflash.NC; i++ {
		s += a[i] * b[i]
	}
	return s
}

func onesSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 1
	}
	return s
}
