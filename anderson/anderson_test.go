package anderson

import (
	"math"
	"testing"

	"github.com/solventus/phflash"
)

func TestNewRejectsOutOfRangeDepth(t *testing.T) {
	if _, err := New(1); err == nil {
		t.Fatal("expected error for depth below MinDepth")
	}
	if _, err := New(11); err == nil {
		t.Fatal("expected error for depth above MaxDepth")
	}
}

func TestUpdateFallsBackBelowMinDepth(t *testing.T) {
	acc, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x := phflash.Vec{1, 1, 1, 1, 1}
	f := phflash.Vec{0.1, 0.1, 0.1, 0.1, 0.1}
	fallback := phflash.Vec{0.9, 0.9, 0.9, 0.9, 0.9}

	_, ok := acc.Update(x, f, fallback)
	if ok {
		t.Fatal("expected fallback on first call (only one history point)")
	}
}

func TestUpdateAcceleratesLinearContraction(t *testing.T) {
	acc, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Simulate a contracting fixed-point map x_{n+1} = 0.5*x_n (residual
	// f_n = x_n - x_{n+1} = 0.5*x_n) and feed the accelerator several
	// successive iterates.
	x := phflash.Vec{1, 1, 1, 1, 1}
	var ok bool
	var proposed phflash.Vec
	for i := 0; i < 5; i++ {
		next := scale(x, 0.5)
		f := sub(x, next)
		proposed, ok = acc.Update(x, f, next)
		if ok {
			x = proposed
		} else {
			x = next
		}
	}
	if !phflash.AllFinite(x) {
		t.Fatalf("iterate went non-finite: %v", x)
	}
	for i := 0; i < phflash.NC; i++ {
		if math.Abs(x[i]) > 1 {
			t.Errorf("expected contraction toward 0, got x[%d] = %v", i, x[i])
		}
	}
}

func TestResetClearsHistory(t *testing.T) {
	acc, _ := New(4)
	x := phflash.Vec{1, 1, 1, 1, 1}
	f := phflash.Vec{0.1, 0.1, 0.1, 0.1, 0.1}
	acc.Update(x, f, x)
	if acc.Depth() == 0 {
		t.Fatal("expected nonzero depth after an update")
	}
	acc.Reset()
	if acc.Depth() != 0 {
		t.Errorf("Depth() after Reset = %d, want 0", acc.Depth())
	}
}

func TestUpdateRejectsNegativeProposal(t *testing.T) {
	acc, _ := New(4)
	// Orthogonal residuals make the Gram matrix the identity, so gamma =
	// (0.5, 0.5) and the proposal 0.5*(x1-f1) + 0.5*(x2-f2) is
	// (-2.5, -2.5, -2, -2, -2): well conditioned, but negative.
	x1 := phflash.Vec{1, 1, 1, 1, 1}
	f1 := phflash.Vec{1, 0, 0, 0, 0}
	acc.Update(x1, f1, x1)

	x2 := phflash.Vec{-5, -5, -5, -5, -5}
	f2 := phflash.Vec{0, 1, 0, 0, 0}
	fallback := phflash.Vec{0.5, 0.5, 0.5, 0.5, 0.5}
	_, ok := acc.Update(x2, f2, fallback)
	if ok {
		t.Fatal("a proposal with negative components was accepted")
	}
}

func scale(v phflash.Vec, s float64) phflash.Vec {
	var out phflash.Vec
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

func sub(a, b phflash.Vec) phflash.Vec {
	var out phflash.Vec
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}
