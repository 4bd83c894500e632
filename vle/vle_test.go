package vle

import (
	"math"
	"testing"

	"github.com/solventus/phflash"
)

func TestWilsonKFiniteAndPositive(t *testing.T) {
	tc := phflash.Vec{33.19, 126.21, 154.58, 405.5, 647.1}
	pc := phflash.Vec{1.313e6, 3.394e6, 5.043e6, 11.28e6, 22.064e6}
	omega := phflash.Vec{-0.215, 0.0372, 0.0222, 0.253, 0.3443}

	k := WilsonK(300, 101325, tc, pc, omega)
	if !phflash.AllFinite(k) {
		t.Fatalf("WilsonK returned non-finite values: %v", k)
	}
	for i, v := range k {
		if v <= 0 {
			t.Errorf("K[%d] = %v, want > 0", i, v)
		}
	}
}

func TestSolveRachfordRiceAllLiquid(t *testing.T) {
	z := phflash.Vec{0.2, 0.2, 0.2, 0.2, 0.2}
	k := phflash.Vec{0.5, 0.5, 0.5, 0.5, 0.5}
	res, err := SolveRachfordRice(z, k)
	if err != nil {
		t.Fatalf("SolveRachfordRice: %v", err)
	}
	if !res.AllLiquid || res.Beta != 0 {
		t.Errorf("expected all-liquid shortcut, got %+v", res)
	}
}

func TestSolveRachfordRiceAllVapor(t *testing.T) {
	z := phflash.Vec{0.2, 0.2, 0.2, 0.2, 0.2}
	k := phflash.Vec{5, 5, 5, 5, 5}
	res, err := SolveRachfordRice(z, k)
	if err != nil {
		t.Fatalf("SolveRachfordRice: %v", err)
	}
	if !res.AllVapor || res.Beta != 1 {
		t.Errorf("expected all-vapor shortcut, got %+v", res)
	}
}

func TestSolveRachfordRiceTwoPhase(t *testing.T) {
	z := phflash.Vec{0.4, 0.6, 0, 0, 0}
	k := phflash.Vec{2.0, 0.5, 1, 1, 1}
	res, err := SolveRachfordRice(z, k)
	if err != nil {
		t.Fatalf("SolveRachfordRice: %v", err)
	}
	if res.Beta <= 0 || res.Beta >= 1 {
		t.Errorf("Beta = %v, want in (0, 1)", res.Beta)
	}

	sum := 0.0
	for i := 0; i < phflash.NC; i++ {
		sum += z[i] * (k[i] - 1) / (1 + res.Beta*(k[i]-1))
	}
	if math.Abs(sum) > 1e-6 {
		t.Errorf("RR residual at solution = %v, want ~0", sum)
	}
}

func TestComposeXYMassBalance(t *testing.T) {
	z := phflash.Vec{0.4, 0.6, 0, 0, 0}
	k := phflash.Vec{2.0, 0.5, 1, 1, 1}
	beta := 0.3
	x, y := ComposeXY(z, k, beta)

	for i := 0; i < phflash.NC; i++ {
		recombined := (1-beta)*x[i] + beta*y[i]
		if math.Abs(recombined-z[i]) > 1e-6 {
			t.Errorf("component %d: mass balance residual = %v", i, recombined-z[i])
		}
	}
}

func TestSolveConvergesForLowPressureNH3H2O(t *testing.T) {
	tc := phflash.Vec{33.19, 126.21, 154.58, 405.5, 647.1}
	pc := phflash.Vec{1.313e6, 3.394e6, 5.043e6, 11.28e6, 22.064e6}
	omega := phflash.Vec{-0.215, 0.0372, 0.0222, 0.253, 0.3443}
	var kij phflash.Mat

	params := Params{Tc: tc, Pc: pc, Omega: omega, Kij: kij, RGas: phflash.R, UseAnderson: true, AndersonDepth: 5, Damping: 1}
	z := phflash.Vec{0, 0, 0, 0.4, 0.6}
	t0, p0 := 340.0, 5e5

	kInit := InitialK(t0, p0, tc, pc, omega)
	res, err := Solve(t0, p0, params, z, kInit)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Beta < 0 || res.Beta > 1 {
		t.Errorf("Beta = %v, want in [0, 1]", res.Beta)
	}
	if res.ZV < res.ZL {
		t.Errorf("ZV = %v < ZL = %v", res.ZV, res.ZL)
	}
}
