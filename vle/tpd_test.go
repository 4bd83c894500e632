package vle

import (
	"testing"

	"github.com/solventus/phflash"
)

func TestCheckStabilityReturnsResultForStableVapor(t *testing.T) {
	tc := phflash.Vec{33.19, 126.21, 154.58, 405.5, 647.1}
	pc := phflash.Vec{1.313e6, 3.394e6, 5.043e6, 11.28e6, 22.064e6}
	omega := phflash.Vec{-0.215, 0.0372, 0.0222, 0.253, 0.3443}
	var kij phflash.Mat

	z := phflash.Vec{0.7, 0.3, 0, 0, 0}
	res, err := CheckStability(250, 2e6, tc, pc, omega, kij, false, phflash.R, z)
	if err != nil {
		t.Fatalf("CheckStability: %v", err)
	}
	_ = res // a highly supercritical H2/N2 vapor should normally report stable
}

func TestCheckStabilityDetectsInstabilityForNH3H2O(t *testing.T) {
	tc := phflash.Vec{33.19, 126.21, 154.58, 405.5, 647.1}
	pc := phflash.Vec{1.313e6, 3.394e6, 5.043e6, 11.28e6, 22.064e6}
	omega := phflash.Vec{-0.215, 0.0372, 0.0222, 0.253, 0.3443}
	var kij phflash.Mat

	z := phflash.Vec{0, 0, 0, 0.4, 0.6}
	res, err := CheckStability(340, 5e5, tc, pc, omega, kij, false, phflash.R, z)
	if err != nil {
		t.Fatalf("CheckStability: %v", err)
	}
	if !res.Unstable {
		t.Fatalf("expected TPD to report instability, got %+v", res)
	}
	if res.Unstable {
		if !phflash.AllFinite(res.W) {
			t.Errorf("unstable result has non-finite W: %v", res.W)
		}
		if !phflash.AllFinite(res.K) {
			t.Errorf("unstable result has non-finite K: %v", res.K)
		}
	}
}
