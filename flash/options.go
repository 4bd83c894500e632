package flash

import (
	"github.com/solventus/phflash"
	"github.com/solventus/phflash/component"
	"github.com/solventus/phflash/diagnostics"
	"github.com/solventus/phflash/enthalpy"
)

// Options holds the flash driver's tunable configuration, expressed as
// plain struct fields rather than a string-keyed map.
type Options struct {
	UseQuantumH2  bool
	BIPSource     component.BIPSource
	CustomBIP     *phflash.Mat
	UseAnderson   bool
	AndersonDepth int

	UseLineSearch bool
	Damping       float64

	UseAdaptiveTolerance bool
	CustomEnthalpyTol    float64

	UseAdaptiveDerivative  bool
	DerivativePerturbation float64
	MaxReasonableDHDT      float64

	Verbose bool

	// Trace, if non-nil, receives a (T, deltaH) record for every outer
	// Newton iteration, for later plotting via package diagnostics.
	Trace *diagnostics.Trace
}

// DefaultOptions populates defaults matching the reference configuration.
func DefaultOptions() Options {
	return Options{
		UseQuantumH2:          true,
		BIPSource:             component.BIPRecommended,
		UseAnderson:           true,
		AndersonDepth:         5,
		UseLineSearch:         true,
		Damping:               1.0,
		UseAdaptiveTolerance:  true,
		UseAdaptiveDerivative: true,
		MaxReasonableDHDT:     enthalpy.DefaultMaxReasonableDHDT,
	}
}
