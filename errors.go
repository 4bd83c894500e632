package phflash

import "fmt"

// InputError represents an error resulting from invalid input parameters to
// one of the auxiliary correlations (leekesler, abbott, liquids, antoine).
// It is intentionally lightweight, matching the plain error style used
// throughout these small, pure-function packages.
type InputError struct {
	Msg string
}

func (e InputError) Error() string {
	return e.Msg
}

var (
	// ErrTemp is returned when an absolute temperature is <= 0.
	ErrTemp = InputError{Msg: "absolute temperature (T) cannot be less than or equal to 0"}
	// ErrPressure is returned when a pressure is less than or equal to 0.
	ErrPressure = InputError{Msg: "pressure (P) cannot be less than or equal to 0"}
	// ErrCriticalProp is returned when a critical property is <= 0.
	ErrCriticalProp = InputError{Msg: "critical property (Tc, Pc, Vc or Zc) cannot have a value less than or equal to 0"}
	// ErrUniversalConst is returned when R is <= 0.
	ErrUniversalConst = InputError{Msg: "universal gas constant (R) value cannot be less than or equal to 0"}
	// ErrVirialCoeff is returned when a virial coefficient is 0.
	ErrVirialCoeff = InputError{Msg: "virial coefficient (B or C) cannot be 0"}
	// ErrVolume is returned when a molar volume is <= 0.
	ErrVolume = InputError{Msg: "molar volume (V) cannot be less than or equal to 0"}
	// ErrHighPressureTwoTerm is returned when P exceeds the two-term virial validity limit.
	ErrHighPressureTwoTerm = InputError{Msg: "pressure exceeds the validity limit (15 bar) for the two-term virial equation"}
	// ErrInvalidTr is returned when a reduced temperature is <= 0.
	ErrInvalidTr = InputError{Msg: "reduced temperature (Tr) must be greater than 0"}
)

// ErrorCode is a stable, ABI-numbered error code for the flash core. Zero
// means success. Codes are grouped by category: input
// (-101..), numeric (-201..), convergence (-301..), physical (-401..),
// algorithm (-601..), system (-701..), generic (-901..).
type ErrorCode int

// Success indicates no error.
const Success ErrorCode = 0

// Input errors: fatal at the boundary, never recovered from internally.
const (
	ErrInputBadComposition ErrorCode = -101 // z not finite, negative, or not normalized
	ErrInputBadPressure    ErrorCode = -102 // P outside [100, 1e8] Pa or non-finite
	ErrInputBadEnthalpy    ErrorCode = -103 // H* outside [-1e7, 1e7] J/mol or non-finite
	ErrInputBadBIP         ErrorCode = -104 // |k_ij| > 0.5, or asymmetric, or nonzero diagonal
	ErrInputBadOption      ErrorCode = -105 // an option value is out of its accepted range
)

// Numeric errors: callers may retry with a safer fallback.
const (
	ErrNumericCubicDiscriminant ErrorCode = -201 // the cubic solver itself failed
	ErrNumericLogGuard          ErrorCode = -202 // Z <= B + eps_guard in a fugacity log term
	ErrNumericSingularMatrix    ErrorCode = -203 // Anderson normal equations ill-conditioned
	ErrNumericRootUnphysical    ErrorCode = -204 // A<=0, B<=0, or no root with Z > B
)

// Convergence errors: the driver may reduce damping, tighten clipping, or
// retry once with successive substitution only.
const (
	ErrConvergenceMaxIterRR    ErrorCode = -301 // Rachford-Rice exceeded MAX_ITER_RR
	ErrConvergenceMaxIterVLE   ErrorCode = -302 // successive substitution exceeded MAX_ITER_VLE
	ErrConvergenceMaxIterOuter ErrorCode = -303 // outer Newton loop exceeded MAX_ITER_OUTER
	ErrConvergenceOscillation  ErrorCode = -304 // non-monotonic residual persisted 10 iterations
	ErrConvergenceStagnation   ErrorCode = -305 // line search exhausted without reducing |ΔH|
)

// Physical errors: force a TPD re-seed and retry the VLE loop once.
const (
	ErrPhysicalNegativeComposition   ErrorCode = -401 // x_i or y_i < 0 after RR solve
	ErrPhysicalTrivialSolution       ErrorCode = -402 // max|K_i - 1| < 1e-3
	ErrPhysicalUnstableReportedStable ErrorCode = -403 // TPD found instability after single-phase report
	ErrPhysicalInconsistentZ         ErrorCode = -404 // final validation failed: Σx or Σy off 1, mass balance off, or Z_V < Z_L in two-phase
	ErrPhysicalDerivativeOutOfRange  ErrorCode = -405 // dH/dT outside [1, max_reasonable_dhdt]
)

// Algorithm errors: internal contract violations not attributable to input
// or ordinary numerical difficulty.
const (
	ErrAlgorithmBadBracket ErrorCode = -601 // Rachford-Rice bracket empty or inverted
	ErrAlgorithmNoTPDSeed  ErrorCode = -602 // all TPD trial seeds failed to converge
)

// System/fatal errors: terminate, no recovery attempted.
const (
	ErrSystemInternal ErrorCode = -701
)

// Generic/unclassified errors.
const (
	ErrGenericUnknown ErrorCode = -901
)

var codeNames = map[ErrorCode]string{
	Success:                           "success",
	ErrInputBadComposition:            "input_bad_composition",
	ErrInputBadPressure:               "input_bad_pressure",
	ErrInputBadEnthalpy:               "input_bad_enthalpy",
	ErrInputBadBIP:                    "input_bad_bip",
	ErrInputBadOption:                 "input_bad_option",
	ErrNumericCubicDiscriminant:       "numeric_cubic_discriminant",
	ErrNumericLogGuard:                "numeric_log_guard",
	ErrNumericSingularMatrix:          "numeric_singular_matrix",
	ErrNumericRootUnphysical:          "numeric_root_unphysical",
	ErrConvergenceMaxIterRR:           "convergence_max_iter_rr",
	ErrConvergenceMaxIterVLE:          "convergence_max_iter_vle",
	ErrConvergenceMaxIterOuter:        "convergence_max_iter_outer",
	ErrConvergenceOscillation:         "convergence_oscillation",
	ErrConvergenceStagnation:          "convergence_stagnation",
	ErrPhysicalNegativeComposition:    "physical_negative_composition",
	ErrPhysicalTrivialSolution:        "physical_trivial_solution",
	ErrPhysicalUnstableReportedStable: "physical_unstable_reported_stable",
	ErrPhysicalInconsistentZ:          "physical_inconsistent_z",
	ErrPhysicalDerivativeOutOfRange:   "physical_derivative_out_of_range",
	ErrAlgorithmBadBracket:            "algorithm_bad_bracket",
	ErrAlgorithmNoTPDSeed:             "algorithm_no_tpd_seed",
	ErrSystemInternal:                 "system_internal",
	ErrGenericUnknown:                 "generic_unknown",
}

// Name returns the stable human-readable identifier for c, or "unknown_code"
// if c is not a recognized code.
func (c ErrorCode) Name() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "unknown_code"
}

// Category classifies a code into its error-handling category (spec
// section 7).
type Category int

const (
	CategoryNone Category = iota
	CategoryInput
	CategoryNumeric
	CategoryConvergence
	CategoryPhysical
	CategoryAlgorithm
	CategorySystem
	CategoryGeneric
)

// Category returns the category c belongs to.
func (c ErrorCode) Category() Category {
	switch {
	case c == Success:
		return CategoryNone
	case c <= -101 && c > -200:
		return CategoryInput
	case c <= -201 && c > -300:
		return CategoryNumeric
	case c <= -301 && c > -400:
		return CategoryConvergence
	case c <= -401 && c > -600:
		return CategoryPhysical
	case c <= -601 && c > -700:
		return CategoryAlgorithm
	case c <= -701 && c > -900:
		return CategorySystem
	default:
		return CategoryGeneric
	}
}

// FlashError is the typed error returned by the flash core's operations. It
// carries the stable ErrorCode plus the operation name and, optionally, a
// wrapped cause.
type FlashError struct {
	Code ErrorCode
	Op   string
	Err  error
}

func (e *FlashError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code.Name(), e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code.Name())
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *FlashError) Unwrap() error {
	return e.Err
}

// NewError builds a FlashError with the given code and operation name.
func NewError(code ErrorCode, op string, cause error) *FlashError {
	return &FlashError{Code: code, Op: op, Err: cause}
}

// CodeOf extracts the ErrorCode from err: Success if err is nil,
// ErrGenericUnknown if err is not a *FlashError.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	if fe, ok := err.(*FlashError); ok {
		return fe.Code
	}
	return ErrGenericUnknown
}
