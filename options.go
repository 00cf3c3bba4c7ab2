package minos

import "errors"

// Option validation errors.
var (
	// ErrBadEps indicates a non-positive integration tolerance.
	ErrBadEps = errors.New("minos: eps must be positive")
	// ErrBadRefFrequency indicates a non-positive reference frequency.
	ErrBadRefFrequency = errors.New("minos: reference frequency must be positive")
	// ErrNoSolver indicates an empty solver path.
	ErrNoSolver = errors.New("minos: solver path must not be empty")
)

// Logger receives quality-gate warnings and progress diagnostics. Satisfied
// by *logging.Logger; callers with their own logging can adapt theirs.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// Options holds the full parameter set of one computation. Zero value is
// not useful; start from [DefaultOptions].
type Options struct {
	// Family toggles. Each family is computed in its own solver run;
	// disabling one removes exactly its modes from the result.
	Radial            bool
	Toroidal          bool
	Spheroidal        bool
	InnerCoreToroidal bool

	// Eps is the integration accuracy passed to the solver. It also scales
	// the Rayleigh-quotient quality gate.
	Eps float64
	// WGrav is the frequency (mHz) above which gravity terms are dropped.
	WGrav float64

	// Angular-order bounds.
	LMin, LMax int
	// Frequency bounds, mHz.
	WMin, WMax float64
	// Branch-number (overtone) bounds.
	NMin, NMax int

	// RefFrequency (Hz) sets the reference period of the model deck's
	// attenuation normalization.
	RefFrequency float64

	// SolverPath is the solver executable; a bare name is resolved on PATH.
	SolverPath string

	// Logger receives quality warnings. Nil selects a default stderr/stdout
	// logger with automatic color detection.
	Logger Logger
}

// DefaultOptions returns the standard parameter set: all four families
// enabled, eps 1e-10, wgrav 10 mHz, angular orders 1-20, frequencies
// 0-166 mHz, branches 0-10, reference frequency 1 Hz.
func DefaultOptions() Options {
	return Options{
		Radial:            true,
		Toroidal:          true,
		Spheroidal:        true,
		InnerCoreToroidal: true,
		Eps:               1e-10,
		WGrav:             10,
		LMin:              1,
		LMax:              20,
		WMin:              0.0,
		WMax:              166.0,
		NMin:              0,
		NMax:              10,
		RefFrequency:      1.0,
		SolverPath:        "minos_bran",
	}
}

// Validate rejects structurally impossible values. Bound ordering is
// deliberately not checked: an inverted range is legal input that simply
// yields no modes from the solver.
func (o *Options) Validate() error {
	if o.Eps <= 0 {
		return ErrBadEps
	}
	if o.RefFrequency <= 0 {
		return ErrBadRefFrequency
	}
	if o.SolverPath == "" {
		return ErrNoSolver
	}
	return nil
}
