// Package check provides system diagnostics (--check mode) and pre-run
// validation of the external solver binary.
package check

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Sentinel errors returned when the solver is missing or unusable.
var (
	ErrSolverNotFound   = errors.New("solver executable not found on PATH")
	ErrSolverNotRegular = errors.New("solver path is not a regular file")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// CheckSolver verifies that the solver executable can be resolved and is a
// regular file. It does not run it: a test invocation without a model would
// leave the solver waiting on stdin.
func CheckSolver(path string) (string, error) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrSolverNotFound, path, err)
	}
	fi, err := os.Stat(resolved)
	if err != nil || !fi.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %q", ErrSolverNotRegular, resolved)
	}
	return resolved, nil
}

// RunCheck runs the interactive --check flow: reports whether the solver
// binary resolves and where. Informational only; it does not stop on
// failure.
func RunCheck(solverPath string, log Logger) {
	log.Info("=== System Check ===")

	resolved, err := CheckSolver(solverPath)
	if err != nil {
		log.Error("solver: %v", err)
		log.Info("install minos_bran or pass --solver with its location")
		return
	}
	log.Success("solver: %s", resolved)

	if fi, err := os.Stat(resolved); err == nil {
		log.Info("  mode %s, %d bytes", fi.Mode(), fi.Size())
	}
}
