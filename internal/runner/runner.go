// Package runner executes the external normal-mode solver in a private
// scratch directory and captures everything the parsing stage needs before
// the directory is torn down.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/seisgo/minos/internal/control"
)

// Fixed file names inside the scratch directory. The solver is started with
// the directory as its working directory, so the control block can refer to
// them without paths.
const (
	modelFileName   = "earth.model"
	listingFileName = "minos_bran.out"
	eigenFileName   = "none" // placeholder; eigenfunction output disabled
)

// Sentinel errors for solver execution. Both are fatal; there are no
// retries.
var (
	// ErrSolverNotFound indicates the solver executable could not be
	// resolved.
	ErrSolverNotFound = errors.New("runner: solver executable not found")
	// ErrSolverFailed indicates a non-zero exit or a start failure.
	ErrSolverFailed = errors.New("runner: solver execution failed")
	// ErrNoListing indicates the solver exited cleanly but left no listing
	// file behind.
	ErrNoListing = errors.New("runner: solver produced no listing file")
)

// DeckWriter serializes a model deck for the solver. Implemented by
// model.Model; declared here so the runner stays decoupled from the model
// representation.
type DeckWriter interface {
	WriteDeck(w io.Writer, refFrequency float64) error
}

// Output holds everything one solver run leaves behind. The listing file's
// bytes are read into memory before the scratch directory is removed, so
// downstream parsing never races cleanup.
type Output struct {
	Stdout  string // captured console output
	Listing []byte // listing file content
	Name    string // listing file name, for error context
}

// Run executes one solver invocation: create a fresh scratch directory,
// write the model deck and feed the control block on standard input, then
// capture console output and the listing file. The directory is removed on
// every exit path. Each call gets its own directory, so concurrent runs do
// not contend.
func Run(ctx context.Context, solverPath string, deck DeckWriter, refFrequency float64, ctl control.File) (*Output, error) {
	solver, err := resolveSolver(solverPath)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "minos-")
	if err != nil {
		return nil, fmt.Errorf("create scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := writeDeck(filepath.Join(dir, modelFileName), deck, refFrequency); err != nil {
		return nil, err
	}

	ctl.ModelPath = modelFileName
	ctl.ListingPath = listingFileName
	ctl.EigenfunctionPath = eigenFileName

	cmd := exec.CommandContext(ctx, solver)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(ctl.Render())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v\n%s", ErrSolverFailed, solver, err, stderr.String())
	}

	listing, err := os.ReadFile(filepath.Join(dir, listingFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoListing, err)
	}

	return &Output{
		Stdout:  stdout.String(),
		Listing: listing,
		Name:    listingFileName,
	}, nil
}

// resolveSolver locates the executable. A bare name is looked up on PATH; a
// path with a separator is used as given but must exist.
func resolveSolver(path string) (string, error) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrSolverNotFound, path, err)
	}
	return resolved, nil
}

func writeDeck(path string, deck DeckWriter, refFrequency float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write model deck: %w", err)
	}
	if err := deck.WriteDeck(f, refFrequency); err != nil {
		f.Close()
		return fmt.Errorf("write model deck: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write model deck: %w", err)
	}
	return nil
}
