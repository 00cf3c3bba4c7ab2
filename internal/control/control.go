// Package control renders the per-run control block minos_bran reads from
// standard input: three file names, the accuracy pair, the mode-family
// selector, and the search bounds.
package control

import (
	"fmt"
	"strings"
)

// Mode-family selector codes (the solver's jcom switch).
const (
	JcomRadial            = 1
	JcomToroidal          = 2
	JcomSpheroidal        = 3
	JcomInnerCoreToroidal = 4
)

// File describes one solver run. Bound ordering is deliberately not
// validated here; nonsensical ranges simply yield an empty mode table from
// the solver.
type File struct {
	ModelPath         string // model deck read by the solver
	ListingPath       string // listing file the mode table is written to
	EigenfunctionPath string // eigenfunction output; "none" disables it

	Eps   float64 // integration accuracy
	WGrav float64 // gravity-term cutoff frequency, mHz

	Jcom int // family selector, one of the Jcom constants

	LMin, LMax int     // angular order bounds
	WMin, WMax float64 // frequency bounds, mHz
	NMin, NMax int     // branch (overtone) bounds
}

// Render returns the control block in the exact line order the solver's
// list-directed reads expect.
func (f File) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", f.ModelPath)
	fmt.Fprintf(&b, "%s\n", f.ListingPath)
	fmt.Fprintf(&b, "%s\n", f.EigenfunctionPath)
	fmt.Fprintf(&b, "%g %g\n", f.Eps, f.WGrav)
	fmt.Fprintf(&b, "%d\n", f.Jcom)
	fmt.Fprintf(&b, "%d %d %g %g %d %d\n", f.LMin, f.LMax, f.WMin, f.WMax, f.NMin, f.NMax)
	return b.String()
}
