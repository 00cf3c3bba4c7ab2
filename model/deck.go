package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrBadRefFrequency indicates a non-positive reference frequency.
var ErrBadRefFrequency = errors.New("model: reference frequency must be positive")

// WriteDeck writes the model in the solver's tabular deck format:
//
//	line 1: title
//	line 2: anisotropy flag, reference period (s), tabular-format flag
//	line 3: knot count, inner-core knots, outer-core knots
//	then one fixed-format row per knot:
//	radius, rho, vpv, vsv, qkappa, qmu, vph, vsh, eta
//
// refFrequency (Hz) sets the reference period used by the solver's
// attenuation normalization.
func (m *Model) WriteDeck(w io.Writer, refFrequency float64) error {
	if refFrequency <= 0 {
		return ErrBadRefFrequency
	}
	if err := m.Validate(); err != nil {
		return err
	}

	ifanis := 0
	if m.Anisotropic {
		ifanis = 1
	}
	nic, noc := m.coreKnots()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", m.Name)
	fmt.Fprintf(bw, "%d %.4f 1\n", ifanis, 1.0/refFrequency)
	fmt.Fprintf(bw, "%d %d %d\n", len(m.Layers), nic, noc)
	for _, l := range m.Layers {
		fmt.Fprintf(bw, "%8.0f.%9.2f%9.2f%9.2f%9.1f%9.1f%9.2f%9.2f%9.5f\n",
			l.Radius, l.Rho, l.Vpv, l.Vsv, l.QKappa, l.QMu, l.Vph, l.Vsh, l.Eta)
	}
	return bw.Flush()
}
