// Package model defines the layered Earth model consumed by the normal-mode
// solver, its serialization to the solver's tabular deck format, and a YAML
// loader for model files.
package model

import "errors"

// Validation errors for model construction.
var (
	// ErrNoLayers indicates a model with fewer than two knots.
	ErrNoLayers = errors.New("model: need at least two layers")
	// ErrRadiusOrder indicates layer radii that are not non-decreasing from
	// the center outward.
	ErrRadiusOrder = errors.New("model: layer radii must be non-decreasing from the center")
)

// Layer is one radial knot of the model. Units are SI: radius in m,
// density in kg/m^3, velocities in m/s. QKappa and QMu are the bulk and
// shear attenuation quality factors; Eta is the anisotropy parameter
// (1 for isotropic material).
type Layer struct {
	Radius float64
	Rho    float64
	Vpv    float64
	Vsv    float64
	QKappa float64
	QMu    float64
	Vph    float64
	Vsh    float64
	Eta    float64
}

// Isotropic returns a layer whose horizontal velocities equal the vertical
// ones and whose anisotropy parameter is 1.
func Isotropic(radius, rho, vp, vs, qkappa, qmu float64) Layer {
	return Layer{
		Radius: radius,
		Rho:    rho,
		Vpv:    vp,
		Vsv:    vs,
		QKappa: qkappa,
		QMu:    qmu,
		Vph:    vp,
		Vsh:    vs,
		Eta:    1,
	}
}

// Model is a layered Earth model, ordered from the center to the surface.
// Discontinuities are expressed as two knots at the same radius.
//
// InnerCoreKnots and OuterCoreKnots give the knot counts of the solid inner
// core and of the inner core plus fluid outer core. When both are zero they
// are derived from the fluid region (the contiguous run of Vsv == 0 knots
// above the inner core).
type Model struct {
	Name        string
	Anisotropic bool
	Layers      []Layer

	InnerCoreKnots int
	OuterCoreKnots int
}

// Validate checks structural soundness: enough knots and non-decreasing
// radii. Physical plausibility is the solver's business.
func (m *Model) Validate() error {
	if len(m.Layers) < 2 {
		return ErrNoLayers
	}
	for i := 1; i < len(m.Layers); i++ {
		if m.Layers[i].Radius < m.Layers[i-1].Radius {
			return ErrRadiusOrder
		}
	}
	return nil
}

// coreKnots returns the inner-core and outer-core knot counts, deriving
// them from the fluid region when not set explicitly. A model with no
// fluid layers (e.g. a homogeneous test sphere) reports 0, 0.
func (m *Model) coreKnots() (nic, noc int) {
	if m.InnerCoreKnots > 0 || m.OuterCoreKnots > 0 {
		return m.InnerCoreKnots, m.OuterCoreKnots
	}

	firstFluid, lastFluid := -1, -1
	for i, l := range m.Layers {
		if l.Vsv == 0 {
			if firstFluid < 0 {
				firstFluid = i
			}
			lastFluid = i
		}
	}
	if firstFluid < 0 {
		return 0, 0
	}
	return firstFluid, lastFluid + 1
}
