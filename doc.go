// Package minos computes Earth normal-mode eigenfrequencies and eigenmodes
// by driving the external minos_bran solver and parsing its fixed-column
// listing output into structured, queryable records.
//
// One call to [ComputeEigenmodes] runs the solver once per enabled mode
// family (radial, toroidal, spheroidal, inner-core toroidal), each in its
// own scratch directory, validates the solver's console output, decodes the
// mode table, and merges everything into an insertion-ordered [ModeSet]
// keyed by (radial order n, family, angular order l). Radial modes are
// stored under the spheroidal family with angular order 0, following the
// solver's own classification.
//
// A Rayleigh-quotient quality gate flags modes whose eigenfrequency may be
// numerically inaccurate; suspect modes are reported through the
// configured [Logger] but never removed from the result.
//
// The solver itself is an opaque executable resolved from the options; the
// physics lives there, not here.
package minos
