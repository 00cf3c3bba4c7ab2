package minos

import (
	"strconv"

	"github.com/seisgo/minos/internal/result"
)

// Family classifies a normal mode. Radial modes share the spheroidal family
// (and its "S" tag) with angular order 0.
type Family uint8

const (
	FamilySpheroidal Family = iota
	FamilyToroidal
	FamilyInnerCoreToroidal
)

// Tag returns the single-letter family tag used in mode names: S, T or C.
func (f Family) Tag() string {
	switch f {
	case FamilySpheroidal:
		return "S"
	case FamilyToroidal:
		return "T"
	case FamilyInnerCoreToroidal:
		return "C"
	}
	return "?"
}

// String returns the long family name.
func (f Family) String() string {
	switch f {
	case FamilySpheroidal:
		return "spheroidal"
	case FamilyToroidal:
		return "toroidal"
	case FamilyInnerCoreToroidal:
		return "inner-core toroidal"
	}
	return "unknown"
}

// familyFromType maps the listing file's classification code to the global
// family. The parser guarantees the code is one of the known three.
func familyFromType(c result.TypeCode) Family {
	switch c {
	case result.TypeToroidal:
		return FamilyToroidal
	case result.TypeInnerCoreToroidal:
		return FamilyInnerCoreToroidal
	default:
		return FamilySpheroidal
	}
}

// ModeKey identifies a mode by radial order, family and angular order. It
// has value equality and is usable as a map key.
type ModeKey struct {
	N      int
	Family Family
	L      int
}

// Name returns the conventional mode label, e.g. "0S2" or "10T34".
func (k ModeKey) Name() string {
	return strconv.Itoa(k.N) + k.Family.Tag() + strconv.Itoa(k.L)
}

// Mode is one computed normal mode. Velocities are km/s, Frequency is mHz,
// Period is s. Frequency and Period come from the solver verbatim; they are
// reciprocal but not cross-checked here.
type Mode struct {
	Key ModeKey

	PhaseVelocity    float64
	GroupVelocity    float64
	Frequency        float64
	Period           float64
	Q                float64
	RayleighQuotient float64
}

// Name returns the conventional mode label.
func (m Mode) Name() string { return m.Key.Name() }

// ModeSet is an insertion-ordered collection of modes keyed by [ModeKey].
// Iteration order follows the family sequence radial, toroidal, spheroidal,
// inner-core toroidal, and within each family the order the solver emitted.
// Inserting an existing key replaces the mode in place.
type ModeSet struct {
	keys  []ModeKey
	modes map[ModeKey]Mode
}

func newModeSet() *ModeSet {
	return &ModeSet{modes: make(map[ModeKey]Mode)}
}

func (s *ModeSet) set(m Mode) {
	if _, seen := s.modes[m.Key]; !seen {
		s.keys = append(s.keys, m.Key)
	}
	s.modes[m.Key] = m
}

// Get looks up a mode by its three-part key.
func (s *ModeSet) Get(n int, f Family, l int) (Mode, bool) {
	return s.Lookup(ModeKey{N: n, Family: f, L: l})
}

// Lookup looks up a mode by key.
func (s *ModeSet) Lookup(k ModeKey) (Mode, bool) {
	m, ok := s.modes[k]
	return m, ok
}

// Len returns the number of modes.
func (s *ModeSet) Len() int { return len(s.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (s *ModeSet) Keys() []ModeKey {
	out := make([]ModeKey, len(s.keys))
	copy(out, s.keys)
	return out
}

// Modes returns the modes in insertion order.
func (s *ModeSet) Modes() []Mode {
	out := make([]Mode, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.modes[k])
	}
	return out
}

// Frequencies projects the set down to eigenfrequencies only, preserving
// key order.
func (s *ModeSet) Frequencies() *FrequencySet {
	fs := &FrequencySet{
		keys:  s.Keys(),
		freqs: make(map[ModeKey]float64, len(s.keys)),
	}
	for _, k := range s.keys {
		fs.freqs[k] = s.modes[k].Frequency
	}
	return fs
}

// FrequencySet is the frequency-only projection of a [ModeSet], with the
// same ordering and lookup semantics. Values are mHz.
type FrequencySet struct {
	keys  []ModeKey
	freqs map[ModeKey]float64
}

// Get looks up an eigenfrequency by its three-part key.
func (s *FrequencySet) Get(n int, f Family, l int) (float64, bool) {
	return s.Lookup(ModeKey{N: n, Family: f, L: l})
}

// Lookup looks up an eigenfrequency by key.
func (s *FrequencySet) Lookup(k ModeKey) (float64, bool) {
	v, ok := s.freqs[k]
	return v, ok
}

// Len returns the number of entries.
func (s *FrequencySet) Len() int { return len(s.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (s *FrequencySet) Keys() []ModeKey {
	out := make([]ModeKey, len(s.keys))
	copy(out, s.keys)
	return out
}
