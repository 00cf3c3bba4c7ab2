package result

// TypeCode is the trimmed two-letter mode classification column of the
// listing file.
type TypeCode string

const (
	TypeInnerCoreToroidal TypeCode = "c"
	TypeSpheroidal        TypeCode = "s"
	TypeToroidal          TypeCode = "t"
)

// knownTypes is the fixed lookup table for the classification column.
// Radial modes are printed with the spheroidal code and angular order 0.
var knownTypes = map[TypeCode]bool{
	TypeInnerCoreToroidal: true,
	TypeSpheroidal:        true,
	TypeToroidal:          true,
}

// Record is one decoded line of the mode table. Velocities are km/s,
// Frequency is mHz, Period is s. Frequency and Period are both taken from
// the solver verbatim, without cross-checking their reciprocity.
type Record struct {
	N    int // radial order (overtone branch)
	L    int // angular order (spherical-harmonic degree)
	Type TypeCode

	PhaseVelocity    float64
	Frequency        float64
	Period           float64
	GroupVelocity    float64
	Q                float64
	RayleighQuotient float64
}

// recordKey is the file-local identity of a record. The family tag is
// implicit: one listing file holds one family.
type recordKey struct{ n, l int }

// Table holds the records of one listing file in the order the solver
// emitted them. A later record with the same (n, l) replaces the earlier
// one in place; the solver's output format carries no duplicate protection
// and this mirrors its last-one-wins semantics.
type Table struct {
	keys []recordKey
	recs map[recordKey]Record
}

func newTable() *Table {
	return &Table{recs: make(map[recordKey]Record)}
}

func (t *Table) add(r Record) {
	k := recordKey{r.N, r.L}
	if _, seen := t.recs[k]; !seen {
		t.keys = append(t.keys, k)
	}
	t.recs[k] = r
}

// Len returns the number of distinct (n, l) records.
func (t *Table) Len() int { return len(t.keys) }

// Records returns the records in emission order.
func (t *Table) Records() []Record {
	out := make([]Record, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.recs[k])
	}
	return out
}
