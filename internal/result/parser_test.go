package result

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Realistic listing-file content for a spheroidal run (jcom 3) including the
// radial fundamental, preamble text, the column header, and blank lines
// between records. Column layout matches minos_bran's table output.
const sampleSpheroidal = `  spherical earth model: isotropic test earth
  integration with eps   1.0000000e-10   wgrav   10.000

  mode        phase vel       frequency          period       group vel               q        raylquo
                 (km/s)           (mHz)             (s)          (km/s)

    0 s    0         9.15359        0.814338         1227.99         9.15359        5327.204    2.731846e-11
    0 s    2         9.89482        0.309286        3233.255         7.73559        509.6742    1.021921e-10

    1 s    2         10.2432        0.679855        1470.902         9.29666        310.3452   -6.378425e-11
`

// Toroidal listing with a single high-order overtone.
const sampleToroidal = `  toroidal modes, eps   1.0000000e-10

  mode        phase vel       frequency          period       group vel               q        raylquo
                 (km/s)           (mHz)             (s)

   10 t   34        15.26459        13.15579        76.01218           5.348        227.8324   -5.747906e-09
`

const sampleInnerCore = `  inner core toroidal modes

  mode        phase vel       frequency          period       group vel               q        raylquo

    1 c    2        21.95591         1.23255        811.3258         10.0311        612.6312    4.102273e-10
`

// Twelve console lines as printed by a successful run.
var goodConsole = strings.Repeat("x\n", 11) + "x\n"

func TestValidateConsole(t *testing.T) {
	t.Run("twelve lines ok", func(t *testing.T) {
		require.NoError(t, ValidateConsole(goodConsole))
	})
	t.Run("trailing whitespace ignored", func(t *testing.T) {
		require.NoError(t, ValidateConsole(goodConsole+"\n  \t\n"))
	})
	t.Run("thirteen lines fatal", func(t *testing.T) {
		capture := goodConsole + "iteration did not converge\n"
		err := ValidateConsole(capture)
		require.ErrorIs(t, err, ErrUnexpectedOutput)
		// The full capture must ride along for diagnosis.
		assert.Contains(t, err.Error(), "iteration did not converge")
	})
	t.Run("eleven lines fatal", func(t *testing.T) {
		err := ValidateConsole(strings.Repeat("x\n", 11))
		require.ErrorIs(t, err, ErrUnexpectedOutput)
	})
}

func TestParseTable_Spheroidal(t *testing.T) {
	tbl, err := ParseTable("minos_bran.out", []byte(sampleSpheroidal), TypeSpheroidal)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	recs := tbl.Records()

	// Emission order is preserved, blank lines notwithstanding.
	require.Equal(t, 0, recs[0].N)
	require.Equal(t, 0, recs[0].L)
	require.Equal(t, 2, recs[1].L)
	require.Equal(t, 1, recs[2].N)

	// Radial fundamental 0S0.
	r := recs[0]
	assert.Equal(t, TypeSpheroidal, r.Type)
	assert.InDelta(t, 0.814338, r.Frequency, 1e-9)
	assert.InDelta(t, 9.15359, r.PhaseVelocity, 1e-9)
	assert.InDelta(t, 5327.204, r.Q, 1e-6)
}

func TestParseTable_Toroidal(t *testing.T) {
	tbl, err := ParseTable("minos_bran.out", []byte(sampleToroidal), TypeToroidal)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	r := tbl.Records()[0]
	assert.Equal(t, 10, r.N)
	assert.Equal(t, 34, r.L)
	assert.InDelta(t, 15.26459, r.PhaseVelocity, 1e-9)
	assert.InDelta(t, 13.15579, r.Frequency, 1e-9)
	assert.InDelta(t, 1000.0/13.15579, r.Period, 1e-4)
	assert.InDelta(t, 5.348, r.GroupVelocity, 1e-9)
	assert.InDelta(t, 227.8324, r.Q, 1e-9)
	assert.InDelta(t, -5.747906e-9, r.RayleighQuotient, 1e-15)
}

func TestParseTable_InnerCore(t *testing.T) {
	tbl, err := ParseTable("minos_bran.out", []byte(sampleInnerCore), TypeInnerCoreToroidal)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, TypeInnerCoreToroidal, tbl.Records()[0].Type)
}

func TestParseTable_AnyTypeAccepted(t *testing.T) {
	// Empty expect accepts every known code.
	_, err := ParseTable("out", []byte(sampleInnerCore), "")
	require.NoError(t, err)
}

func TestParseTable_MissingHeader(t *testing.T) {
	_, err := ParseTable("minos_bran.out", []byte("no table here\nat all\n"), "")
	require.ErrorIs(t, err, ErrMissingHeader)
	assert.Contains(t, err.Error(), "minos_bran.out")
}

func TestParseTable_ShortLineFatal(t *testing.T) {
	content := sampleToroidal + "   11 t   35        15.3\n"
	_, err := ParseTable("minos_bran.out", []byte(content), TypeToroidal)
	require.ErrorIs(t, err, ErrLineTooShort)
	// Error names the file and line for diagnosis.
	assert.Contains(t, err.Error(), "minos_bran.out line 7")
}

func TestParseTable_UnknownTypeFatal(t *testing.T) {
	bad := strings.Replace(sampleToroidal, " t ", " x ", 1)
	_, err := ParseTable("minos_bran.out", []byte(bad), "")
	require.ErrorIs(t, err, ErrUnknownModeType)
}

func TestParseTable_TypeMismatchFatal(t *testing.T) {
	_, err := ParseTable("minos_bran.out", []byte(sampleSpheroidal), TypeToroidal)
	require.ErrorIs(t, err, ErrModeTypeMismatch)
}

func TestParseTable_DuplicateOverwrites(t *testing.T) {
	dup := sampleToroidal +
		"   10 t   34        15.26459        13.20000        76.01218           5.348        227.8324   -5.747906e-09\n"
	tbl, err := ParseTable("minos_bran.out", []byte(dup), TypeToroidal)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.InDelta(t, 13.2, tbl.Records()[0].Frequency, 1e-9)
}

func TestParseTable_Idempotent(t *testing.T) {
	first, err := ParseTable("out", []byte(sampleSpheroidal), TypeSpheroidal)
	require.NoError(t, err)
	second, err := ParseTable("out", []byte(sampleSpheroidal), TypeSpheroidal)
	require.NoError(t, err)
	require.Equal(t, first.Records(), second.Records())
}
