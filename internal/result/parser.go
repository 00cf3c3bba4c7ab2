package result

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// consoleLines is the exact line count minos_bran prints on a successful
// run. Anything else means the solver aborted or the binary is not the one
// we expect.
const consoleLines = 12

// recordWidth is the last column of the fixed-width record. Shorter data
// lines are rejected outright rather than partially decoded.
const recordWidth = 108

// headerPattern matches the column-header line that precedes the mode
// table; the data block starts two lines below it.
var headerPattern = regexp.MustCompile(`^\s*mode`)

// ValidateConsole checks that the captured console output has the fixed
// line count of a successful run. The full capture is included in the
// error so a failed run can be diagnosed without re-running the solver.
func ValidateConsole(stdout string) error {
	trimmed := strings.TrimRight(stdout, " \t\r\n")
	if n := len(strings.Split(trimmed, "\n")); n != consoleLines {
		return fmt.Errorf("%w: got %d lines, want %d:\n%s",
			ErrUnexpectedOutput, n, consoleLines, stdout)
	}
	return nil
}

// ParseTable decodes the mode table from the listing file content. name is
// used in error messages only. When expect is non-empty, every record's
// type code must equal it; a mismatch is fatal.
//
// The table begins two lines after the first line matching headerPattern.
// Blank lines inside the table are skipped; every other line must be a
// complete fixed-width record.
func ParseTable(name string, data []byte, expect TypeCode) (*Table, error) {
	lines := strings.Split(string(data), "\n")

	start := -1
	for i, line := range lines {
		if headerPattern.MatchString(line) {
			start = i + 2
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w in %s", ErrMissingHeader, name)
	}

	tbl := newTable()
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseRecord(line, expect)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, i+1, err)
		}
		tbl.add(rec)
	}
	return tbl, nil
}

// Fixed column layout of one record (half-open, zero-based):
//
//	[0:5)    radial order n
//	[5:7)    type code (c | s | t)
//	[7:12)   angular order l
//	[12:28)  phase velocity, km/s
//	[28:44)  frequency, mHz
//	[44:60)  period, s
//	[60:76)  group velocity, km/s
//	[76:92)  quality factor Q
//	[92:108) Rayleigh quotient
func parseRecord(line string, expect TypeCode) (Record, error) {
	if len(line) < recordWidth {
		return Record{}, fmt.Errorf("%w: %d chars, want at least %d",
			ErrLineTooShort, len(line), recordWidth)
	}

	code := TypeCode(strings.TrimSpace(line[5:7]))
	if !knownTypes[code] {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownModeType, string(code))
	}
	if expect != "" && code != expect {
		return Record{}, fmt.Errorf("%w: got %q, want %q",
			ErrModeTypeMismatch, string(code), string(expect))
	}

	rec := Record{Type: code}
	var err error
	if rec.N, err = intField(line, 0, 5, "radial order"); err != nil {
		return Record{}, err
	}
	if rec.L, err = intField(line, 7, 12, "angular order"); err != nil {
		return Record{}, err
	}
	if rec.PhaseVelocity, err = floatField(line, 12, 28, "phase velocity"); err != nil {
		return Record{}, err
	}
	if rec.Frequency, err = floatField(line, 28, 44, "frequency"); err != nil {
		return Record{}, err
	}
	if rec.Period, err = floatField(line, 44, 60, "period"); err != nil {
		return Record{}, err
	}
	if rec.GroupVelocity, err = floatField(line, 60, 76, "group velocity"); err != nil {
		return Record{}, err
	}
	if rec.Q, err = floatField(line, 76, 92, "quality factor"); err != nil {
		return Record{}, err
	}
	if rec.RayleighQuotient, err = floatField(line, 92, 108, "rayleigh quotient"); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func intField(line string, lo, hi int, what string) (int, error) {
	s := strings.TrimSpace(line[lo:hi])
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", what, s, err)
	}
	return n, nil
}

func floatField(line string, lo, hi int, what string) (float64, error) {
	s := strings.TrimSpace(line[lo:hi])
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", what, s, err)
	}
	return f, nil
}
