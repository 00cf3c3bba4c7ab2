package result

import "errors"

// Sentinel errors for output validation and table parsing. All of them are
// fatal for the family run that produced the output; callers match with
// errors.Is and abort.
var (
	// ErrUnexpectedOutput indicates the solver's console output did not have
	// the fixed line count a successful run prints.
	ErrUnexpectedOutput = errors.New("result: unexpected solver console output")
	// ErrMissingHeader indicates no mode-table header line was found in the
	// listing file.
	ErrMissingHeader = errors.New("result: mode table header not found")
	// ErrLineTooShort indicates a data line shorter than the full fixed-width
	// record.
	ErrLineTooShort = errors.New("result: mode table line too short")
	// ErrUnknownModeType indicates a type code outside {c, s, t}.
	ErrUnknownModeType = errors.New("result: unknown mode type code")
	// ErrModeTypeMismatch indicates a record whose type code differs from the
	// family the run requested.
	ErrModeTypeMismatch = errors.New("result: mode type differs from requested family")
)
