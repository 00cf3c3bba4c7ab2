// Package result parses and validates the output of a minos_bran run: the
// captured console text (sanity-checked for the fixed line count a
// successful run prints) and the mode table in the listing file (decoded
// from fixed character columns into typed records).
//
// Types:
//   - TypeCode (two-letter classification column, trimmed)
//   - Record (one decoded table line)
//   - Table (insertion-ordered records from one listing file)
//
// Functions:
//   - ValidateConsole(stdout) → error
//     Requires exactly 12 non-trailing-whitespace lines.
//   - ParseTable(name, data, expect) → *Table
//     Locates the "mode" header, decodes every data line, rejects short
//     lines, unknown type codes, and codes that differ from expect.
//
// All parse failures are fatal for the run they belong to; only the
// caller's quality gate is advisory.
package result
