// Package export parses the semi-tabular notes export into flat project
// records.
//
// The export is a Markdown-style table: pipe-delimited rows, a rule
// separator under the header, and a rocket glyph marking data rows. Cells
// may hold multi-value lists separated by a <br> marker and trailing #
// tag markers that are stripped. Malformed rows are skipped, never fatal.
package export
