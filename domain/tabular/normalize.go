package tabular

import (
	"regexp"
	"strings"
)

// columnWhitespaceRE matches runs of whitespace seen in real-world headers:
// regular whitespace plus non-breaking (U+00A0) and ideographic (U+3000)
// spaces.
var columnWhitespaceRE = regexp.MustCompile(`[\s\x{00A0}\x{3000}]+`)

// CleanColumnName collapses any whitespace run in a column name to a single
// ASCII space and trims the ends.
func CleanColumnName(name string) string {
	return strings.TrimSpace(columnWhitespaceRE.ReplaceAllString(name, " "))
}

// NormalizeColumns returns a frame whose column names are canonicalized via
// CleanColumnName. Column order and row data are untouched; the row slices
// are shared with the receiver.
func (f *Frame) NormalizeColumns() *Frame {
	columns := make([]string, len(f.Columns))
	for i, name := range f.Columns {
		columns[i] = CleanColumnName(name)
	}
	return &Frame{Columns: columns, Rows: f.Rows}
}
