// Package tabular holds the in-memory table model shared by the decoders
// and the projector. A Frame is ephemeral: built per invocation, projected,
// and discarded.
package tabular

// RawFile is an uploaded file as handed over by the host runtime: opaque
// bytes plus the original extension (e.g. ".csv"). Read-only to this system.
type RawFile struct {
	Extension string
	Content   []byte
}

// Frame is an in-memory table with an ordered set of column names and rows
// of string-or-null cells. A nil cell means the value was absent in the
// source (short row, trailing empty spreadsheet cell).
type Frame struct {
	Columns []string
	Rows    [][]*string
}

// Record maps an output alias to a string value or an explicit null.
type Record map[string]*string

// FrameFromRows builds a Frame from raw string rows, first row as header.
// Cells beyond the header width are dropped, short rows are padded with
// nulls so every row has exactly len(Columns) cells.
func FrameFromRows(rows [][]string) *Frame {
	if len(rows) == 0 {
		return &Frame{}
	}

	columns := make([]string, len(rows[0]))
	copy(columns, rows[0])

	frame := &Frame{
		Columns: columns,
		Rows:    make([][]*string, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		cells := make([]*string, len(columns))
		for j := range columns {
			if j < len(row) {
				v := row[j]
				cells[j] = &v
			}
		}
		frame.Rows = append(frame.Rows, cells)
	}
	return frame
}
