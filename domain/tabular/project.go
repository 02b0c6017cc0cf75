package tabular

import (
	"fmt"
	"strings"

	"sheetex/domain/fieldmap"
	"sheetex/internal/errors"
)

// Project selects the mapped columns from the frame, renames them to their
// aliases, and emits one record per row in the original row order. Empty or
// absent cells become explicit nulls, never empty strings. Columns outside
// the mapping are dropped.
func Project(frame *Frame, mapping *fieldmap.Mapping) ([]Record, error) {
	position := make(map[string]int, len(frame.Columns))
	for i, name := range frame.Columns {
		// First occurrence wins for duplicated headers.
		if _, seen := position[name]; !seen {
			position[name] = i
		}
	}

	var missing []string
	for _, field := range mapping.Fields() {
		if _, ok := position[field.Source]; !ok {
			missing = append(missing, field.Source)
		}
	}
	if len(missing) > 0 {
		return nil, errors.MissingColumns(fmt.Sprintf(
			"missing columns in file: [%s]; available: [%s]",
			strings.Join(missing, ", "),
			strings.Join(frame.Columns, ", "),
		))
	}

	records := make([]Record, 0, len(frame.Rows))
	for _, row := range frame.Rows {
		record := make(Record, mapping.Len())
		for _, field := range mapping.Fields() {
			record[field.Alias] = nullifyEmpty(cellAt(row, position[field.Source]))
		}
		records = append(records, record)
	}
	return records, nil
}

// cellAt tolerates rows shorter than the header; a missing cell is absent.
func cellAt(row []*string, idx int) *string {
	if idx >= len(row) {
		return nil
	}
	return row[idx]
}

// nullifyEmpty maps both absent cells and empty strings to null so the
// output contract does not depend on any parser's empty-cell convention.
func nullifyEmpty(cell *string) *string {
	if cell == nil || *cell == "" {
		return nil
	}
	return cell
}
