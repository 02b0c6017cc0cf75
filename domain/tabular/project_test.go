package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetex/domain/fieldmap"
	"sheetex/internal/errors"
)

func strptr(s string) *string { return &s }

func mustMapping(t *testing.T, raw string) *fieldmap.Mapping {
	t.Helper()
	m, err := fieldmap.Parse(raw)
	require.NoError(t, err)
	return m
}

func TestProject_SelectsAndRenames(t *testing.T) {
	frame := &Frame{
		Columns: []string{"id", "name", "extra"},
		Rows: [][]*string{
			{strptr("1"), strptr("Alice"), strptr("x")},
			{strptr("2"), strptr("Bob"), strptr("y")},
		},
	}

	records, err := Project(frame, mustMapping(t, `{"id": "ID", "name": "Name"}`))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{"ID": strptr("1"), "Name": strptr("Alice")}, records[0])
	assert.Equal(t, Record{"ID": strptr("2"), "Name": strptr("Bob")}, records[1])
	// Unmapped columns are dropped.
	_, hasExtra := records[0]["extra"]
	assert.False(t, hasExtra)
}

func TestProject_EmptyAndAbsentCellsBecomeNull(t *testing.T) {
	frame := &Frame{
		Columns: []string{"id", "name"},
		Rows: [][]*string{
			{strptr("1"), strptr("")},
			{strptr("2"), nil},
		},
	}

	records, err := Project(frame, mustMapping(t, `{"name": "Name"}`))
	require.NoError(t, err)

	assert.Nil(t, records[0]["Name"])
	assert.Nil(t, records[1]["Name"])
}

func TestProject_MissingColumns(t *testing.T) {
	frame := &Frame{
		Columns: []string{"id", "name"},
		Rows:    [][]*string{{strptr("1"), strptr("Alice")}},
	}

	_, err := Project(frame, mustMapping(t, `{"id": "ID", "salary": "Salary"}`))
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingColumns, errors.GetCode(err))
	assert.Contains(t, err.Error(), "salary")
	assert.Contains(t, err.Error(), "id, name")
}

func TestProject_NoRowsYieldsEmptyList(t *testing.T) {
	frame := &Frame{Columns: []string{"id"}}

	records, err := Project(frame, mustMapping(t, `{"id": "ID"}`))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestFrameFromRows(t *testing.T) {
	frame := FrameFromRows([][]string{
		{"a", "b", "c"},
		{"1", "2", "3", "dropped"},
		{"4"},
	})

	assert.Equal(t, []string{"a", "b", "c"}, frame.Columns)
	require.Len(t, frame.Rows, 2)
	// Long rows are trimmed to the header width.
	assert.Equal(t, []*string{strptr("1"), strptr("2"), strptr("3")}, frame.Rows[0])
	// Short rows are padded with nulls.
	assert.Equal(t, []*string{strptr("4"), nil, nil}, frame.Rows[1])
}

func TestFrameFromRows_Empty(t *testing.T) {
	frame := FrameFromRows(nil)
	assert.Empty(t, frame.Columns)
	assert.Empty(t, frame.Rows)
}
