package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetex/adapters/codec"
	"sheetex/domain/tabular"
	"sheetex/internal/errors"
)

func newTestService(t *testing.T) *ExtractService {
	t.Helper()
	decoder, err := codec.NewDecoder([]string{"gbk"})
	require.NoError(t, err)
	return NewExtractService(decoder)
}

func csvFile(content string) tabular.RawFile {
	return tabular.RawFile{Extension: ".csv", Content: []byte(content)}
}

func TestExtract_EndToEnd(t *testing.T) {
	records, err := newTestService(t).Extract(
		context.Background(),
		csvFile("id,name\n1,Alice\n2,\n"),
		`{"id": "ID", "name": "Name"}`,
	)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1", *records[0]["ID"])
	assert.Equal(t, "Alice", *records[0]["Name"])
	assert.Equal(t, "2", *records[1]["ID"])
	assert.Nil(t, records[1]["Name"])
}

func TestExtract_HeaderWhitespaceNormalized(t *testing.T) {
	// Header cell carries trailing whitespace and a non-breaking space; the
	// mapping key "Name" must still match after normalization.
	records, err := newTestService(t).Extract(
		context.Background(),
		csvFile("\" Name \u00a0\"\nAlice\n"),
		`{"Name": "full_name"}`,
	)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", *records[0]["full_name"])
}

func TestExtract_MissingColumn(t *testing.T) {
	_, err := newTestService(t).Extract(
		context.Background(),
		csvFile("id,name\n1,Alice\n"),
		`{"salary": "Salary"}`,
	)
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingColumns, errors.GetCode(err))
	assert.Contains(t, err.Error(), "salary")
}

func TestExtract_InvalidMappingStopsBeforeDecode(t *testing.T) {
	_, err := newTestService(t).Extract(
		context.Background(),
		tabular.RawFile{Extension: ".txt", Content: []byte("junk")},
		"not json",
	)
	require.Error(t, err)
	// The mapping is rejected first; the unsupported extension is never seen.
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	_, err := newTestService(t).Extract(
		context.Background(),
		tabular.RawFile{Extension: ".txt", Content: []byte("a,b\n1,2\n")},
		`{"a": "A"}`,
	)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnsupportedFormat, errors.GetCode(err))
	assert.Contains(t, err.Error(), ".csv, .xlsx, .xls")
}
