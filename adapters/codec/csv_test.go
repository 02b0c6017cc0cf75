package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetex/internal/errors"
)

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	d, err := NewDecoder([]string{"gbk"})
	require.NoError(t, err)
	return d
}

func TestDecodeCSV_UTF8(t *testing.T) {
	content := []byte("id,name\n1,Alice\n2,Bob\n")

	frame, err := newTestDecoder(t).Decode(content, ".csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, frame.Columns)
	require.Len(t, frame.Rows, 2)
	assert.Equal(t, "Alice", *frame.Rows[0][1])
}

func TestDecodeCSV_GBKFallback(t *testing.T) {
	// "名字,年龄\n张三,25" encoded as GBK; the multibyte sequences are not
	// valid UTF-8, so the first candidate must fail and gbk must succeed.
	content := []byte{
		0xC3, 0xFB, 0xD7, 0xD6, ',', 0xC4, 0xEA, 0xC1, 0xE4, '\n',
		0xD5, 0xC5, 0xC8, 0xFD, ',', '2', '5',
	}

	frame, err := newTestDecoder(t).Decode(content, ".csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"名字", "年龄"}, frame.Columns)
	require.Len(t, frame.Rows, 1)
	assert.Equal(t, "张三", *frame.Rows[0][0])
	assert.Equal(t, "25", *frame.Rows[0][1])
}

func TestDecodeCSV_AllEncodingsFail(t *testing.T) {
	d, err := NewDecoder(nil) // utf-8 only
	require.NoError(t, err)

	_, err = d.Decode([]byte{0xFF, 0xFE, 0xFD}, ".csv")
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnreadableFile, errors.GetCode(err))
	assert.Contains(t, err.Error(), "utf-8")
}

func TestDecodeCSV_FallbackListInErrorMessage(t *testing.T) {
	// Malformed quoting fails CSV parsing under every candidate encoding.
	content := []byte("a,b\n\"broken,row\n")

	_, err := newTestDecoder(t).Decode(content, ".csv")
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnreadableFile, errors.GetCode(err))
	assert.Contains(t, err.Error(), "utf-8")
	assert.Contains(t, err.Error(), "gbk")
}

func TestDecodeCSV_EmptyFile(t *testing.T) {
	_, err := newTestDecoder(t).Decode([]byte(""), ".csv")
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileParse, errors.GetCode(err))
}

func TestDecodeCSV_ShortRowPaddedWithNull(t *testing.T) {
	frame, err := newTestDecoder(t).Decode([]byte("id,name\n1\n"), ".csv")
	require.NoError(t, err)

	require.Len(t, frame.Rows, 1)
	assert.Equal(t, "1", *frame.Rows[0][0])
	assert.Nil(t, frame.Rows[0][1])
}

func TestDecodeCSV_StripsBOM(t *testing.T) {
	content := []byte("\xEF\xBB\xBFid,name\n1,Alice\n")

	frame, err := newTestDecoder(t).Decode(content, ".csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, frame.Columns)
}

func TestResolveEncodingName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gbk", "gbk"},
		{"GBK", "gbk"},
		{" Shift_JIS ", "shift_jis"},
		{"sjis", "shift_jis"},
		{"cp1252", "windows-1252"},
		{"latin1", "latin-1"},
		{"UTF8", "utf-8"},
	}
	for _, tt := range tests {
		got, err := resolveEncodingName(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got)
	}

	_, err := resolveEncodingName("klingon")
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
