// Package codec decodes uploaded tabular files into frames. CSV content is
// decoded with a fixed encoding-candidate list (UTF-8 first, then the
// configured legacy fallbacks), spreadsheets are delegated to excelize
// (.xlsx) and xlrd (.xls). First sheet only.
package codec

import (
	"fmt"
	"log"
	"strings"

	"sheetex/domain/tabular"
	"sheetex/internal/errors"
)

// SupportedExtensions is the accepted set, matched case-insensitively.
var SupportedExtensions = []string{".csv", ".xlsx", ".xls"}

// Decoder decodes raw file bytes into tabular frames.
type Decoder struct {
	// csvEncodings is the full candidate list for CSV text decoding,
	// "utf-8" first.
	csvEncodings []string
}

// NewDecoder builds a decoder whose CSV fallback encodings follow UTF-8 in
// the candidate list. Every fallback name must be in the encoding registry.
func NewDecoder(fallbackEncodings []string) (*Decoder, error) {
	candidates := []string{encodingUTF8}
	for _, name := range fallbackEncodings {
		canonical, err := resolveEncodingName(name)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, canonical)
	}
	return &Decoder{csvEncodings: candidates}, nil
}

// Decode turns file content into a frame based on its extension.
func (d *Decoder) Decode(content []byte, extension string) (*tabular.Frame, error) {
	switch strings.ToLower(extension) {
	case ".csv":
		return d.decodeCSV(content)
	case ".xlsx":
		return decodeXLSX(content)
	case ".xls":
		return decodeXLS(content)
	default:
		return nil, errors.UnsupportedFormat(fmt.Sprintf(
			"unsupported file format: %s; only %s are supported",
			extension, strings.Join(SupportedExtensions, ", "),
		))
	}
}

func logDecoded(kind string, frame *tabular.Frame) {
	log.Printf("[codec] %s decoded (%d columns, %d rows)", kind, len(frame.Columns), len(frame.Rows))
}
