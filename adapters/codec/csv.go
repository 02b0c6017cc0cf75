package codec

import (
	"encoding/csv"
	"fmt"
	"log"
	"strings"

	"sheetex/domain/tabular"
	"sheetex/internal/errors"
)

// decodeCSV tries each candidate encoding in order: full text decode, then
// CSV parse. A decode or parse failure moves on to the next candidate; a
// file that decodes but has no header row aborts immediately, since no
// other encoding would change that.
func (d *Decoder) decodeCSV(content []byte) (*tabular.Frame, error) {
	for _, name := range d.csvEncodings {
		text, err := decodeText(content, name)
		if err != nil {
			log.Printf("[codec] csv decode as %s failed: %v", name, err)
			continue
		}

		rows, err := parseCSVText(text)
		if err != nil {
			log.Printf("[codec] csv parse under %s failed: %v", name, err)
			continue
		}
		if len(rows) == 0 {
			return nil, errors.FileParse(fmt.Errorf("no columns to parse from file"))
		}

		frame := tabular.FrameFromRows(rows)
		logDecoded(fmt.Sprintf("csv (%s)", name), frame)
		return frame, nil
	}

	return nil, errors.UnreadableFile(fmt.Sprintf(
		"failed to decode CSV with encodings: [%s]",
		strings.Join(d.csvEncodings, ", "),
	))
}

// parseCSVText reads all CSV records as strings. Rows may have fewer fields
// than the header; the frame pads them with nulls, matching how the
// projector treats absent cells.
func parseCSVText(text string) ([][]string, error) {
	text = strings.TrimPrefix(text, "\ufeff")

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
