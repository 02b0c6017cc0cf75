package codec

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"sheetex/domain/tabular"
	"sheetex/internal/errors"
)

// decodeXLSX parses OOXML spreadsheet content, first sheet only, every cell
// as its displayed string.
func decodeXLSX(content []byte) (*tabular.Frame, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, errors.FileParse(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.FileParse(fmt.Errorf("workbook contains no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.FileParse(err)
	}

	frame := tabular.FrameFromRows(rows)
	logDecoded("xlsx", frame)
	return frame, nil
}
