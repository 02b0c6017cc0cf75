package codec

import (
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/yamitzky/xlrd-go/xlrd"

	"sheetex/domain/tabular"
	"sheetex/internal/errors"
)

// decodeXLS parses legacy BIFF spreadsheet content, first sheet only. The
// xlrd reader works from a file path, so the bytes are spooled to a temp
// file that is removed before returning.
func decodeXLS(content []byte) (*tabular.Frame, error) {
	tmp, err := os.CreateTemp("", "sheetex-*.xls")
	if err != nil {
		return nil, errors.WithCode(errors.CodeFileParse, errors.Wrapf(err, "failed to stage xls content"))
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return nil, errors.WithCode(errors.CodeFileParse, errors.Wrapf(err, "failed to stage xls content"))
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.WithCode(errors.CodeFileParse, errors.Wrapf(err, "failed to stage xls content"))
	}

	book, err := xlrd.OpenWorkbook(tmp.Name(), &xlrd.OpenWorkbookOptions{
		Logfile:        io.Discard,
		FormattingInfo: true,
	})
	if err != nil {
		return nil, errors.FileParse(err)
	}

	sheet, err := book.SheetByIndex(0)
	if err != nil {
		return nil, errors.FileParse(err)
	}

	rows := make([][]string, sheet.NRows)
	for rowx := 0; rowx < sheet.NRows; rowx++ {
		cells := make([]string, sheet.NCols)
		for colx := 0; colx < sheet.NCols; colx++ {
			cells[colx] = xlsCellString(book, sheet, rowx, colx)
		}
		rows[rowx] = cells
	}

	frame := tabular.FrameFromRows(rows)
	logDecoded("xls", frame)
	return frame, nil
}

// xlsCellString renders a BIFF cell as text. Number cells whose format is a
// date format render as dates; the reader reports them as plain numbers, so
// the format has to be checked through the cell's XF record. Empty and
// error cells become empty strings, which the projector later turns into
// nulls.
func xlsCellString(book *xlrd.Book, sheet *xlrd.Sheet, rowx, colx int) string {
	ctype := sheet.RawCellType(rowx, colx)
	value := sheet.RawCellValue(rowx, colx)

	switch ctype {
	case xlrd.XL_CELL_TEXT:
		if s, ok := value.(string); ok {
			return s
		}
		return ""
	case xlrd.XL_CELL_NUMBER:
		v, ok := toFloat(value)
		if !ok {
			return ""
		}
		if xlsDateCell(book, sheet.RawCellXFIndex(rowx, colx)) {
			if rendered, ok := xlsDateString(v, book.Datemode); ok {
				return rendered
			}
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case xlrd.XL_CELL_BOOLEAN:
		if b, ok := toBool(value); ok {
			if b {
				return "TRUE"
			}
			return "FALSE"
		}
		return ""
	default:
		// XL_CELL_EMPTY, XL_CELL_BLANK, XL_CELL_ERROR
		return ""
	}
}

// xlsDateCell reports whether the cell's XF record carries a date format,
// either one of Excel's builtin date format keys or a custom format string
// that parses as a date.
func xlsDateCell(book *xlrd.Book, xfIndex int) bool {
	if xfIndex < 0 || xfIndex >= len(book.XFList) {
		return false
	}
	formatKey := book.XFList[xfIndex].FormatKey
	switch formatKey {
	case 14, 15, 16, 17, 18, 19, 20, 21, 22, 27, 30, 36, 50, 57, 58:
		return true
	}
	if book.FormatMap == nil {
		return false
	}
	format := book.FormatMap[formatKey]
	if format == nil || format.FormatString == "" {
		return false
	}
	return xlrd.IsDateFormatString(book, format.FormatString)
}

// xlsDateString renders a date serial the way Excel displays it: time of
// day for serials below one, a full timestamp when a day fraction is
// present, a bare date otherwise.
func xlsDateString(value float64, datemode int) (string, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", false
	}
	t, err := xlrd.XldateAsDatetime(value, datemode)
	if err != nil {
		return "", false
	}
	if value < 1 {
		return t.Format("15:04:05"), true
	}
	if value != math.Floor(value) {
		return t.Format(time.DateTime), true
	}
	return t.Format(time.DateOnly), true
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func toBool(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case int:
		return v != 0, true
	case float64:
		return v != 0, true
	}
	return false, false
}
