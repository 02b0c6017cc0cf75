package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"sheetex/internal/errors"
)

const encodingUTF8 = "utf-8"

// legacyEncodings is the registry of supported fallback encodings. The
// deployment locale picks from these via TABLE_FALLBACK_ENCODINGS.
var legacyEncodings = map[string]encoding.Encoding{
	"gbk":          simplifiedchinese.GBK,
	"gb18030":      simplifiedchinese.GB18030,
	"big5":         traditionalchinese.Big5,
	"shift_jis":    japanese.ShiftJIS,
	"euc-kr":       korean.EUCKR,
	"windows-1252": charmap.Windows1252,
	"latin-1":      charmap.ISO8859_1,
}

// resolveEncodingName canonicalizes an encoding name and checks it is
// registered. "utf-8" is accepted but redundant: it is always tried first.
func resolveEncodingName(name string) (string, error) {
	canonical := strings.ToLower(strings.TrimSpace(name))
	canonical = strings.ReplaceAll(canonical, "_", "-")
	switch canonical {
	case "utf-8", "utf8":
		return encodingUTF8, nil
	case "shift-jis", "sjis":
		canonical = "shift_jis"
	case "cp1252":
		canonical = "windows-1252"
	case "iso-8859-1", "latin1":
		canonical = "latin-1"
	}
	if _, ok := legacyEncodings[canonical]; !ok {
		return "", errors.ConfigInvalid(fmt.Sprintf("unknown fallback encoding: %s", name))
	}
	return canonical, nil
}

// decodeText decodes raw bytes under the named encoding, failing on any
// byte sequence the encoding cannot represent. The x/text decoders
// substitute U+FFFD instead of erroring, so substitution is treated as a
// decode failure to keep the encoding fallback meaningful.
func decodeText(content []byte, name string) (string, error) {
	if name == encodingUTF8 {
		if !utf8.Valid(content) {
			return "", fmt.Errorf("content is not valid UTF-8")
		}
		return string(content), nil
	}

	enc, ok := legacyEncodings[name]
	if !ok {
		return "", fmt.Errorf("unknown encoding: %s", name)
	}
	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", err
	}
	if strings.ContainsRune(string(decoded), utf8.RuneError) {
		return "", fmt.Errorf("content is not valid %s", name)
	}
	return string(decoded), nil
}
