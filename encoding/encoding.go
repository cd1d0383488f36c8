// Package encoding wraps the charset machinery in golang.org/x/text for
// the rest of the module. It exists partly because the x/text package
// names ("unicode", and so on) clash with the stdlib, and partly to pin
// down one behavior the stream layer relies on: decoding legacy bytes to
// UTF-8 with a reportable error for an unrecognized charset name.
package encoding

import (
	"fmt"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// UnknownEncodingError is returned when a charset name does not resolve
// to a supported encoding.
type UnknownEncodingError struct {
	Name string
}

func (e *UnknownEncodingError) Error() string {
	return "unknown encoding: '" + e.Name + "'"
}

var encodings = map[string]enc.Encoding{
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"euc-jp":       japanese.EUCJP,
	"shift_jis":    japanese.ShiftJIS,
	"shift-jis":    japanese.ShiftJIS,
	"shiftjis":     japanese.ShiftJIS,
	"cp932":        japanese.ShiftJIS,
	"iso-2022-jp":  japanese.ISO2022JP,
	"big5":         traditionalchinese.Big5,
	"euc-kr":       korean.EUCKR,
	"hz-gb2312":    simplifiedchinese.HZGB2312,
	"cp437":        charmap.CodePage437,
	"cp866":        charmap.CodePage866,
	"iso-8859-1":   charmap.Windows1252,
	"iso-8859-2":   charmap.ISO8859_2,
	"iso-8859-3":   charmap.ISO8859_3,
	"iso-8859-4":   charmap.ISO8859_4,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso-8859-6":   charmap.ISO8859_6,
	"iso-8859-7":   charmap.ISO8859_7,
	"iso-8859-8":   charmap.ISO8859_8,
	"iso-8859-10":  charmap.ISO8859_10,
	"iso-8859-13":  charmap.ISO8859_13,
	"iso-8859-14":  charmap.ISO8859_14,
	"iso-8859-15":  charmap.ISO8859_15,
	"iso-8859-16":  charmap.ISO8859_16,
	"koi8r":        charmap.KOI8R,
	"koi8u":        charmap.KOI8U,
	"macintosh":    charmap.Macintosh,
	"windows-1250": charmap.Windows1250,
	"windows1250":  charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows1251":  charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"windows1252":  charmap.Windows1252,
	"windows-1253": charmap.Windows1253,
	"windows1253":  charmap.Windows1253,
	"windows-1254": charmap.Windows1254,
	"windows1254":  charmap.Windows1254,
	"windows-1255": charmap.Windows1255,
	"windows1255":  charmap.Windows1255,
	"windows-1256": charmap.Windows1256,
	"windows1256":  charmap.Windows1256,
	"windows-1257": charmap.Windows1257,
	"windows1257":  charmap.Windows1257,
	"windows-1258": charmap.Windows1258,
	"windows1258":  charmap.Windows1258,
	"windows-874":  charmap.Windows874,
	"windows874":   charmap.Windows874,
}

// Load resolves a charset name to its encoding, or nil when the name is
// not recognized. Names are matched case-insensitively.
func Load(name string) enc.Encoding {
	return encodings[strings.ToLower(name)]
}

// Decode converts b from the named legacy charset to a UTF-8 string. An
// unrecognized name yields *UnknownEncodingError; decoder failures are
// wrapped with the charset name.
func Decode(name string, b []byte) (string, error) {
	e := Load(name)
	if e == nil {
		return "", &UnknownEncodingError{Name: name}
	}
	s, err := e.NewDecoder().String(string(b))
	if err != nil {
		return "", fmt.Errorf("decode from %s: %w", name, err)
	}
	return s, nil
}
