package stanza

import (
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/stanza/encoding"
)

// Escape replaces the five XML-reserved characters with their entities.
// Every other byte passes through unchanged.
func Escape(s string) string {
	if !strings.ContainsAny(s, "&<>\"'") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// isInCharacterRange reports whether r is allowed by the XML 1.0 Char
// production: tab, LF, CR, and the non-surrogate, non-control planes.
func isInCharacterRange(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// StripInvalidXMLChars removes every rune the XML 1.0 character grammar
// forbids. The common case of an already-clean string returns s itself.
func StripInvalidXMLChars(s string) string {
	clean := true
	for _, r := range s {
		if !isInCharacterRange(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if isInCharacterRange(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Sanitize prepares arbitrary text for inclusion in a serialized
// fragment. Valid UTF-8 input is stripped of forbidden XML characters
// and escaped; anything else is first decoded from the named legacy
// charset. Stripping happens before escaping so a mangled sequence can
// never form a new entity. Decoding failures, including an unknown
// charset name, are reported rather than swallowed.
func Sanitize(s, encodingName string) (string, error) {
	if !utf8.ValidString(s) {
		decoded, err := encoding.Decode(encodingName, []byte(s))
		if err != nil {
			return "", err
		}
		s = decoded
	}
	return Escape(StripInvalidXMLChars(s)), nil
}
