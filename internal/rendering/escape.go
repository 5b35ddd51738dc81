// Package rendering serializes classified profiles into SVG achievement cards.
package rendering

import (
	"net/url"
	"strings"
)

// EscapeMarkup escapes text for use in SVG character data and attribute values.
// Escaped characters: & < > " '
// Runes outside the XML 1.0 Char production (most C0 controls, surrogates, U+FFFE/U+FFFF) are dropped.
// All upstream and user-supplied text passes through this function exactly once.
func EscapeMarkup(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&#039;")
		default:
			if isXMLChar(r) {
				result.WriteRune(r)
			}
		}
	}

	return result.String()
}

// isXMLChar reports whether r may appear in an XML 1.0 document.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// SafeURL returns u when it is an absolute http(s) URL and "" otherwise.
// The result still needs EscapeMarkup before insertion.
func SafeURL(u string) string {
	parsed, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return u
	default:
		return ""
	}
}
