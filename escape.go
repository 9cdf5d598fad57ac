package csvenc

import "strings"

// escapeField applies RFC 4180 quoting to a single field value: if the
// value contains the delimiter, a double quote, CR, or LF, it is wrapped
// in double quotes with interior quotes doubled. Anything else passes
// through unchanged.
func escapeField(s string, delim rune, alwaysQuote bool) string {
	if !alwaysQuote && !fieldNeedsQuote(s, delim) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

func fieldNeedsQuote(s string, delim rune) bool {
	return strings.ContainsRune(s, delim) || strings.ContainsAny(s, "\"\r\n")
}
