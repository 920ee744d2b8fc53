package glob

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FoldCase lower-cases the valid runes of s. Bytes that are not valid UTF-8
// are kept as they are, so two distinct invalid bytes never fold together.
func FoldCase(s string) string {
	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return b.String()
}
