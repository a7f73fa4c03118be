package servicecache

import (
	"strings"
	"unicode"
)

// toSnake turns a type or entity name into a key namespace: words split on
// case changes and digits, lowercased, joined by '_'. Any other rune acts as a
// separator so reflected names such as "*House[T]" stay prefix-safe.
func toSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + len(runes)/2)

	sep := false
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			sep = b.Len() > 0
			continue
		}
		if b.Len() > 0 && !sep && i > 0 && wordBoundary(runes, i) {
			sep = true
		}
		if sep {
			b.WriteByte('_')
			sep = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// wordBoundary reports whether runes[i] starts a new word relative to runes[i-1].
func wordBoundary(runes []rune, i int) bool {
	prev, r := runes[i-1], runes[i]
	switch {
	case unicode.IsUpper(r):
		if unicode.IsLower(prev) || unicode.IsDigit(prev) {
			return true
		}
		// "HTTPServer": the S starts a word when followed by lowercase.
		return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
	case unicode.IsDigit(r):
		return !unicode.IsDigit(prev)
	}
	return false
}
