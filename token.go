package wordfreq

import (
	"html"
	"strings"
	"unicode"
)

// Normalize turns a text fragment into words. Unicode punctuation is
// removed, HTML entities are decoded, surrounding whitespace is trimmed and
// the result is split on single spaces. Consecutive spaces yield empty
// words; Frequencies.Count drops them.
func Normalize(fragment string) []string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, fragment)

	decoded := strings.TrimSpace(html.UnescapeString(stripped))
	if decoded == "" {
		return nil
	}

	return strings.Split(decoded, " ")
}
