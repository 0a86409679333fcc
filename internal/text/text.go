// Package text holds the small tokenization helpers shared by the
// analysis stages. Every stage tokenizes the same way so that word
// counts, concept positions and emotional-token indexes line up.
package text

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases the input, strips punctuation and symbol runes
// in place (so contractions collapse: "don't" -> "dont") and splits on
// whitespace. Unrecognized code points are kept as ordinary letters;
// malformed UTF-8 never fails, it just yields odd tokens.
func Tokenize(s string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsPunct(r), unicode.IsSymbol(r), unicode.IsControl(r):
			return -1
		default:
			return unicode.ToLower(r)
		}
	}, s)
	return strings.Fields(cleaned)
}

// Sentences splits on terminal punctuation and drops empty fragments.
// "Hi... there!!" counts as two sentences, not five.
func Sentences(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
