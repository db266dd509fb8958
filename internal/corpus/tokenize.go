package corpus

import (
	"strings"
	"unicode"
)

// Tokenize splits a sentence into words. Punctuation at the edges of a
// word is dropped; apostrophes and hyphens inside a word are kept.
func Tokenize(sentence string) []string {
	fields := strings.Fields(sentence)
	words := make([]string, 0, len(fields))

	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}
