package annotate

import (
	"strings"

	"github.com/sant0-9/chatbotely/internal/corpus"
)

// RuleSegmenter splits text on sentence terminators and line breaks
type RuleSegmenter struct{}

// Segment returns the sentences of text with their tokens re-joined by
// single spaces. Runs of terminators ("?!", "...") end one sentence.
func (RuleSegmenter) Segment(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', '!', '?', '\n', '\r':
			return true
		}
		return false
	})

	var sentences []string
	for _, p := range parts {
		words := corpus.Tokenize(p)
		if len(words) == 0 {
			continue
		}
		sentences = append(sentences, strings.Join(words, " "))
	}
	return sentences
}
