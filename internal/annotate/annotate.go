// Package annotate produces per-token dependency labels for sentences and
// splits raw input into sentences.
package annotate

import (
	"context"

	"github.com/sant0-9/chatbotely/internal/label"
)

// Annotator labels the tokens of one sentence
type Annotator interface {
	Annotate(ctx context.Context, sentence string) ([]label.Token, error)
}

// Segmenter splits raw text into sentences. Empty input yields no sentences.
type Segmenter interface {
	Segment(text string) []string
}

// AnnotatorFunc adapts a function to the Annotator interface
type AnnotatorFunc func(ctx context.Context, sentence string) ([]label.Token, error)

func (f AnnotatorFunc) Annotate(ctx context.Context, sentence string) ([]label.Token, error) {
	return f(ctx, sentence)
}
