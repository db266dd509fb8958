package annotate

import (
	"context"

	"github.com/sant0-9/chatbotely/internal/corpus"
	"github.com/sant0-9/chatbotely/internal/label"
)

// LexicalAnnotator labels tokens by looking each word up in a trained Model.
//
// At most one token becomes ROOT: the one most often seen as ROOT in
// training (earliest on ties). A sentence whose words were never ROOT gets
// no ROOT at all. All other tokens take their most frequent non-ROOT label
// and point at the ROOT as their head.
type LexicalAnnotator struct {
	model *Model
}

// NewLexicalAnnotator creates an annotator over a trained model
func NewLexicalAnnotator(m *Model) *LexicalAnnotator {
	return &LexicalAnnotator{model: m}
}

func (a *LexicalAnnotator) Annotate(ctx context.Context, sentence string) ([]label.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	words := corpus.Tokenize(sentence)

	root, best := -1, 0.0
	for i, w := range words {
		if r := a.model.rootRatio(w); r > best {
			root, best = i, r
		}
	}

	tokens := make([]label.Token, len(words))
	for i, w := range words {
		t := label.Token{Text: w, Head: root}
		if i == root {
			t.Label = label.Root
		} else {
			t.Label = a.model.bestLabel(w)
		}
		if root < 0 {
			t.Head = i
		}
		tokens[i] = t
	}
	return tokens, nil
}
