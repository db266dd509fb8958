package intent

import (
	"errors"

	"github.com/sant0-9/chatbotely/internal/label"
	"github.com/sant0-9/chatbotely/internal/lexicon"
)

// ErrMissingRoot is returned when no token of the sentence carries ROOT
var ErrMissingRoot = errors.New("sentence has no ROOT token")

// Classifier maps a sentence's label map to an Intent
type Classifier struct {
	sets lexicon.Sets
}

// NewClassifier creates a classifier over the lexicon's trigger sets
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{sets: lex.Sets}
}

// Classify applies the decision table to one sentence. Rules are tried in
// order and the first match wins: greeting, request verb, song verb,
// farewell, question word, then the welcome fallback.
//
// A sentence without ROOT yields WelcomeFallback together with ErrMissingRoot.
func (c *Classifier) Classify(m label.Map) (Intent, error) {
	root, ok := m.Lookup(label.Root)
	if !ok {
		return WelcomeFallback, ErrMissingRoot
	}

	word := root.Text
	switch {
	case c.sets.Greetings.Contains(word):
		return Greeting, nil

	case c.sets.RequestVerbs.Contains(word):
		if obj, ok := m.Lookup(label.Obj); ok && c.sets.QuoteNouns.Contains(obj.Text) {
			return Quote, nil
		}
		return UnsatisfiedRequest, nil

	// Every song verb triggers a song, object or not
	case c.sets.SongVerbs.Contains(word):
		return SongRequest, nil

	case c.sets.Farewells.Contains(word):
		return Farewell, nil

	case c.sets.Questions.Contains(word):
		target, ok := m.Lookup(label.Target)
		if ok && m.Has(label.State) && c.sets.SelfTargets.Contains(target.Text) {
			return SelfStateQuery, nil
		}
		return UnsatisfiedQuestion, nil
	}

	return WelcomeFallback, nil
}
