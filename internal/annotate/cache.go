package annotate

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sant0-9/chatbotely/internal/label"
)

// CachedAnnotator memoizes the annotations of recently seen sentences.
// Failed annotations are not cached.
type CachedAnnotator struct {
	next  Annotator
	cache *lru.Cache[string, []label.Token]
}

// NewCachedAnnotator wraps next with an LRU cache holding up to size sentences
func NewCachedAnnotator(next Annotator, size int) (*CachedAnnotator, error) {
	cache, err := lru.New[string, []label.Token](size)
	if err != nil {
		return nil, err
	}
	return &CachedAnnotator{next: next, cache: cache}, nil
}

func (c *CachedAnnotator) Annotate(ctx context.Context, sentence string) ([]label.Token, error) {
	if tokens, ok := c.cache.Get(sentence); ok {
		return clone(tokens), nil
	}

	tokens, err := c.next.Annotate(ctx, sentence)
	if err != nil {
		return nil, err
	}
	c.cache.Add(sentence, clone(tokens))
	return tokens, nil
}

// Len returns the number of cached sentences
func (c *CachedAnnotator) Len() int {
	return c.cache.Len()
}

func clone(tokens []label.Token) []label.Token {
	out := make([]label.Token, len(tokens))
	copy(out, tokens)
	return out
}
