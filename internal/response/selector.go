package response

import (
	"github.com/sant0-9/chatbotely/internal/intent"
	"github.com/sant0-9/chatbotely/internal/lexicon"
)

// NotSure is returned for requests and questions the bot cannot satisfy
const NotSure = "I'm sorry, I'm not sure how to answer that."

// Selector turns an intent into a reply string
type Selector struct {
	pools map[intent.Intent][]string
	src   Source
}

// NewSelector creates a selector over the lexicon's response pools.
// A nil src falls back to GlobalSource.
func NewSelector(lex *lexicon.Lexicon, src Source) *Selector {
	if src == nil {
		src = GlobalSource()
	}
	r := lex.Responses
	return &Selector{
		pools: map[intent.Intent][]string{
			intent.Greeting:        r.Greeting,
			intent.Farewell:        r.Farewell,
			intent.SongRequest:     r.Song,
			intent.Quote:           r.Quote,
			intent.SelfStateQuery:  r.SelfState,
			intent.WelcomeFallback: r.Welcome,
		},
		src: src,
	}
}

// Select draws one reply uniformly from the intent's pool. Unsatisfied
// intents, and any intent without a pool, get NotSure.
func (s *Selector) Select(in intent.Intent) string {
	if in.Unsatisfied() {
		return NotSure
	}
	pool := s.pools[in]
	if len(pool) == 0 {
		return NotSure
	}
	return pool[s.src.IntN(len(pool))]
}

// Pool returns the candidate replies for an intent
func (s *Selector) Pool(in intent.Intent) []string {
	return s.pools[in]
}
