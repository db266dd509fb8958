package label

// Map holds, for one sentence, the first token carrying each label.
// Later tokens with an already-seen label are dropped, so a sentence with
// two ROOTs resolves to the earlier one.
type Map struct {
	tokens map[Label]Token
}

// NewMap builds the label map from tokens in annotator order
func NewMap(tokens []Token) Map {
	m := Map{tokens: make(map[Label]Token, len(tokens))}
	for _, t := range tokens {
		if _, seen := m.tokens[t.Label]; seen {
			continue
		}
		m.tokens[t.Label] = t
	}
	return m
}

// Lookup returns the token carrying l, if any
func (m Map) Lookup(l Label) (Token, bool) {
	t, ok := m.tokens[l]
	return t, ok
}

// Has reports whether any token carries l
func (m Map) Has(l Label) bool {
	_, ok := m.tokens[l]
	return ok
}

// Len returns the number of distinct labels present
func (m Map) Len() int {
	return len(m.tokens)
}
