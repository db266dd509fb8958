package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultData []byte

// Set is a case-insensitive collection of trigger words
type Set map[string]struct{}

// NewSet builds a set from words, lowercasing each one
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// Contains reports exact membership of word, ignoring case
func (s Set) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var words []string
	if err := node.Decode(&words); err != nil {
		return err
	}
	*s = NewSet(words...)
	return nil
}

func (s Set) MarshalYAML() (interface{}, error) {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	return words, nil
}

// Sets holds the category trigger words matched against the ROOT token
type Sets struct {
	Greetings    Set `yaml:"greetings"`
	Farewells    Set `yaml:"farewells"`
	RequestVerbs Set `yaml:"request_verbs"`
	QuoteNouns   Set `yaml:"quote_nouns"`
	SongVerbs    Set `yaml:"song_verbs"`
	SelfTargets  Set `yaml:"self_targets"`
	Questions    Set `yaml:"questions"`
}

// Responses holds the canned reply pools, one per category
type Responses struct {
	Greeting  []string `yaml:"greeting"`
	Welcome   []string `yaml:"welcome"`
	SelfState []string `yaml:"self_state"`
	Quote     []string `yaml:"quote"`
	Song      []string `yaml:"song"`
	Farewell  []string `yaml:"farewell"`
}

// Lexicon is the static vocabulary and reply data of the bot.
// It is never mutated after loading.
type Lexicon struct {
	Sets      Sets      `yaml:"sets"`
	Responses Responses `yaml:"responses"`
}

// Default returns the built-in lexicon
func Default() *Lexicon {
	lex, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("lexicon: embedded data is invalid: %v", err))
	}
	return lex
}

// Load reads a lexicon file from disk. An empty path yields the default.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	lex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// Parse decodes and validates lexicon YAML
func Parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return &lex, nil
}

// Validate checks that no set or pool is empty. Errors come back in
// declaration order.
func (l *Lexicon) Validate() error {
	var errs []error

	sets := []struct {
		name string
		set  Set
	}{
		{"greetings", l.Sets.Greetings},
		{"farewells", l.Sets.Farewells},
		{"request_verbs", l.Sets.RequestVerbs},
		{"quote_nouns", l.Sets.QuoteNouns},
		{"song_verbs", l.Sets.SongVerbs},
		{"self_targets", l.Sets.SelfTargets},
		{"questions", l.Sets.Questions},
	}
	for _, s := range sets {
		if len(s.set) == 0 {
			errs = append(errs, fmt.Errorf("set %s is empty", s.name))
		}
	}

	pools := []struct {
		name string
		pool []string
	}{
		{"greeting", l.Responses.Greeting},
		{"welcome", l.Responses.Welcome},
		{"self_state", l.Responses.SelfState},
		{"quote", l.Responses.Quote},
		{"song", l.Responses.Song},
		{"farewell", l.Responses.Farewell},
	}
	for _, p := range pools {
		if len(p.pool) == 0 {
			errs = append(errs, fmt.Errorf("response pool %s is empty", p.name))
		}
	}

	return errors.Join(errs...)
}
