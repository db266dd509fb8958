package corpus

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sant0-9/chatbotely/internal/label"
)

//go:embed corpus.yaml
var defaultData []byte

// Example is one annotated training sentence. Heads and Deps are aligned
// with the tokens of Text as produced by Tokenize.
type Example struct {
	Text  string   `yaml:"text"`
	Heads []int    `yaml:"heads"`
	Deps  []string `yaml:"deps"`
}

// Corpus is the labeler training data plus sample texts for evaluation
type Corpus struct {
	Examples []Example `yaml:"examples"`
	Samples  []string  `yaml:"samples"`
}

// Default returns the built-in corpus
func Default() *Corpus {
	c, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("corpus: embedded data is invalid: %v", err))
	}
	return c
}

// Load reads a corpus file. An empty path yields the default corpus.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates corpus YAML
func Parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every example for alignment and known labels
func (c *Corpus) Validate() error {
	if len(c.Examples) == 0 {
		return errors.New("corpus has no examples")
	}

	var errs []error
	for i, ex := range c.Examples {
		if err := ex.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("example %d (%q): %w", i, ex.Text, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks that heads and deps line up with the tokenized text
func (e Example) Validate() error {
	n := len(Tokenize(e.Text))
	if n == 0 {
		return errors.New("empty text")
	}
	if len(e.Heads) != n {
		return fmt.Errorf("%d heads for %d tokens", len(e.Heads), n)
	}
	if len(e.Deps) != n {
		return fmt.Errorf("%d deps for %d tokens", len(e.Deps), n)
	}

	for i, h := range e.Heads {
		if h < 0 || h >= n {
			return fmt.Errorf("token %d: head %d out of range", i, h)
		}
	}
	for i, d := range e.Deps {
		if _, err := label.Parse(d); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
	}
	return nil
}

// Tokens returns the example as annotated tokens
func (e Example) Tokens() ([]label.Token, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	words := Tokenize(e.Text)
	tokens := make([]label.Token, len(words))
	for i, w := range words {
		l, _ := label.Parse(e.Deps[i])
		tokens[i] = label.Token{Text: w, Label: l, Head: e.Heads[i]}
	}
	return tokens, nil
}
