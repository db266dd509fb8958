package annotate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/sant0-9/chatbotely/internal/corpus"
	"github.com/sant0-9/chatbotely/internal/label"
)

const modelVersion = 1

// Model holds per-word label counts learned from an annotated corpus
type Model struct {
	Version  int                            `msgpack:"version"`
	Examples int                            `msgpack:"examples"`
	Counts   map[string]map[label.Label]int `msgpack:"counts"`
}

// Train counts the labels of every corpus token, keyed by lowercase word
func Train(c *corpus.Corpus) (*Model, error) {
	if c == nil || len(c.Examples) == 0 {
		return nil, errors.New("no training examples")
	}

	m := &Model{
		Version: modelVersion,
		Counts:  make(map[string]map[label.Label]int),
	}

	for i, ex := range c.Examples {
		tokens, err := ex.Tokens()
		if err != nil {
			return nil, fmt.Errorf("example %d: %w", i, err)
		}
		for _, t := range tokens {
			w := strings.ToLower(t.Text)
			if m.Counts[w] == nil {
				m.Counts[w] = make(map[label.Label]int)
			}
			m.Counts[w][t.Label]++
		}
		m.Examples++
	}

	return m, nil
}

// Vocabulary returns the number of distinct words seen in training
func (m *Model) Vocabulary() int {
	return len(m.Counts)
}

// rootRatio is the share of a word's occurrences labeled ROOT
func (m *Model) rootRatio(word string) float64 {
	counts := m.Counts[strings.ToLower(word)]
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(counts[label.Root]) / float64(total)
}

// bestLabel returns the most frequent non-ROOT label of word.
// Ties go to the label listed first in label.All; unseen words get NoRelation.
func (m *Model) bestLabel(word string) label.Label {
	counts := m.Counts[strings.ToLower(word)]
	best, bestN := label.NoRelation, 0
	for _, l := range label.All {
		if l == label.Root {
			continue
		}
		if n := counts[l]; n > bestN {
			best, bestN = l, n
		}
	}
	return best
}

// Save writes the model in msgpack form
func (m *Model) Save(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(m)
}

// SaveFile writes the model to path, creating parent directories
func (m *Model) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("encode model: %w", err)
	}
	return f.Close()
}

// LoadModel reads a model written by Save
func LoadModel(r io.Reader) (*Model, error) {
	var m Model
	if err := msgpack.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if m.Version != modelVersion {
		return nil, fmt.Errorf("unsupported model version %d", m.Version)
	}
	if m.Counts == nil {
		m.Counts = make(map[string]map[label.Label]int)
	}
	return &m, nil
}

// LoadModelFile reads a model from path
func LoadModelFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadModel(f)
}
