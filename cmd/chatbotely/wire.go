package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/sant0-9/chatbotely/internal/annotate"
	"github.com/sant0-9/chatbotely/internal/config"
	"github.com/sant0-9/chatbotely/internal/corpus"
	"github.com/sant0-9/chatbotely/internal/intent"
	"github.com/sant0-9/chatbotely/internal/lexicon"
	"github.com/sant0-9/chatbotely/internal/pipeline"
	"github.com/sant0-9/chatbotely/internal/response"
	"github.com/sant0-9/chatbotely/internal/transcript"
)

type turnRecorder interface {
	Append(ctx context.Context, t transcript.Turn) error
}

// bot is the fully wired responder plus the optional transcript store
type bot struct {
	pipeline *pipeline.Pipeline
	store    *transcript.Store
}

func newBot(c *config.Config, logger *zap.Logger) (*bot, error) {
	lex, err := loadLexicon(c)
	if err != nil {
		return nil, err
	}

	model, err := loadModel(c, logger)
	if err != nil {
		return nil, err
	}

	var annotator annotate.Annotator = annotate.NewLexicalAnnotator(model)
	if c.CacheSize > 0 {
		cached, err := annotate.NewCachedAnnotator(annotator, c.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create annotation cache: %w", err)
		}
		annotator = cached
	}

	src := response.GlobalSource()
	if c.Seed != 0 {
		src = response.NewSource(c.Seed)
	}

	p, err := pipeline.NewPipeline(pipeline.Config{
		Annotator:       annotator,
		Classifier:      intent.NewClassifier(lex),
		Selector:        response.NewSelector(lex, src),
		Logger:          logger,
		AnnotateTimeout: c.AnnotateTimeout,
	})
	if err != nil {
		return nil, err
	}

	b := &bot{pipeline: p}
	if c.Transcript.Enabled {
		path, err := c.TranscriptPath()
		if err != nil {
			return nil, err
		}
		b.store, err = transcript.Open(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("recording transcript", zap.String("path", path))
	}
	return b, nil
}

// recorder returns the store, or a nil interface when transcripts are off
func (b *bot) recorder() turnRecorder {
	if b.store == nil {
		return nil
	}
	return b.store
}

func (b *bot) Close() error {
	if b.store != nil {
		return b.store.Close()
	}
	return nil
}

func loadLexicon(c *config.Config) (*lexicon.Lexicon, error) {
	if c.LexiconPath == "" {
		return lexicon.Default(), nil
	}
	lex, err := lexicon.Load(c.LexiconPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	return lex, nil
}

func loadCorpus(c *config.Config) (*corpus.Corpus, error) {
	if c.CorpusPath == "" {
		return corpus.Default(), nil
	}
	cp, err := corpus.Load(c.CorpusPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	return cp, nil
}

// loadModel reads the saved labeler model, training one from the corpus
// when no model file is configured or it does not exist yet
func loadModel(c *config.Config, logger *zap.Logger) (*annotate.Model, error) {
	if c.ModelPath != "" {
		m, err := annotate.LoadModelFile(c.ModelPath)
		if err == nil {
			logger.Debug("loaded labeler model",
				zap.String("path", c.ModelPath),
				zap.Int("vocabulary", m.Vocabulary()),
			)
			return m, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load model: %w", err)
		}
		logger.Info("model file not found, training from corpus", zap.String("path", c.ModelPath))
	}

	cp, err := loadCorpus(c)
	if err != nil {
		return nil, err
	}
	return annotate.Train(cp)
}

func defaultModelPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "labeler.msgpack"), nil
}
