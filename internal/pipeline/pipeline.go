package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sant0-9/chatbotely/internal/annotate"
	"github.com/sant0-9/chatbotely/internal/intent"
	"github.com/sant0-9/chatbotely/internal/label"
	"github.com/sant0-9/chatbotely/internal/response"
)

// ErrEmptyInput is returned by Process when there is nothing to answer
var ErrEmptyInput = errors.New("empty input")

const defaultAnnotateTimeout = 2 * time.Second

// Stage represents a pipeline stage
type Stage int

const (
	StageSegmenting Stage = iota
	StageAnnotating
	StageResponding
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageSegmenting:
		return "Segmenting"
	case StageAnnotating:
		return "Annotating"
	case StageResponding:
		return "Responding"
	case StageDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Progress represents pipeline progress
type Progress struct {
	Stage      Stage
	ItemIndex  int
	TotalItems int
	Message    string
}

// SentenceResult is the outcome for one sentence of the input.
// Fault records why the sentence fell back to the welcome reply, if it did.
type SentenceResult struct {
	Text     string
	Tokens   []label.Token
	Intent   intent.Intent
	Response string
	Fault    error
}

// Result contains pipeline output
type Result struct {
	Sentences []SentenceResult
	Reply     string
}

// Intents lists the classified intent of each sentence
func (r *Result) Intents() []intent.Intent {
	out := make([]intent.Intent, len(r.Sentences))
	for i, s := range r.Sentences {
		out[i] = s.Intent
	}
	return out
}

// Config is the set of collaborators a Pipeline runs
type Config struct {
	Segmenter  annotate.Segmenter
	Annotator  annotate.Annotator
	Classifier *intent.Classifier
	Selector   *response.Selector
	Logger     *zap.Logger

	// AnnotateTimeout bounds each per-sentence annotator call
	AnnotateTimeout time.Duration
}

// Pipeline turns raw user text into a reply, one sentence at a time.
// Sentences are handled independently; nothing carries over between
// sentences or between calls.
type Pipeline struct {
	segmenter  annotate.Segmenter
	annotator  annotate.Annotator
	classifier *intent.Classifier
	selector   *response.Selector
	logger     *zap.Logger
	timeout    time.Duration
	onProgress func(Progress)
}

// NewPipeline creates a new pipeline
func NewPipeline(cfg Config) (*Pipeline, error) {
	if cfg.Annotator == nil || cfg.Classifier == nil || cfg.Selector == nil {
		return nil, errors.New("pipeline: annotator, classifier and selector are required")
	}

	p := &Pipeline{
		segmenter:  cfg.Segmenter,
		annotator:  cfg.Annotator,
		classifier: cfg.Classifier,
		selector:   cfg.Selector,
		logger:     cfg.Logger,
		timeout:    cfg.AnnotateTimeout,
	}
	if p.segmenter == nil {
		p.segmenter = annotate.RuleSegmenter{}
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	if p.timeout <= 0 {
		p.timeout = defaultAnnotateTimeout
	}
	return p, nil
}

// SetProgressCallback sets the progress callback
func (p *Pipeline) SetProgressCallback(fn func(Progress)) {
	p.onProgress = fn
}

func (p *Pipeline) progress(pr Progress) {
	if p.onProgress != nil {
		p.onProgress(pr)
	}
}

// Respond returns the reply to text. The second result is false when
// the input is empty and there is no reply.
func (p *Pipeline) Respond(ctx context.Context, text string) (string, bool) {
	res, err := p.Process(ctx, text)
	if err != nil {
		return "", false
	}
	return res.Reply, true
}

// Process runs the pipeline and returns the per-sentence trace.
// It fails only with ErrEmptyInput for blank text; per-sentence faults are
// recorded on the SentenceResult and answered with the welcome fallback.
func (p *Pipeline) Process(ctx context.Context, text string) (*Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	p.progress(Progress{Stage: StageSegmenting, Message: "Splitting input into sentences..."})

	sentences := p.segmenter.Segment(text)
	if len(sentences) == 0 {
		// No words, so nothing can carry the ROOT label
		sr := p.fallback(trimmed, intent.ErrMissingRoot)
		p.progress(Progress{Stage: StageDone, TotalItems: 1, Message: "Done"})
		return &Result{Sentences: []SentenceResult{sr}, Reply: sr.Response}, nil
	}

	res := &Result{Sentences: make([]SentenceResult, 0, len(sentences))}
	replies := make([]string, 0, len(sentences))

	for i, s := range sentences {
		p.progress(Progress{
			Stage:      StageAnnotating,
			ItemIndex:  i + 1,
			TotalItems: len(sentences),
			Message:    fmt.Sprintf("Annotating sentence %d/%d", i+1, len(sentences)),
		})

		sr := p.processSentence(ctx, s)
		res.Sentences = append(res.Sentences, sr)
		replies = append(replies, sr.Response)
	}

	p.progress(Progress{Stage: StageResponding, TotalItems: len(sentences), Message: "Joining replies..."})
	res.Reply = strings.Join(replies, " ")
	p.progress(Progress{Stage: StageDone, TotalItems: len(sentences), Message: "Done"})

	return res, nil
}

// fallback answers sentence with the welcome reply, recording why
func (p *Pipeline) fallback(sentence string, fault error) SentenceResult {
	return SentenceResult{
		Text:     sentence,
		Intent:   intent.WelcomeFallback,
		Response: p.selector.Select(intent.WelcomeFallback),
		Fault:    fault,
	}
}

func (p *Pipeline) processSentence(ctx context.Context, sentence string) SentenceResult {
	tokens, err := p.annotateSentence(ctx, sentence)
	if err != nil {
		p.logger.Warn("annotation failed, using welcome fallback",
			zap.String("sentence", sentence),
			zap.Error(err),
		)
		return p.fallback(sentence, err)
	}
	sr := SentenceResult{Text: sentence, Tokens: tokens}

	in, err := p.classifier.Classify(label.NewMap(tokens))
	if err != nil {
		p.logger.Debug("classification fault",
			zap.String("sentence", sentence),
			zap.Error(err),
		)
		sr.Fault = err
	}
	sr.Intent = in
	sr.Response = p.selector.Select(in)

	p.logger.Debug("sentence classified",
		zap.String("sentence", sentence),
		zap.Stringer("intent", in),
	)
	return sr
}

func (p *Pipeline) annotateSentence(ctx context.Context, sentence string) ([]label.Token, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	type annotation struct {
		tokens []label.Token
		err    error
	}

	// The annotator may not watch ctx, so the deadline is enforced here too
	done := make(chan annotation, 1)
	go func() {
		tokens, err := p.annotator.Annotate(ctx, sentence)
		done <- annotation{tokens, err}
	}()

	select {
	case a := <-done:
		if a.err != nil {
			return nil, fmt.Errorf("annotate %q: %w", sentence, a.err)
		}
		return a.tokens, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("annotate %q: %w", sentence, ctx.Err())
	}
}
