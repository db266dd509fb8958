package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/chatbotely/internal/annotate"
	"github.com/sant0-9/chatbotely/internal/corpus"
	"github.com/sant0-9/chatbotely/internal/intent"
	"github.com/sant0-9/chatbotely/internal/lexicon"
	"github.com/sant0-9/chatbotely/internal/pipeline"
	"github.com/sant0-9/chatbotely/internal/response"
	"github.com/sant0-9/chatbotely/internal/transcript"
)

type memRecorder struct {
	mu    sync.Mutex
	turns []transcript.Turn
	err   error
}

func (m *memRecorder) Append(_ context.Context, t transcript.Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.turns = append(m.turns, t)
	return nil
}

type failingResponder struct{}

func (failingResponder) Process(context.Context, string) (*pipeline.Result, error) {
	return nil, errors.New("boom")
}

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()

	if cfg.Responder == nil {
		lex := lexicon.Default()
		model, err := annotate.Train(corpus.Default())
		require.NoError(t, err)

		p, err := pipeline.NewPipeline(pipeline.Config{
			Annotator:  annotate.NewLexicalAnnotator(model),
			Classifier: intent.NewClassifier(lex),
			Selector:   response.NewSelector(lex, response.NewSource(7)),
		})
		require.NoError(t, err)
		cfg.Responder = p
	}
	cfg.Mode = "test"

	srv, err := New(cfg)
	require.NoError(t, err)
	return srv
}

func postRespond(srv *HTTPServer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/respond", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewRequiresResponder(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)
}

func TestRespond(t *testing.T) {
	rec := &memRecorder{}
	srv := newTestServer(t, Config{Recorder: rec})

	w := postRespond(srv, `{"text":"hi. bye.","session_id":"s-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out respondResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	assert.Equal(t, "s-1", out.SessionID)
	require.Len(t, out.Sentences, 2)
	assert.Equal(t, "GREETING", out.Sentences[0].Intent)
	assert.Equal(t, "FAREWELL", out.Sentences[1].Intent)
	assert.Equal(t, out.Sentences[0].Response+" "+out.Sentences[1].Response, out.Reply)

	require.Len(t, rec.turns, 1)
	assert.Equal(t, "s-1", rec.turns[0].SessionID)
	assert.Equal(t, "hi. bye.", rec.turns[0].Input)
	assert.Equal(t, out.Reply, rec.turns[0].Reply)
	assert.Equal(t, []string{"GREETING", "FAREWELL"}, rec.turns[0].Intents)
}

func TestRespondAssignsSession(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := postRespond(srv, `{"text":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out respondResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.NotEmpty(t, out.SessionID)
}

func TestRespondRecorderFailureStillReplies(t *testing.T) {
	srv := newTestServer(t, Config{Recorder: &memRecorder{err: errors.New("disk full")}})

	w := postRespond(srv, `{"text":"sing"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRespondEmptyInput(t *testing.T) {
	rec := &memRecorder{}
	srv := newTestServer(t, Config{Recorder: rec})

	w := postRespond(srv, `{"text":"  \t "}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, rec.turns)
}

func TestRespondPunctuationOnly(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := postRespond(srv, `{"text":"?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out respondResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Sentences, 1)
	assert.Equal(t, "WELCOME_FALLBACK", out.Sentences[0].Intent)
	assert.Contains(t, lexicon.Default().Responses.Welcome, out.Reply)
}

func TestRespondBadRequest(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := postRespond(srv, `{"text":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondResponderError(t *testing.T) {
	srv := newTestServer(t, Config{Responder: failingResponder{}})

	w := postRespond(srv, `{"text":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRespondRateLimited(t *testing.T) {
	srv := newTestServer(t, Config{RateLimitPerMin: 1})

	first := postRespond(srv, `{"text":"hi"}`)
	assert.Equal(t, http.StatusOK, first.Code)

	second := postRespond(srv, `{"text":"hi"}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// health is outside the limited group
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterPerClient(t *testing.T) {
	rl := newRateLimiter(1)

	assert.NoError(t, rl.Allow("a"))
	assert.Error(t, rl.Allow("a"))
	assert.NoError(t, rl.Allow("b"))
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(1)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("203.0.113.7") == nil {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, allowed)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, Config{Addr: "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
