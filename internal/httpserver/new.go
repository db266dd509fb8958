// Package httpserver exposes the responder over HTTP for web chat front ends.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sant0-9/chatbotely/internal/pipeline"
	"github.com/sant0-9/chatbotely/internal/transcript"
)

// Responder produces the per-sentence trace for one user message
type Responder interface {
	Process(ctx context.Context, text string) (*pipeline.Result, error)
}

// TurnRecorder stores completed turns
type TurnRecorder interface {
	Append(ctx context.Context, t transcript.Turn) error
}

// Config is the dependency bag passed to New()
type Config struct {
	Logger          *zap.Logger
	Responder       Responder
	Recorder        TurnRecorder
	Addr            string
	Mode            string
	RateLimitPerMin int
}

// HTTPServer holds all dependencies for the HTTP server
type HTTPServer struct {
	gin       *gin.Engine
	l         *zap.Logger
	addr      string
	responder Responder
	recorder  TurnRecorder
	limiter   *rateLimiter
}

// New creates a new HTTPServer instance
func New(cfg Config) (*HTTPServer, error) {
	if cfg.Responder == nil {
		return nil, errors.New("responder is required")
	}
	if cfg.Mode == "" {
		cfg.Mode = gin.ReleaseMode
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:       gin.New(),
		l:         cfg.Logger,
		addr:      cfg.Addr,
		responder: cfg.Responder,
		recorder:  cfg.Recorder,
	}
	if cfg.RateLimitPerMin > 0 {
		srv.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler returns the HTTP handler, mainly for tests
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is canceled, then shuts down gracefully
func (srv *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              srv.addr,
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Info("HTTP server listening", zap.String("addr", srv.addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.l.Info("HTTP server shutting down")
	return server.Shutdown(shutdownCtx)
}
