package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sant0-9/chatbotely/internal/httpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chatbot over HTTP",
	Long: `Starts an HTTP server for web chat front ends.

  GET  /health           liveness probe
  POST /api/v1/respond   {"text": "...", "session_id": "..."}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().Int("rate-limit", 0, "requests per minute per client (0 disables limiting)")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.rate_limit_per_min", serveCmd.Flags().Lookup("rate-limit"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := newBot(cfg, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	srv, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Responder:       b.pipeline,
		Recorder:        b.recorder(),
		Addr:            cfg.Server.Addr,
		Mode:            cfg.Server.Mode,
		RateLimitPerMin: cfg.Server.RateLimitPerMin,
	})
	if err != nil {
		return err
	}

	logger.Info("starting chatbotely server",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
		zap.Bool("transcript", b.store != nil),
	)
	return srv.Run(ctx)
}
