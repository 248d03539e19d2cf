package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/longregen/classroom/internal/adapters/http"
	"github.com/longregen/classroom/internal/adapters/id"
	"github.com/longregen/classroom/internal/adapters/tracing"
	"github.com/longregen/classroom/internal/application/usecases"
	"github.com/longregen/classroom/internal/llm"
	"github.com/longregen/classroom/internal/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the HTTP API server
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the classroom HTTP API server.

Routes:
  POST /token     LiveKit access token for {name, room, role}
  POST /ask-ai    answer to {question} from the completion API
  GET  /health, /health/detailed, /metrics

LiveKit (LIVEKIT_URL, LIVEKIT_API_KEY, LIVEKIT_API_SECRET) is optional at
startup; /token answers 500 until all three are set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

// runServer initializes and starts the HTTP API server
func runServer(ctx context.Context) error {
	logger.Info("starting classroom API server",
		zap.String("addr", cfg.Addr()),
		zap.String("llm_url", cfg.LLM.URL),
		zap.String("llm_model", cfg.LLM.Model),
		zap.Bool("livekit_configured", cfg.IsLiveKitConfigured()),
	)

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, os.Stdout)
		if err != nil {
			logger.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warn("error shutting down tracer", zap.Error(err))
				}
			}()
			logger.Info("OpenTelemetry tracing initialized")
		}
	}

	idGen := id.New()
	llmService := llm.NewService(llmClient)

	// Interfaces stay nil, not typed-nil, when LiveKit is absent
	var liveKitService ports.LiveKitService
	var liveKitHealth ports.HealthChecker
	lk, err := newLiveKitService()
	if err != nil {
		return err
	}
	if lk != nil {
		liveKitService = lk
		liveKitHealth = lk
		logger.Info("LiveKit service initialized", zap.String("url", lk.URL()))
	} else {
		logger.Warn("LiveKit not configured - /token will fail until LIVEKIT_URL, LIVEKIT_API_KEY and LIVEKIT_API_SECRET are set")
	}

	issueToken := usecases.NewIssueToken(liveKitService, logger)
	askAssistant := usecases.NewAskAssistant(llmService, cfg.LLM.SystemPrompt, logger)

	server := http.NewServer(cfg, logger, idGen, issueToken, askAssistant, llmService, liveKitHealth, version)

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		logger.Info("server stopped")
		return nil
	}
}
