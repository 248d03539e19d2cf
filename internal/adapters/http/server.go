package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/longregen/classroom/internal/adapters/http/handlers"
	"github.com/longregen/classroom/internal/adapters/http/middleware"
	"github.com/longregen/classroom/internal/config"
	"github.com/longregen/classroom/internal/ports"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	config              *config.Config
	router              *chi.Mux
	httpServer          *http.Server
	logger              *zap.Logger
	idGen               ports.IDGenerator
	issueTokenUseCase   ports.IssueTokenUseCase
	askAssistantUseCase ports.AskAssistantUseCase
	llmHealth           ports.HealthChecker
	liveKitHealth       ports.HealthChecker
	version             string
}

// NewServer builds the router. liveKitHealth is nil when LiveKit is not configured.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	idGen ports.IDGenerator,
	issueTokenUseCase ports.IssueTokenUseCase,
	askAssistantUseCase ports.AskAssistantUseCase,
	llmHealth ports.HealthChecker,
	liveKitHealth ports.HealthChecker,
	version string,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		config:              cfg,
		logger:              logger,
		idGen:               idGen,
		issueTokenUseCase:   issueTokenUseCase,
		askAssistantUseCase: askAssistantUseCase,
		llmHealth:           llmHealth,
		liveKitHealth:       liveKitHealth,
		version:             version,
	}

	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID(s.idGen))
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.CORS(s.config.Server.CORSOrigins))
	r.Use(middleware.Metrics)

	healthHandler := handlers.NewHealthHandlerWithDeps(s.version, s.logger, s.llmHealth, s.liveKitHealth)
	r.Get("/health", healthHandler.Handle)
	r.Get("/health/detailed", healthHandler.HandleDetailed)
	r.Handle("/metrics", promhttp.Handler())

	tokenHandler := handlers.NewTokenHandler(s.issueTokenUseCase)
	r.Post("/token", tokenHandler.Generate)

	askHandler := handlers.NewAskHandler(s.askAssistantUseCase)
	r.Post("/ask-ai", askHandler.Ask)

	s.router = r
}

func (s *Server) Start() error {
	addr := s.config.Addr()

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Must outlast the completion API timeout
		WriteTimeout: s.config.LLM.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Info("starting HTTP server", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Router() *chi.Mux {
	return s.router
}
