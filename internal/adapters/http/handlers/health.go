package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/longregen/classroom/internal/logging"
	"github.com/longregen/classroom/internal/ports"
	"go.uber.org/zap"
)

// HealthCheckConfig holds configuration for health checks
type HealthCheckConfig struct {
	Timeout time.Duration // Timeout for each individual health check
}

// DefaultHealthCheckConfig returns default health check configuration
func DefaultHealthCheckConfig() HealthCheckConfig {
	return HealthCheckConfig{
		Timeout: 5 * time.Second,
	}
}

type HealthHandler struct {
	config  HealthCheckConfig
	version string
	logger  *zap.Logger
	llm     ports.HealthChecker
	liveKit ports.HealthChecker
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		config:  DefaultHealthCheckConfig(),
		version: version,
		logger:  zap.NewNop(),
	}
}

// NewHealthHandlerWithDeps wires the probes used by /health/detailed. Either may be nil.
// Probe errors are logged; the response only carries the status.
func NewHealthHandlerWithDeps(version string, logger *zap.Logger, llm, liveKit ports.HealthChecker) *HealthHandler {
	h := NewHealthHandler(version)
	if logger != nil {
		h.logger = logger
	}
	h.llm = llm
	h.liveKit = liveKit
	return h
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type DetailedHealthResponse struct {
	Status   string                   `json:"status"`
	Version  string                   `json:"version"`
	Services map[string]ServiceHealth `json:"services"`
}

type ServiceHealth struct {
	Status    string `json:"status"`
	LatencyMs *int64 `json:"latency_ms,omitempty"`
}

// Handle provides a basic liveness endpoint
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "ok",
		Version: h.version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// HandleDetailed probes the completion API and LiveKit
func (h *HealthHandler) HandleDetailed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := DetailedHealthResponse{
		Version:  h.version,
		Services: make(map[string]ServiceHealth),
	}

	if h.llm != nil {
		response.Services["llm"] = h.check(ctx, "llm", h.llm)
	}

	if h.liveKit != nil {
		response.Services["livekit"] = h.check(ctx, "livekit", h.liveKit)
	} else {
		response.Services["livekit"] = ServiceHealth{Status: "not_configured"}
	}

	response.Status = h.calculateOverallStatus(response.Services)

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

func (h *HealthHandler) check(ctx context.Context, name string, checker ports.HealthChecker) ServiceHealth {
	start := time.Now()
	checkCtx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	err := checker.Ping(checkCtx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		logging.WithContext(ctx, h.logger).Warn("health check failed",
			zap.String("service", name),
			zap.Int64("latency_ms", latency),
			zap.Error(err),
		)
		return ServiceHealth{
			Status:    "unhealthy",
			LatencyMs: &latency,
		}
	}

	return ServiceHealth{
		Status:    "healthy",
		LatencyMs: &latency,
	}
}

// calculateOverallStatus: the LLM is critical, LiveKit only degrades the service
func (h *HealthHandler) calculateOverallStatus(services map[string]ServiceHealth) string {
	degraded := false
	for name, service := range services {
		switch service.Status {
		case "unhealthy":
			if name == "llm" {
				return "unhealthy"
			}
			degraded = true
		case "not_configured":
			degraded = true
		}
	}

	if degraded {
		return "degraded"
	}
	return "healthy"
}
