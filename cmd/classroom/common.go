package main

import (
	"fmt"

	"github.com/longregen/classroom/internal/adapters/livekit"
	"github.com/longregen/classroom/internal/config"
	"github.com/longregen/classroom/internal/llm"
	"go.uber.org/zap"
)

// Version information (set via ldflags)
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// Shared global variables
var (
	cfg       *config.Config
	logger    *zap.Logger
	llmClient *llm.Client
)

// newLiveKitService builds the token signer, or returns nil when LiveKit is not configured
func newLiveKitService() (*livekit.Service, error) {
	if !cfg.IsLiveKitConfigured() {
		return nil, nil
	}

	svc, err := livekit.NewService(&livekit.ServiceConfig{
		URL:                   cfg.LiveKit.URL,
		APIKey:                cfg.LiveKit.APIKey,
		APISecret:             cfg.LiveKit.APISecret,
		TokenValidityDuration: cfg.LiveKit.TokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LiveKit service: %w", err)
	}
	return svc, nil
}

// maskSecret masks a secret string for display
func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "(set)"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// boolStatus returns a status string for a boolean
func boolStatus(b bool) string {
	if b {
		return "configured"
	}
	return "not configured"
}
