package usecases

import (
	"context"
	"encoding/json"

	"github.com/longregen/classroom/internal/adapters/metrics"
	"github.com/longregen/classroom/internal/domain"
	"github.com/longregen/classroom/internal/logging"
	"github.com/longregen/classroom/internal/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// participantMetadata is embedded in the token as a JSON string
type participantMetadata struct {
	Role string `json:"role"`
}

// IssueToken mints a LiveKit access token that lets a named participant join,
// publish and subscribe in a single room.
type IssueToken struct {
	liveKitService ports.LiveKitService
	logger         *zap.Logger
}

// NewIssueToken creates the use case. liveKitService may be nil when LiveKit
// is not configured; every request then fails with a configuration error.
func NewIssueToken(liveKitService ports.LiveKitService, logger *zap.Logger) *IssueToken {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IssueToken{
		liveKitService: liveKitService,
		logger:         logger,
	}
}

func (uc *IssueToken) CheckConfigured() error {
	if uc.liveKitService == nil {
		return domain.NewConfigurationError("LiveKit ENV variables missing")
	}
	return nil
}

func (uc *IssueToken) Execute(ctx context.Context, input *ports.IssueTokenInput) (*ports.IssueTokenOutput, error) {
	ctx, span := otel.Tracer("classroom/usecases").Start(ctx, "IssueToken")
	defer span.End()

	log := logging.WithContext(ctx, uc.logger)

	if err := uc.CheckConfigured(); err != nil {
		metrics.TokensIssuedTotal.WithLabelValues("config_error").Inc()
		span.SetStatus(codes.Error, "livekit not configured")
		return nil, err
	}

	if input == nil {
		input = &ports.IssueTokenInput{}
	}
	log.Info("token request",
		zap.String("name", input.Name),
		zap.String("room", input.Room),
		zap.String("role", input.Role),
	)

	if input.Name == "" || input.Room == "" || input.Role == "" {
		metrics.TokensIssuedTotal.WithLabelValues("invalid").Inc()
		return nil, domain.NewValidationError("Missing name, room, or role")
	}

	span.SetAttributes(
		attribute.String("livekit.room", input.Room),
		attribute.String("livekit.identity", input.Name),
		attribute.String("classroom.role", input.Role),
	)

	metadata, err := json.Marshal(participantMetadata{Role: input.Role})
	if err != nil {
		metrics.TokensIssuedTotal.WithLabelValues("error").Inc()
		return nil, domain.NewUpstreamError("Token generation failed", err)
	}

	token, err := uc.liveKitService.GenerateToken(ctx, ports.LiveKitTokenParams{
		Identity: input.Name,
		Room:     input.Room,
		Metadata: string(metadata),
	})
	if err != nil {
		log.Error("token generation failed", zap.String("name", input.Name), zap.Error(err))
		metrics.TokensIssuedTotal.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "token generation failed")
		return nil, domain.NewUpstreamError("Token generation failed", err)
	}

	log.Info("token generated", zap.String("name", input.Name), zap.String("role", input.Role))
	metrics.TokensIssuedTotal.WithLabelValues("success").Inc()

	return &ports.IssueTokenOutput{
		Token:     token.Token,
		URL:       uc.liveKitService.URL(),
		ExpiresAt: token.ExpiresAt,
	}, nil
}
