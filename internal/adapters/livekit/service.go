package livekit

import (
	"context"
	"fmt"
	"time"

	"github.com/livekit/protocol/auth"
	lkproto "github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/longregen/classroom/internal/ports"
)

type ServiceConfig struct {
	URL                   string
	APIKey                string
	APISecret             string
	TokenValidityDuration time.Duration
}

func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		URL:                   "ws://localhost:7880",
		APIKey:                "",
		APISecret:             "",
		TokenValidityDuration: 6 * time.Hour,
	}
}

type Service struct {
	config     *ServiceConfig
	roomClient *lksdk.RoomServiceClient
}

func NewService(config *ServiceConfig) (*Service, error) {
	if config == nil {
		config = DefaultServiceConfig()
	}

	if config.URL == "" {
		return nil, fmt.Errorf("LiveKit URL is required")
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("LiveKit API key is required")
	}

	if config.APISecret == "" {
		return nil, fmt.Errorf("LiveKit API secret is required")
	}

	if config.TokenValidityDuration == 0 {
		config.TokenValidityDuration = 6 * time.Hour
	}

	roomClient := lksdk.NewRoomServiceClient(config.URL, config.APIKey, config.APISecret)

	return &Service{
		config:     config,
		roomClient: roomClient,
	}, nil
}

// URL returns the LiveKit URL clients should connect to
func (s *Service) URL() string {
	return s.config.URL
}

func (s *Service) GenerateToken(ctx context.Context, params ports.LiveKitTokenParams) (*ports.LiveKitToken, error) {
	if params.Room == "" {
		return nil, fmt.Errorf("room name is required")
	}

	if params.Identity == "" {
		return nil, fmt.Errorf("participant identity is required")
	}

	at := auth.NewAccessToken(s.config.APIKey, s.config.APISecret)
	canPublish := true
	canSubscribe := true
	grant := &auth.VideoGrant{
		RoomJoin:     true,
		Room:         params.Room,
		CanPublish:   &canPublish,
		CanSubscribe: &canSubscribe,
	}

	at.SetVideoGrant(grant).
		SetIdentity(params.Identity).
		SetValidFor(s.config.TokenValidityDuration)

	if params.Metadata != "" {
		at.SetMetadata(params.Metadata)
	}

	token, err := at.ToJWT()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	expiresAt := time.Now().Add(s.config.TokenValidityDuration).Unix()

	return &ports.LiveKitToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Ping checks that the LiveKit server accepts our credentials
func (s *Service) Ping(ctx context.Context) error {
	if _, err := s.roomClient.ListRooms(ctx, &lkproto.ListRoomsRequest{}); err != nil {
		return fmt.Errorf("failed to list rooms: %w", err)
	}
	return nil
}
