package livekit

import (
	"context"
	"testing"
	"time"

	"github.com/livekit/protocol/auth"
	"github.com/longregen/classroom/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey    = "APItestkey"
	testAPISecret = "a-test-secret-that-is-long-enough-for-hs256"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(&ServiceConfig{
		URL:                   "wss://rooms.example.com",
		APIKey:                testAPIKey,
		APISecret:             testAPISecret,
		TokenValidityDuration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestNewService_RequiresCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  *ServiceConfig
	}{
		{"missing URL", &ServiceConfig{APIKey: "k", APISecret: "s"}},
		{"missing key", &ServiceConfig{URL: "wss://x", APISecret: "s"}},
		{"missing secret", &ServiceConfig{URL: "wss://x", APIKey: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewService_DefaultValidity(t *testing.T) {
	svc, err := NewService(&ServiceConfig{URL: "wss://x", APIKey: "k", APISecret: "s"})
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour, svc.config.TokenValidityDuration)
	assert.Equal(t, "wss://x", svc.URL())
}

func TestGenerateToken_Grants(t *testing.T) {
	svc := newTestService(t)

	before := time.Now()
	tok, err := svc.GenerateToken(context.Background(), ports.LiveKitTokenParams{
		Identity: "alice",
		Room:     "class1",
		Metadata: `{"role":"student"}`,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	assert.GreaterOrEqual(t, tok.ExpiresAt, before.Add(time.Hour).Unix())

	parsed, err := auth.ParseAPIToken(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, parsed.APIKey())

	grants, err := parsed.Verify(testAPISecret)
	require.NoError(t, err)

	assert.Equal(t, "alice", grants.Identity)
	assert.Equal(t, `{"role":"student"}`, grants.Metadata)
	require.NotNil(t, grants.Video)
	assert.True(t, grants.Video.RoomJoin)
	assert.Equal(t, "class1", grants.Video.Room)
	require.NotNil(t, grants.Video.CanPublish)
	assert.True(t, *grants.Video.CanPublish)
	require.NotNil(t, grants.Video.CanSubscribe)
	assert.True(t, *grants.Video.CanSubscribe)
}

func TestGenerateToken_WrongSecretFailsVerification(t *testing.T) {
	svc := newTestService(t)

	tok, err := svc.GenerateToken(context.Background(), ports.LiveKitTokenParams{Identity: "bob", Room: "r"})
	require.NoError(t, err)

	parsed, err := auth.ParseAPIToken(tok.Token)
	require.NoError(t, err)
	_, err = parsed.Verify("some-other-secret-that-is-long-enough")
	assert.Error(t, err)
}

func TestGenerateToken_RequiresIdentityAndRoom(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GenerateToken(context.Background(), ports.LiveKitTokenParams{Room: "r"})
	assert.Error(t, err)

	_, err = svc.GenerateToken(context.Background(), ports.LiveKitTokenParams{Identity: "a"})
	assert.Error(t, err)
}
