package usecases

import (
	"context"

	"github.com/longregen/classroom/internal/ports"
	"github.com/stretchr/testify/mock"
)

type mockLiveKitService struct {
	mock.Mock
}

func (m *mockLiveKitService) GenerateToken(ctx context.Context, params ports.LiveKitTokenParams) (*ports.LiveKitToken, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.LiveKitToken), args.Error(1)
}

func (m *mockLiveKitService) URL() string {
	return m.Called().String(0)
}

type mockLLMService struct {
	mock.Mock
}

func (m *mockLLMService) Chat(ctx context.Context, messages []ports.LLMMessage) (*ports.LLMResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.LLMResponse), args.Error(1)
}

func (m *mockLLMService) Model() string {
	return "test-model"
}
