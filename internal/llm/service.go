package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/longregen/classroom/internal/adapters/metrics"
	"github.com/longregen/classroom/internal/ports"
)

// Service implements ports.LLMService using the OpenAI-compatible client
type Service struct {
	client *Client
}

// NewService creates a new LLM service
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// Model returns the configured model name
func (s *Service) Model() string {
	return s.client.Model()
}

// Chat sends a non-streaming chat request and returns the first choice
func (s *Service) Chat(ctx context.Context, messages []ports.LLMMessage) (*ports.LLMResponse, error) {
	start := time.Now()
	model := s.client.Model()

	response, err := s.client.Chat(ctx, s.convertMessages(messages))
	metrics.LLMRequestDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(model, "error").Inc()
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	metrics.LLMRequestsTotal.WithLabelValues(model, "success").Inc()

	result := &ports.LLMResponse{Choices: len(response.Choices)}
	if len(response.Choices) > 0 {
		result.Content = response.Choices[0].Message.Content
		result.FinishReason = response.Choices[0].FinishReason
	}
	return result, nil
}

// Ping lists models to check reachability and credentials
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.client.ListModels(ctx)
	return err
}

func (s *Service) convertMessages(messages []ports.LLMMessage) []ChatMessage {
	result := make([]ChatMessage, len(messages))
	for i, msg := range messages {
		result[i] = ChatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return result
}
