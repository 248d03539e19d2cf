package usecases

import (
	"context"

	"github.com/longregen/classroom/internal/config"
	"github.com/longregen/classroom/internal/domain"
	"github.com/longregen/classroom/internal/logging"
	"github.com/longregen/classroom/internal/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// AskAssistant forwards a question to the chat-completion API behind a fixed
// system prompt and returns the first answer.
type AskAssistant struct {
	llmService   ports.LLMService
	systemPrompt string
	logger       *zap.Logger
}

// NewAskAssistant creates the use case. An empty systemPrompt selects the default one.
func NewAskAssistant(llmService ports.LLMService, systemPrompt string, logger *zap.Logger) *AskAssistant {
	if systemPrompt == "" {
		systemPrompt = config.DefaultSystemPrompt
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AskAssistant{
		llmService:   llmService,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

func (uc *AskAssistant) Execute(ctx context.Context, input *ports.AskAssistantInput) (*ports.AskAssistantOutput, error) {
	ctx, span := otel.Tracer("classroom/usecases").Start(ctx, "AskAssistant")
	defer span.End()

	if input == nil || input.Question == "" {
		return nil, domain.NewValidationError("Question is required")
	}

	span.SetAttributes(
		attribute.String("llm.model", uc.llmService.Model()),
		attribute.Int("question.length", len(input.Question)),
	)

	messages := []ports.LLMMessage{
		{Role: "system", Content: uc.systemPrompt},
		{Role: "user", Content: input.Question},
	}

	response, err := uc.llmService.Chat(ctx, messages)
	if err != nil {
		logging.WithContext(ctx, uc.logger).Error("LLM request failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "llm request failed")
		return nil, domain.NewUpstreamError("AI response failed", err)
	}

	// No choices or empty content leaves the answer empty; that is not an error.
	output := &ports.AskAssistantOutput{}
	if response != nil {
		output.Answer = response.Content
		span.SetAttributes(
			attribute.Int("llm.choices", response.Choices),
			attribute.String("llm.finish_reason", response.FinishReason),
		)
		logging.WithContext(ctx, uc.logger).Info("LLM response",
			zap.String("model", uc.llmService.Model()),
			zap.Int("choices", response.Choices),
			zap.String("finish_reason", response.FinishReason),
			zap.Bool("empty_answer", response.Content == ""),
		)
	}
	return output, nil
}
