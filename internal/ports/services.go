package ports

import "context"

// LLMMessage represents a message in the chat-completion prompt
type LLMMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LLMResponse carries the first completion choice. Content is empty when the
// upstream returned no choices or a choice without content.
type LLMResponse struct {
	Content      string `json:"content,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
	Choices      int    `json:"choices"`
}

// LLMService defines the interface for chat-completion calls
type LLMService interface {
	Chat(ctx context.Context, messages []LLMMessage) (*LLMResponse, error)
	Model() string
}

// LiveKitTokenParams describes the access token to mint
type LiveKitTokenParams struct {
	Identity string
	Room     string
	Metadata string
}

// LiveKitToken represents a signed LiveKit access token
type LiveKitToken struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// LiveKitService mints access tokens for a LiveKit deployment
type LiveKitService interface {
	GenerateToken(ctx context.Context, params LiveKitTokenParams) (*LiveKitToken, error)
	URL() string
}

// HealthChecker probes an external collaborator
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// IssueTokenUseCase mints a room token for a participant
type IssueTokenUseCase interface {
	Execute(ctx context.Context, input *IssueTokenInput) (*IssueTokenOutput, error)
	// CheckConfigured reports a configuration error before any input is looked at
	CheckConfigured() error
}

// IssueTokenInput contains the participant and room to grant
type IssueTokenInput struct {
	Name string
	Room string
	Role string
}

// IssueTokenOutput contains the signed token and the LiveKit URL to connect to
type IssueTokenOutput struct {
	Token     string
	URL       string
	ExpiresAt int64
}

// AskAssistantUseCase relays a question to the chat-completion API
type AskAssistantUseCase interface {
	Execute(ctx context.Context, input *AskAssistantInput) (*AskAssistantOutput, error)
}

// AskAssistantInput contains the user's question
type AskAssistantInput struct {
	Question string
}

// AskAssistantOutput contains the model's answer; Answer is empty when the model returned nothing
type AskAssistantOutput struct {
	Answer string
}

// IDGenerator generates prefixed identifiers
type IDGenerator interface {
	GenerateRequestID() string
}
