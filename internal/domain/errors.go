package domain

import "errors"

// Error kinds surfaced by the token issuer and the AI relay
var (
	// ErrValidation means the caller omitted a required field
	ErrValidation = errors.New("validation error")
	// ErrConfiguration means the deployment is missing required secrets
	ErrConfiguration = errors.New("configuration error")
	// ErrUpstream means LiveKit signing or the completion API failed
	ErrUpstream = errors.New("upstream error")
)

// DomainError wraps an error kind with the message that may be shown to callers.
// Cause is kept for logs only.
type DomainError struct {
	Err     error
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	msg := e.Err.Error()
	if e.Message != "" {
		msg = e.Message + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *DomainError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func NewValidationError(message string) *DomainError {
	return &DomainError{Err: ErrValidation, Message: message}
}

func NewConfigurationError(message string) *DomainError {
	return &DomainError{Err: ErrConfiguration, Message: message}
}

func NewUpstreamError(message string, cause error) *DomainError {
	return &DomainError{Err: ErrUpstream, Message: message, Cause: cause}
}

// PublicMessage returns the caller-safe message for err, or fallback when err carries none
func PublicMessage(err error, fallback string) string {
	var de *DomainError
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}
