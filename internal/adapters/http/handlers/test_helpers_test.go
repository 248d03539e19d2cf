package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/longregen/classroom/internal/domain"
	"github.com/longregen/classroom/internal/ports"
)

type mockIssueToken struct {
	configErr error
	output    *ports.IssueTokenOutput
	err       error
	calls     int
	lastInput *ports.IssueTokenInput
}

func (m *mockIssueToken) CheckConfigured() error {
	return m.configErr
}

func (m *mockIssueToken) Execute(ctx context.Context, input *ports.IssueTokenInput) (*ports.IssueTokenOutput, error) {
	m.calls++
	m.lastInput = input
	if m.configErr != nil {
		return nil, m.configErr
	}
	if input.Name == "" || input.Room == "" || input.Role == "" {
		return nil, domain.NewValidationError("Missing name, room, or role")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

type mockAskAssistant struct {
	output *ports.AskAssistantOutput
	err    error
	calls  int
}

func (m *mockAskAssistant) Execute(ctx context.Context, input *ports.AskAssistantInput) (*ports.AskAssistantOutput, error) {
	m.calls++
	if input.Question == "" {
		return nil, domain.NewValidationError("Question is required")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}
