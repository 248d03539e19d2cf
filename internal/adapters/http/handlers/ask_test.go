package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/longregen/classroom/internal/adapters/http/dto"
	"github.com/longregen/classroom/internal/domain"
	"github.com/longregen/classroom/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskHandler_Ask_Success(t *testing.T) {
	handler := NewAskHandler(&mockAskAssistant{output: &ports.AskAssistantOutput{Answer: "4"}})

	rr := postJSON(t, handler.Ask, "/ask-ai", `{"question":"What is 2+2?"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"answer":"4"}`, rr.Body.String())
}

func TestAskHandler_Ask_EmptyAnswerOmitted(t *testing.T) {
	handler := NewAskHandler(&mockAskAssistant{output: &ports.AskAssistantOutput{}})

	rr := postJSON(t, handler.Ask, "/ask-ai", `{"question":"Anything?"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}

func TestAskHandler_Ask_MissingQuestion(t *testing.T) {
	for _, body := range []string{`{}`, `{"question":""}`, ``} {
		uc := &mockAskAssistant{}
		handler := NewAskHandler(uc)

		rr := postJSON(t, handler.Ask, "/ask-ai", body)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
		var resp dto.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Question is required", resp.Error)
	}
}

func TestAskHandler_Ask_UpstreamFailureHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:443: connection refused")
	handler := NewAskHandler(&mockAskAssistant{err: domain.NewUpstreamError("AI response failed", cause)})

	rr := postJSON(t, handler.Ask, "/ask-ai", `{"question":"What is 2+2?"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "AI response failed", resp.Error)
	assert.Equal(t, "upstream_error", resp.Type)
}

func TestAskHandler_Ask_UnknownErrorIsGeneric(t *testing.T) {
	handler := NewAskHandler(&mockAskAssistant{err: errors.New("boom")})

	rr := postJSON(t, handler.Ask, "/ask-ai", `{"question":"Why?"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "AI response failed", resp.Error)
	assert.Equal(t, "internal_error", resp.Type)
}
