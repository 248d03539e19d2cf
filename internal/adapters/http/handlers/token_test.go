package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/longregen/classroom/internal/adapters/http/dto"
	"github.com/longregen/classroom/internal/domain"
	"github.com/longregen/classroom/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestTokenHandler_Generate_Success(t *testing.T) {
	uc := &mockIssueToken{output: &ports.IssueTokenOutput{Token: "signed.jwt.value", URL: "wss://rooms.example.com"}}
	handler := NewTokenHandler(uc)

	rr := postJSON(t, handler.Generate, "/token", `{"name":"alice","room":"class1","role":"student"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp dto.GenerateTokenResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "signed.jwt.value", resp.Token)
	assert.Equal(t, "wss://rooms.example.com", resp.URL)

	require.NotNil(t, uc.lastInput)
	assert.Equal(t, "alice", uc.lastInput.Name)
	assert.Equal(t, "class1", uc.lastInput.Room)
	assert.Equal(t, "student", uc.lastInput.Role)
}

func TestTokenHandler_Generate_MissingFields(t *testing.T) {
	bodies := map[string]string{
		"missing name": `{"room":"class1","role":"student"}`,
		"missing room": `{"name":"alice","role":"student"}`,
		"missing role": `{"name":"alice","room":"class1"}`,
		"empty role":   `{"name":"alice","room":"class1","role":""}`,
		"empty body":   ``,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			handler := NewTokenHandler(&mockIssueToken{})
			rr := postJSON(t, handler.Generate, "/token", body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "Missing name, room, or role", resp.Error)
			assert.Equal(t, "validation_error", resp.Type)
		})
	}
}

func TestTokenHandler_Generate_NotConfigured(t *testing.T) {
	bodies := []string{
		`{"name":"alice","room":"class1","role":"student"}`,
		`{"name":"alice"}`,
		`not json`,
	}

	for _, body := range bodies {
		uc := &mockIssueToken{configErr: domain.NewConfigurationError("LiveKit ENV variables missing")}
		handler := NewTokenHandler(uc)

		rr := postJSON(t, handler.Generate, "/token", body)

		assert.Equal(t, http.StatusInternalServerError, rr.Code, "body %q", body)
		var resp dto.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "LiveKit ENV variables missing", resp.Error)
		assert.Equal(t, "configuration_error", resp.Type)
		assert.Zero(t, uc.calls, "use case must not run when LiveKit is not configured")
	}
}

func TestTokenHandler_Generate_InvalidBody(t *testing.T) {
	handler := NewTokenHandler(&mockIssueToken{})

	rr := postJSON(t, handler.Generate, "/token", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Invalid request body", resp.Error)
}

func TestTokenHandler_Generate_SigningFailureHidesCause(t *testing.T) {
	uc := &mockIssueToken{err: domain.NewUpstreamError("Token generation failed", errors.New("secret too short"))}
	handler := NewTokenHandler(uc)

	rr := postJSON(t, handler.Generate, "/token", `{"name":"alice","room":"class1","role":"student"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret too short")

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Token generation failed", resp.Error)
}

func TestTokenHandler_Generate_Msgpack(t *testing.T) {
	uc := &mockIssueToken{output: &ports.IssueTokenOutput{Token: "tok", URL: "wss://rooms.example.com"}}
	handler := NewTokenHandler(uc)

	body, err := msgpack.Marshal(&dto.GenerateTokenRequest{Name: "alice", Room: "class1", Role: "teacher"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/msgpack")
	req.Header.Set("Accept", "application/msgpack")
	rr := httptest.NewRecorder()

	handler.Generate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/msgpack", rr.Header().Get("Content-Type"))

	var resp dto.GenerateTokenResponse
	require.NoError(t, msgpack.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "teacher", uc.lastInput.Role)
}

func TestTokenHandler_Generate_EmptyMsgpackBody(t *testing.T) {
	handler := NewTokenHandler(&mockIssueToken{})

	req := httptest.NewRequest(http.MethodPost, "/token", nil)
	req.Header.Set("Content-Type", "application/msgpack")
	rr := httptest.NewRecorder()

	handler.Generate(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Missing name, room, or role", resp.Error)
}
