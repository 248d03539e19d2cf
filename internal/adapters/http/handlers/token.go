package handlers

import (
	"net/http"

	"github.com/longregen/classroom/internal/adapters/http/dto"
	"github.com/longregen/classroom/internal/ports"
)

type TokenHandler struct {
	issueToken ports.IssueTokenUseCase
}

func NewTokenHandler(issueToken ports.IssueTokenUseCase) *TokenHandler {
	return &TokenHandler{issueToken: issueToken}
}

// Generate handles POST /token
func (h *TokenHandler) Generate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	// Missing LiveKit configuration wins over any body problem.
	if err := h.issueToken.CheckConfigured(); err != nil {
		respondDomainError(w, r, err, "Token generation failed")
		return
	}

	req, ok := decodeBody[dto.GenerateTokenRequest](w, r)
	if !ok {
		return
	}

	out, err := h.issueToken.Execute(r.Context(), &ports.IssueTokenInput{
		Name: req.Name,
		Room: req.Room,
		Role: req.Role,
	})
	if err != nil {
		respondDomainError(w, r, err, "Token generation failed")
		return
	}

	respond(w, r, &dto.GenerateTokenResponse{
		Token: out.Token,
		URL:   out.URL,
	}, http.StatusOK)
}
