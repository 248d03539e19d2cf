package handlers

import (
	"net/http"

	"github.com/longregen/classroom/internal/adapters/http/dto"
	"github.com/longregen/classroom/internal/ports"
)

type AskHandler struct {
	askAssistant ports.AskAssistantUseCase
}

func NewAskHandler(askAssistant ports.AskAssistantUseCase) *AskHandler {
	return &AskHandler{askAssistant: askAssistant}
}

// Ask handles POST /ask-ai
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, ok := decodeBody[dto.AskRequest](w, r)
	if !ok {
		return
	}

	out, err := h.askAssistant.Execute(r.Context(), &ports.AskAssistantInput{Question: req.Question})
	if err != nil {
		respondDomainError(w, r, err, "AI response failed")
		return
	}

	respond(w, r, &dto.AskResponse{Answer: out.Answer}, http.StatusOK)
}
