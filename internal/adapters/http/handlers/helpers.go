package handlers

import (
	"errors"
	"net/http"

	"github.com/longregen/classroom/internal/adapters/http/dto"
	"github.com/longregen/classroom/internal/adapters/http/encoding"
	"github.com/longregen/classroom/internal/domain"
)

const maxBodyBytes = 1024 * 1024

// respond writes data in the negotiated content type
func respond(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	encoding.Write(w, r, status, data)
}

// respondError writes an error body in the negotiated content type
func respondError(w http.ResponseWriter, r *http.Request, errorType string, message string, status int) {
	encoding.Write(w, r, status, dto.NewErrorResponse(errorType, message))
}

// respondDomainError maps an error kind to its status code. Only the public
// message is written; causes stay in the logs.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(w, r, "validation_error", domain.PublicMessage(err, "Invalid request"), http.StatusBadRequest)
	case errors.Is(err, domain.ErrConfiguration):
		respondError(w, r, "configuration_error", domain.PublicMessage(err, fallback), http.StatusInternalServerError)
	case errors.Is(err, domain.ErrUpstream):
		respondError(w, r, "upstream_error", domain.PublicMessage(err, fallback), http.StatusInternalServerError)
	default:
		respondError(w, r, "internal_error", fallback, http.StatusInternalServerError)
	}
}

// decodeBody decodes a JSON or MessagePack request body with a size limit
func decodeBody[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req T
	if err := encoding.Read(r, &req); err != nil {
		respondError(w, r, "invalid_request", "Invalid request body", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}
