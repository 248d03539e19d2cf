package middleware

import (
	"net/http"

	"github.com/longregen/classroom/internal/logging"
	"github.com/longregen/classroom/internal/ports"
)

const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID reuses a caller-supplied X-Request-ID or generates one, stores it on
// the request context and echoes it in the response.
func RequestID(gen ports.IDGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = gen.GenerateRequestID()
			}

			w.Header().Set(RequestIDHeader, requestID)
			next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), requestID)))
		})
	}
}
