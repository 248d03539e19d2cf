package middleware

import (
	"net/http"

	"github.com/longregen/classroom/internal/adapters/http/dto"
	"github.com/longregen/classroom/internal/adapters/http/encoding"
	"github.com/longregen/classroom/internal/logging"
	"go.uber.org/zap"
)

// Recovery turns a handler panic into a generic 500 response
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logging.WithContext(r.Context(), logger).Error("panic in handler",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"),
				)
				encoding.Write(w, r, http.StatusInternalServerError,
					dto.NewErrorResponse("internal_error", "Internal server error"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
