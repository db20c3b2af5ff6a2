package middlewares

import (
	"context"
	"net/http"

	"revolucare-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// RequestID accepts the caller's X-Request-ID when present and generates one
// otherwise, so every downstream log line can be correlated.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(constvars.HeaderRequestID, requestID)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
