package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/exceptions"
	"revolucare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Recoverer turns a handler panic into a logged 500 response instead of a
// dropped connection.
func (m *Middlewares) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				m.Log.Error("panic recovered while handling request",
					zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Any("panic", recovered),
					zap.ByteString("stack", debug.Stack()),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
					constvars.StatusInternalServerError,
					exceptions.ConditionInternal,
					constvars.ErrClientSomethingWrongWithApplication,
					fmt.Sprintf("panic: %v", recovered),
				))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
