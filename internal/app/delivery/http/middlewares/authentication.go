package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/exceptions"
	"revolucare-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
)

type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate resolves the bearer token into the acting identity. Every
// route behind it can rely on an actor being present in the context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		rawToken := strings.TrimPrefix(header, "Bearer ")

		claims := new(actorClaims)
		token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(m.InternalConfig.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		actor := &models.Actor{
			ID:   claims.Subject,
			Role: models.Role(claims.Role),
		}
		if actor.ID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("token has no subject")))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACTOR_KEY, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
