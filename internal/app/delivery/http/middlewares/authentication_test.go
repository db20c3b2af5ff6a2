package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"revolucare-service/internal/app/config"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-signing-secret"

func newTestMiddlewares() *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = testSecret
	return NewMiddlewares(zap.NewNop(), internalConfig)
}

func signToken(t *testing.T, subject, role, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := actorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthenticateResolvesActor(t *testing.T) {
	middlewares := newTestMiddlewares()

	var actor *models.Actor
	handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = utils.GetActor(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/care-plans/plan-1", nil)
	request.Header.Set("Authorization", "Bearer "+signToken(t, "client-1", string(models.RoleClient), testSecret, time.Now().Add(time.Hour)))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, actor)
	assert.Equal(t, "client-1", actor.ID)
	assert.Equal(t, models.RoleClient, actor.Role)
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	middlewares := newTestMiddlewares()

	handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{name: "wrong signing key", header: "Bearer " + signToken(t, "client-1", string(models.RoleClient), "other-secret", time.Now().Add(time.Hour))},
		{name: "expired token", header: "Bearer " + signToken(t, "client-1", string(models.RoleClient), testSecret, time.Now().Add(-time.Hour))},
		{name: "no subject", header: "Bearer " + signToken(t, "", string(models.RoleClient), testSecret, time.Now().Add(time.Hour))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/care-plans/plan-1", nil)
			if tc.header != "" {
				request.Header.Set("Authorization", tc.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}
