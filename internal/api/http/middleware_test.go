package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-test-secret-test-secret-1234"

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager(testSecret, 60, 0)

	var gotActor domain.Actor
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotActor, _ = ActorFromContext(r.Context())
		called = true
	})
	handler := AuthMiddleware(tokens)(next)

	t.Run("Valid Access Token", func(t *testing.T) {
		called = false
		token, err := tokens.GenerateAccessToken(42, "client@test.com", domain.RoleClient)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, int32(42), gotActor.UserID)
		assert.Equal(t, domain.RoleClient, gotActor.Role)
	})

	t.Run("Missing Header", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Refresh Token Rejected", func(t *testing.T) {
		called = false
		token, err := tokens.GenerateRefreshToken(42, "client@test.com")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	tokens := security.NewTokenManager(testSecret, 60, 0)

	var called bool
	handler := AuthMiddleware(tokens)(RequireRole(domain.RoleAgent, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	t.Run("Agent Allowed", func(t *testing.T) {
		called = false
		token, _ := tokens.GenerateAccessToken(10, "agent@test.com", domain.RoleAgent)

		req := httptest.NewRequest(http.MethodPost, "/api/vehicles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.True(t, called)
	})

	t.Run("Client Forbidden", func(t *testing.T) {
		called = false
		token, _ := tokens.GenerateAccessToken(1, "client@test.com", domain.RoleClient)

		req := httptest.NewRequest(http.MethodPost, "/api/vehicles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
