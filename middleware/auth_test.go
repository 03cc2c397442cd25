package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func sessionEcho(t *testing.T, captured **auth.Session) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		*captured = sess
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSessionValidToken(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "alice@example.com"}
	token, err := auth.NewToken(testSecret, user)
	require.NoError(t, err)

	var captured *auth.Session
	handler := RequireSession(testSecret)(sessionEcho(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, user.ID, captured.UserID)
	assert.Equal(t, user.Email, captured.Email)
}

func TestRequireSessionRejects(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "alice@example.com"}
	token, err := auth.NewToken(testSecret, user)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + mustToken(t, "other-secret", user)},
		{"valid token wrong scheme case", "bearer " + token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireSession(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not be reached")
			}))
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func mustToken(t *testing.T, secret string, user *models.User) string {
	t.Helper()
	token, err := auth.NewToken(secret, user)
	require.NoError(t, err)
	return token
}
