package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/middleware"
	"github.com/noorix/hub/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type staticDirectory struct {
	users map[primitive.ObjectID]*models.User
}

func (d *staticDirectory) UserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return d.users[id], nil
}

// The guard runs before anything touches the store, so mutation attempts by
// a plain user must be rejected without a single store call. A nil DB makes
// any store access a panic, which Recoverer would turn into a 500.
func newGuardedBlogRouter(t *testing.T, dir *staticDirectory) http.Handler {
	t.Helper()
	guard := &auth.Guard{Directory: dir, RootEmail: testRootEmail}
	h := &BlogsHandler{DB: nil, Guard: guard}
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(testSecret))
		r.Post("/api/blogs", h.Create)
		r.Put("/api/blogs/{id}", h.Update)
		r.Delete("/api/blogs/{id}", h.Delete)
	})
	return r
}

func TestBlogMutationDeniedForPlainUser(t *testing.T) {
	bobID := primitive.NewObjectID()
	dir := &staticDirectory{users: map[primitive.ObjectID]*models.User{
		bobID: {ID: bobID, Email: "bob@example.com"},
	}}
	router := newGuardedBlogRouter(t, dir)
	token, err := auth.NewToken(testSecret, dir.users[bobID])
	require.NoError(t, err)

	targetID := primitive.NewObjectID().Hex()
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"create", http.MethodPost, "/api/blogs", `{"title":"t","content":"c"}`},
		{"update", http.MethodPut, "/api/blogs/" + targetID, `{"title":"t","content":"c"}`},
		{"delete", http.MethodDelete, "/api/blogs/" + targetID, ""},
		// Authorization precedes validation: even a malformed id comes
		// back 403, never 400, for a caller who may not mutate at all.
		{"update malformed id", http.MethodPut, "/api/blogs/not-an-id", `{"title":"t","content":"c"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestBlogMutationDeniedWithoutSession(t *testing.T) {
	router := newGuardedBlogRouter(t, &staticDirectory{})
	req := httptest.NewRequest(http.MethodPost, "/api/blogs", strings.NewReader(`{"title":"t","content":"c"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
