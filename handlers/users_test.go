package handlers

import (
	"context"
	"encoding/json"
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

const (
	testSecret    = "test-secret"
	testRootEmail = "root@noorix.dev"
)

// fakeUserStore backs both the handler and the guard's directory lookups.
type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func (s *fakeUserStore) UserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users[id], nil
}

func (s *fakeUserStore) ListUsersExcluding(_ context.Context, email string) ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		if !strings.EqualFold(u.Email, email) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *fakeUserStore) UpdateUserRole(_ context.Context, id primitive.ObjectID, role models.Role) error {
	if u, ok := s.users[id]; ok {
		u.Role = role
	}
	return nil
}

type usersFixture struct {
	router  http.Handler
	store   *fakeUserStore
	rootID  primitive.ObjectID
	adminID primitive.ObjectID
	userID  primitive.ObjectID
}

func newUsersFixture(t *testing.T) *usersFixture {
	t.Helper()
	f := &usersFixture{
		rootID:  primitive.NewObjectID(),
		adminID: primitive.NewObjectID(),
		userID:  primitive.NewObjectID(),
	}
	f.store = &fakeUserStore{users: map[primitive.ObjectID]*models.User{
		f.rootID:  {ID: f.rootID, Email: testRootEmail, Name: "Root"},
		f.adminID: {ID: f.adminID, Email: "admin@example.com", Name: "Admin", Role: models.RoleAdmin},
		f.userID:  {ID: f.userID, Email: "bob@example.com", Name: "Bob"},
	}}
	guard := &auth.Guard{Directory: f.store, RootEmail: testRootEmail}
	h := &UsersHandler{DB: f.store, Guard: guard, RootEmail: testRootEmail}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(testSecret))
		r.Get("/api/users", h.List)
		r.Put("/api/users/{id}/role", h.ChangeRole)
	})
	f.router = r
	return f
}

func (f *usersFixture) token(t *testing.T, id primitive.ObjectID) string {
	t.Helper()
	token, err := auth.NewToken(testSecret, f.store.users[id])
	require.NoError(t, err)
	return token
}

func (f *usersFixture) changeRole(t *testing.T, actorToken string, target primitive.ObjectID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/users/"+target.Hex()+"/role", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+actorToken)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestChangeRolePromotesUser(t *testing.T) {
	f := newUsersFixture(t)
	rec := f.changeRole(t, f.token(t, f.rootID), f.userID, `{"role":"admin"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleAdmin, f.store.users[f.userID].Role)
}

func TestChangeRoleDemotesAdmin(t *testing.T) {
	f := newUsersFixture(t)
	rec := f.changeRole(t, f.token(t, f.rootID), f.adminID, `{"role":"user"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleUser, f.store.users[f.adminID].Role)
}

func TestChangeRoleIdempotent(t *testing.T) {
	f := newUsersFixture(t)
	rec := f.changeRole(t, f.token(t, f.rootID), f.adminID, `{"role":"admin"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleAdmin, f.store.users[f.adminID].Role)
}

// The root record is immutable here no matter who asks.
func TestChangeRoleRootImmutable(t *testing.T) {
	f := newUsersFixture(t)
	rec := f.changeRole(t, f.token(t, f.rootID), f.rootID, `{"role":"admin"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, f.store.users[f.rootID].Role)
}

func TestChangeRoleRootNotAssignable(t *testing.T) {
	f := newUsersFixture(t)
	rec := f.changeRole(t, f.token(t, f.rootID), f.userID, `{"role":"root"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.store.users[f.userID].Role)
}

func TestChangeRoleRequiresRoot(t *testing.T) {
	f := newUsersFixture(t)
	for _, actor := range []primitive.ObjectID{f.adminID, f.userID} {
		rec := f.changeRole(t, f.token(t, actor), f.userID, `{"role":"admin"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	}
	assert.Empty(t, f.store.users[f.userID].Role)
}

func TestChangeRoleTargetNotFound(t *testing.T) {
	f := newUsersFixture(t)
	rec := f.changeRole(t, f.token(t, f.rootID), primitive.NewObjectID(), `{"role":"admin"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChangeRoleMalformedID(t *testing.T) {
	f := newUsersFixture(t)
	req := httptest.NewRequest(http.MethodPut, "/api/users/not-an-id/role", strings.NewReader(`{"role":"admin"}`))
	req.Header.Set("Authorization", "Bearer "+f.token(t, f.rootID))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Once promoted, the same unchanged session clears content-manager checks on
// its very next request.
func TestRoleChangeTakesEffectWithoutRelogin(t *testing.T) {
	f := newUsersFixture(t)
	guard := &auth.Guard{Directory: f.store, RootEmail: testRootEmail}
	bobSess := &auth.Session{UserID: f.userID, Email: "bob@example.com"}

	require.ErrorIs(t, guard.Authorize(context.Background(), bobSess, auth.ContentManager()), auth.ErrForbidden)

	rec := f.changeRole(t, f.token(t, f.rootID), f.userID, `{"role":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NoError(t, guard.Authorize(context.Background(), bobSess, auth.ContentManager()))
}

func TestListUsersExcludesRoot(t *testing.T) {
	f := newUsersFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+f.token(t, f.rootID))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Users []models.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Users, 2)
	for _, u := range body.Users {
		assert.NotEqual(t, testRootEmail, u.Email)
	}
}

func TestListUsersRequiresRoot(t *testing.T) {
	f := newUsersFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+f.token(t, f.adminID))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
