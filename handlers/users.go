package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the slice of the store the user console needs. *store.DB
// satisfies it.
type UserStore interface {
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ListUsersExcluding(ctx context.Context, email string) ([]models.User, error)
	UpdateUserRole(ctx context.Context, id primitive.ObjectID, role models.Role) error
}

type UsersHandler struct {
	DB        UserStore
	Guard     *auth.Guard
	RootEmail string
}

// List returns every user except the root record, root only.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.RootOnly()); err != nil {
		writeGuardError(w, err)
		return
	}
	users, err := h.DB.ListUsersExcluding(r.Context(), h.RootEmail)
	if err != nil {
		writeStoreError(w, "failed to list users", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "users": users})
}

type ChangeRoleRequest struct {
	Role models.Role `json:"role"`
}

// ChangeRole sets a user's stored role, root only. The root record itself is
// immutable here regardless of the caller, and "root" is never an assignable
// value. Setting the current role again is a no-op success.
func (h *UsersHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.RootOnly()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	target, err := h.DB.UserByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load user", err)
		return
	}
	if target == nil {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}
	if strings.EqualFold(target.Email, h.RootEmail) {
		writeMessage(w, http.StatusForbidden, "root account role cannot be changed")
		return
	}
	role := models.Role(strings.TrimSpace(strings.ToLower(string(req.Role))))
	if !models.RoleAssignable(role) {
		writeMessage(w, http.StatusBadRequest, "invalid role; use admin or user")
		return
	}
	if err := h.DB.UpdateUserRole(r.Context(), id, role); err != nil {
		writeStoreError(w, "failed to update role", err)
		return
	}
	target.Role = role
	writeJSON(w, http.StatusOK, envelope{"message": "role updated", "user": target})
}
