package auth

import (
	"context"
	"errors"

	"github.com/noorix/hub/backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")
)

// UserDirectory looks up user records for role resolution. A nil record with
// a nil error means the user does not exist.
type UserDirectory interface {
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type capabilityKind int

const (
	capAnyAuthenticated capabilityKind = iota
	capContentManager
	capRootOnly
	capOwnerOrContentManager
)

// Capability is a requirement checked by the guard.
type Capability struct {
	kind    capabilityKind
	ownerID primitive.ObjectID
}

// AnyAuthenticated passes for any valid session.
func AnyAuthenticated() Capability { return Capability{kind: capAnyAuthenticated} }

// ContentManager passes for admin and root.
func ContentManager() Capability { return Capability{kind: capContentManager} }

// RootOnly passes for root alone.
func RootOnly() Capability { return Capability{kind: capRootOnly} }

// OwnerOrContentManager passes when the session subject owns the resource,
// or the caller is admin or root.
func OwnerOrContentManager(ownerID primitive.ObjectID) Capability {
	return Capability{kind: capOwnerOrContentManager, ownerID: ownerID}
}

// Guard makes per-request authorization decisions. It has no state beyond
// its directory handle and makes no writes.
type Guard struct {
	Directory UserDirectory
	RootEmail string
}

// EffectiveRole resolves the session's role against the directory. The
// lookup happens on every call so a role change takes effect on the user's
// next request without re-login. A failed lookup resolves to plain user:
// the guard never escalates on error.
func (g *Guard) EffectiveRole(ctx context.Context, sess *Session) models.Role {
	if sess == nil {
		return models.RoleUser
	}
	record, err := g.Directory.UserByID(ctx, sess.UserID)
	if err != nil {
		return models.RoleUser
	}
	return ResolveRole(g.RootEmail, sess.Email, record)
}

// Authorize checks the session against the required capability. It must be
// the first action of every privileged operation, before any existence
// check on the target resource.
func (g *Guard) Authorize(ctx context.Context, sess *Session, cap Capability) error {
	if sess == nil {
		return ErrUnauthenticated
	}
	role := g.EffectiveRole(ctx, sess)
	switch cap.kind {
	case capAnyAuthenticated:
		return nil
	case capContentManager:
		if role == models.RoleAdmin || role == models.RoleRoot {
			return nil
		}
	case capRootOnly:
		if role == models.RoleRoot {
			return nil
		}
	case capOwnerOrContentManager:
		if sess.UserID == cap.ownerID || role == models.RoleAdmin || role == models.RoleRoot {
			return nil
		}
	}
	return ErrForbidden
}
