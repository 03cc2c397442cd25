package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a user's privilege tier. RoleRoot is never stored on a user
// document; it is derived from the identity email when the role is resolved.
// The stored role field is only ever admin, user, or absent.
type Role string

const (
	RoleRoot  Role = "root"
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// AssignableRoles are the values the role-change endpoint accepts.
var AssignableRoles = []Role{RoleAdmin, RoleUser}

func RoleAssignable(role Role) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	AvatarURL string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Role      Role               `bson:"role,omitempty" json:"role,omitempty"` // admin or user; absent means user
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
