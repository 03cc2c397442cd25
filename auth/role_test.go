package auth

import (
	"testing"

	"github.com/noorix/hub/backend/models"
	"github.com/stretchr/testify/assert"
)

const rootEmail = "root@noorix.dev"

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name          string
		identityEmail string
		record        *models.User
		want          models.Role
	}{
		{
			name:          "root by email with no stored role",
			identityEmail: rootEmail,
			record:        &models.User{Email: rootEmail},
			want:          models.RoleRoot,
		},
		{
			name:          "root wins even if stored role was corrupted to admin",
			identityEmail: rootEmail,
			record:        &models.User{Email: rootEmail, Role: models.RoleAdmin},
			want:          models.RoleRoot,
		},
		{
			name:          "root wins even with no record at all",
			identityEmail: rootEmail,
			record:        nil,
			want:          models.RoleRoot,
		},
		{
			name:          "root email match is case-insensitive",
			identityEmail: "Root@Noorix.Dev",
			record:        &models.User{Email: rootEmail},
			want:          models.RoleRoot,
		},
		{
			name:          "stored admin resolves to admin",
			identityEmail: "alice@example.com",
			record:        &models.User{Email: "alice@example.com", Role: models.RoleAdmin},
			want:          models.RoleAdmin,
		},
		{
			name:          "stored user resolves to user",
			identityEmail: "bob@example.com",
			record:        &models.User{Email: "bob@example.com", Role: models.RoleUser},
			want:          models.RoleUser,
		},
		{
			name:          "absent role field resolves to user",
			identityEmail: "bob@example.com",
			record:        &models.User{Email: "bob@example.com"},
			want:          models.RoleUser,
		},
		{
			name:          "missing record resolves to user",
			identityEmail: "carol@example.com",
			record:        nil,
			want:          models.RoleUser,
		},
		{
			name:          "stored root on a non-root record is ignored",
			identityEmail: "mallory@example.com",
			record:        &models.User{Email: "mallory@example.com", Role: models.RoleRoot},
			want:          models.RoleUser,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRole(rootEmail, tt.identityEmail, tt.record)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRoleEmptyRootEmail(t *testing.T) {
	// An unset root email must never make empty identities root.
	got := ResolveRole("", "", nil)
	assert.Equal(t, models.RoleUser, got)
}
