package auth

import (
	"strings"

	"github.com/noorix/hub/backend/models"
)

// ResolveRole computes the effective role for an authenticated identity.
// Root is derived from the identity email alone, never from the stored
// record, so a corrupted or manually edited role field on the root record
// cannot demote it and a stored "root" on any other record is ignored.
// A missing record (first request racing session creation) resolves to a
// plain user.
func ResolveRole(rootEmail, identityEmail string, record *models.User) models.Role {
	if rootEmail != "" && strings.EqualFold(identityEmail, rootEmail) {
		return models.RoleRoot
	}
	if record != nil && record.Role == models.RoleAdmin {
		return models.RoleAdmin
	}
	return models.RoleUser
}
