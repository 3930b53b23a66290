package services

import (
	"factshub/internal/models"
)

// Identity is the request-scoped caller context every operation receives.
// It is built once per request from the session; the engine never reads
// ambient session state itself.
type Identity struct {
	UserID   uint
	Username string
	Role     models.Role
}

// Anonymous is the identity of a caller without a session.
func Anonymous() Identity {
	return Identity{Role: models.RoleGuest}
}

// IsAuthenticated reports whether the caller is a signed-in user.
func (id Identity) IsAuthenticated() bool {
	return id.UserID != 0
}
