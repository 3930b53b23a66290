package models

import (
	"time"
)

// Role is a closed set. Stored as a string column but never compared as raw
// strings outside this file.
type Role string

const (
	RoleGuest     Role = "guest"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

var roleLevels = map[Role]int{
	RoleGuest:     0,
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// Level returns the position of the role in the capability ordering.
// Unknown values rank as guest.
func (r Role) Level() int {
	return roleLevels[r]
}

// Valid reports whether r is one of the stored roles (guest is session-only).
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModerator || r == RoleAdmin
}

// CanModerate reports whether the role may approve/reject facts and view the
// moderation queue.
func (r Role) CanModerate() bool {
	return r.Level() >= RoleModerator.Level()
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	Role      Role      `gorm:"size:20;default:'user';not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	// Users are never deleted, so no DeletedAt.
}
