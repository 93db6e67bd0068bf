package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account tiers.
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// manages maps each role to the tier it creates and administers.
// Users manage nothing.
var manages = map[Role]Role{
	RoleSuperadmin: RoleAdmin,
	RoleAdmin:      RoleUser,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleSuperadmin || r == RoleAdmin || r == RoleUser
}

// CanManage reports whether r is the tier that administers target.
func (r Role) CanManage(target Role) bool {
	return manages[r] == target
}

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrForbidden          = errors.New("access forbidden")
)

// Account models every actor in the system: the superadmin, the admins it
// creates, and the users each admin manages. CreatedBy is a back-reference
// used only to scope queries; it is never traversed for cascading deletes.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedBy    string    `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
