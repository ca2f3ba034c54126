package domain

import (
	"errors"
	"time"
)

const (
	RoleDeveloper = "developer"
	RoleClient    = "client"
)

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")
var ErrRoleAlreadySet = errors.New("role already set")
var ErrForbidden = errors.New("access forbidden")

// User models a registered identity. Role starts as nil and is set exactly
// once via the set-role flow; both target roles are terminal.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         *string   `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasRole reports whether the identity has completed role selection.
func (u *User) HasRole() bool {
	return u.Role != nil && *u.Role != ""
}

// ValidRole reports whether r is one of the two assignable roles.
func ValidRole(r string) bool {
	return r == RoleDeveloper || r == RoleClient
}
