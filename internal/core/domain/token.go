package domain

import (
	"errors"
	"time"
)

var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token invalid")

// TokenClaims is the decoded payload of a verified bearer token. The role is
// a snapshot taken at issuance; it is not re-checked against the stored role
// until the token expires.
type TokenClaims struct {
	UserID    int64
	Email     string
	Role      *string
	ExpiresAt time.Time
}

// RoleString returns the role claim or "" when no role was assigned at
// issuance time.
func (c *TokenClaims) RoleString() string {
	if c.Role == nil {
		return ""
	}
	return *c.Role
}
