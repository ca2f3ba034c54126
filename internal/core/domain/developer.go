package domain

import (
	"errors"
	"time"
)

var ErrDeveloperNotFound = errors.New("developer not found")

// Developer is the directory view of an identity with the developer role:
// the identity itself plus its profile and published portfolio items.
type Developer struct {
	ID         int64       `json:"id"`
	Email      string      `json:"email"`
	Role       *string     `json:"role"`
	CreatedAt  time.Time   `json:"created_at"`
	Profile    *Profile    `json:"profile"`
	Portfolios []Portfolio `json:"portfolios"`
}
