package ports

import (
	"context"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

// AuthService implements registration, login and role assignment.
type AuthService interface {
	// Register creates an identity and returns it with a fresh token.
	// Role is optional; when present it must be a valid role value.
	Register(ctx context.Context, email, password string, role *string) (*domain.User, string, error)
	// Login verifies credentials and returns the identity with a fresh token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Me loads the caller's identity by id.
	Me(ctx context.Context, userID int64) (*domain.User, error)
	// SetRole transitions an unset role to the requested one, exactly once,
	// and re-issues a token carrying the new role claim.
	SetRole(ctx context.Context, userID int64, role string) (*domain.User, string, error)
}
