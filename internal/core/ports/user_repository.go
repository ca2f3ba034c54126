package ports

import (
	"context"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence for identities.
type UserRepository interface {
	// Create inserts a new identity. Duplicate emails yield domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// SetRole assigns a role to an identity whose role is still unset.
	// Returns domain.ErrRoleAlreadySet when the guarded update matches no row
	// because a role is already present.
	SetRole(ctx context.Context, id int64, role string) (*domain.User, error)
}
