package ports

import (
	"context"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

// DeveloperRepository reads the public directory of developer identities.
type DeveloperRepository interface {
	// List returns all identities with the developer role, newest first,
	// each aggregated with profile and portfolios.
	List(ctx context.Context) ([]domain.Developer, error)
	// FindByID returns domain.ErrDeveloperNotFound when the id is unknown or
	// the identity does not hold the developer role.
	FindByID(ctx context.Context, id int64) (*domain.Developer, error)
}

// DeveloperService defines the directory use cases.
type DeveloperService interface {
	// List returns the directory, optionally narrowed to developers whose
	// profile lists skill. An empty skill means no filter.
	List(ctx context.Context, skill string) ([]domain.Developer, error)
	GetByID(ctx context.Context, id int64) (*domain.Developer, error)
}
