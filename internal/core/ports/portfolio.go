package ports

import (
	"context"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

// PortfolioInput carries the fields accepted when publishing a work item.
type PortfolioInput struct {
	Title       string
	Description *string
	Link        *string
	ImageURL    *string
}

// PortfolioPatch carries a partial update; nil means "leave unchanged".
type PortfolioPatch struct {
	Title       *string
	Description *string
	Link        *string
	ImageURL    *string
}

// PortfolioRepository defines persistence for portfolio items.
type PortfolioRepository interface {
	Create(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error)
	Update(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Portfolio, error)
	// FindDetailByID joins the owner's email and profile name.
	FindDetailByID(ctx context.Context, id int64) (*domain.PortfolioDetail, error)
	// ListByUserID returns the user's items, newest first.
	ListByUserID(ctx context.Context, userID int64) ([]domain.Portfolio, error)
}

// PortfolioService defines use-case operations for portfolio items.
type PortfolioService interface {
	// Create requires the caller to have an onboarding profile.
	Create(ctx context.Context, userID int64, in PortfolioInput) (*domain.Portfolio, error)
	Update(ctx context.Context, userID, portfolioID int64, patch PortfolioPatch) (*domain.Portfolio, error)
	Delete(ctx context.Context, userID, portfolioID int64) error
	ListMine(ctx context.Context, userID int64) ([]domain.Portfolio, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Portfolio, error)
	GetByID(ctx context.Context, id int64) (*domain.PortfolioDetail, error)
}
