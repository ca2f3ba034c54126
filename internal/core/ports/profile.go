package ports

import (
	"context"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

// ProfileInput carries the fields accepted when creating a profile.
type ProfileInput struct {
	Name     string
	Bio      *string
	Location *string
	Whatsapp *string
	PhotoURL *string
	Skills   []string
}

// ProfilePatch carries a partial update; nil means "leave unchanged".
type ProfilePatch struct {
	Name     *string
	Bio      *string
	Location *string
	Whatsapp *string
	PhotoURL *string
	Skills   []string
}

// ProfileRepository defines persistence for onboarding profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	// FindDetailByUserID joins the owner's email and role for the public view.
	FindDetailByUserID(ctx context.Context, userID int64) (*domain.ProfileDetail, error)
}

// ProfileService defines use-case operations for profiles.
type ProfileService interface {
	Create(ctx context.Context, userID int64, in ProfileInput) (*domain.Profile, error)
	Update(ctx context.Context, userID int64, patch ProfilePatch) (*domain.Profile, error)
	GetMine(ctx context.Context, userID int64) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.ProfileDetail, error)
}
