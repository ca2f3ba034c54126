package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

// PortfolioService implements the developer work-item use cases. Mutations
// are owner-scoped and publishing requires a completed onboarding profile.
type PortfolioService struct {
	repo     ports.PortfolioRepository
	profiles ports.ProfileRepository
	cache    DirectoryInvalidator
	logger   zerolog.Logger
}

func NewPortfolioService(repo ports.PortfolioRepository, profiles ports.ProfileRepository, cache DirectoryInvalidator, logger zerolog.Logger) *PortfolioService {
	return &PortfolioService{repo: repo, profiles: profiles, cache: cache, logger: logger}
}

func (s *PortfolioService) Create(ctx context.Context, userID int64, in ports.PortfolioInput) (*domain.Portfolio, error) {
	if err := requireProfile(ctx, s.profiles, userID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Portfolio{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDirectory(ctx)
	s.logger.Info().Int64("user_id", userID).Int64("portfolio_id", created.ID).Msg("portfolio created")
	return created, nil
}

func (s *PortfolioService) Update(ctx context.Context, userID, portfolioID int64, patch ports.PortfolioPatch) (*domain.Portfolio, error) {
	existing, err := s.ownedPortfolio(ctx, userID, portfolioID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil && *patch.Title != "" {
		existing.Title = *patch.Title
	}
	if patch.Description != nil {
		existing.Description = patch.Description
	}
	if patch.Link != nil {
		if *patch.Link == "" {
			existing.Link = nil
		} else {
			existing.Link = patch.Link
		}
	}
	if patch.ImageURL != nil {
		existing.ImageURL = patch.ImageURL
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateDirectory(ctx)
	return updated, nil
}

func (s *PortfolioService) Delete(ctx context.Context, userID, portfolioID int64) error {
	if _, err := s.ownedPortfolio(ctx, userID, portfolioID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, portfolioID); err != nil {
		return err
	}
	s.invalidateDirectory(ctx)
	return nil
}

func (s *PortfolioService) ListMine(ctx context.Context, userID int64) ([]domain.Portfolio, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *PortfolioService) ListByUser(ctx context.Context, userID int64) ([]domain.Portfolio, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *PortfolioService) GetByID(ctx context.Context, id int64) (*domain.PortfolioDetail, error) {
	return s.repo.FindDetailByID(ctx, id)
}

// ownedPortfolio loads the item and enforces that the caller owns it.
func (s *PortfolioService) ownedPortfolio(ctx context.Context, userID, portfolioID int64) (*domain.Portfolio, error) {
	existing, err := s.repo.FindByID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return existing, nil
}

func (s *PortfolioService) invalidateDirectory(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate directory cache")
	}
}

// requireProfile enforces the onboarding precondition shared by portfolio
// and project creation.
func requireProfile(ctx context.Context, profiles ports.ProfileRepository, userID int64) error {
	if _, err := profiles.FindByUserID(ctx, userID); err != nil {
		if err == domain.ErrProfileNotFound {
			return domain.ErrProfileRequired
		}
		return err
	}
	return nil
}
