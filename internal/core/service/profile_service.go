package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

// DirectoryInvalidator drops cached developer-directory entries after a
// write that changes what the directory shows.
type DirectoryInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ProfileService implements the onboarding-profile use cases.
type ProfileService struct {
	repo   ports.ProfileRepository
	cache  DirectoryInvalidator
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, cache DirectoryInvalidator, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, cache: cache, logger: logger}
}

func (s *ProfileService) Create(ctx context.Context, userID int64, in ports.ProfileInput) (*domain.Profile, error) {
	if _, err := s.repo.FindByUserID(ctx, userID); err == nil {
		return nil, domain.ErrProfileExists
	} else if err != domain.ErrProfileNotFound {
		return nil, err
	}

	whatsapp, err := normalizedWhatsapp(in.Whatsapp)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Profile{
		UserID:   userID,
		Name:     in.Name,
		Bio:      in.Bio,
		Location: in.Location,
		Whatsapp: whatsapp,
		PhotoURL: in.PhotoURL,
		Skills:   in.Skills,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDirectory(ctx)
	s.logger.Info().Int64("user_id", userID).Msg("profile created")
	return created, nil
}

func (s *ProfileService) Update(ctx context.Context, userID int64, patch ports.ProfilePatch) (*domain.Profile, error) {
	existing, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != "" {
		existing.Name = *patch.Name
	}
	if patch.Bio != nil {
		existing.Bio = patch.Bio
	}
	if patch.Location != nil {
		existing.Location = patch.Location
	}
	if patch.PhotoURL != nil {
		existing.PhotoURL = patch.PhotoURL
	}
	if patch.Skills != nil {
		existing.Skills = patch.Skills
	}
	if patch.Whatsapp != nil {
		whatsapp, err := normalizedWhatsapp(patch.Whatsapp)
		if err != nil {
			return nil, err
		}
		existing.Whatsapp = whatsapp
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateDirectory(ctx)
	return updated, nil
}

func (s *ProfileService) GetMine(ctx context.Context, userID int64) (*domain.Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID int64) (*domain.ProfileDetail, error) {
	return s.repo.FindDetailByUserID(ctx, userID)
}

// invalidateDirectory is best effort: a stale cache entry expires on its own
// TTL, so a failed delete is only worth a warning.
func (s *ProfileService) invalidateDirectory(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate directory cache")
	}
}

// normalizedWhatsapp cleans and validates an optional number. An empty input
// clears the field.
func normalizedWhatsapp(raw *string) (*string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	normalized := domain.NormalizeWhatsapp(*raw)
	if !domain.ValidWhatsapp(normalized) {
		return nil, domain.ErrInvalidWhatsapp
	}
	return &normalized, nil
}
