package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

// DirectoryCache holds the assembled developer directory between requests.
// A miss is (nil, false, nil); errors are surfaced so the caller can decide
// to fall through to the repository.
type DirectoryCache interface {
	Get(ctx context.Context) ([]domain.Developer, bool, error)
	Set(ctx context.Context, developers []domain.Developer) error
	Invalidate(ctx context.Context) error
}

// DeveloperService serves the public developer directory, backed by the
// aggregating repository with a short-TTL cache in front.
type DeveloperService struct {
	repo   ports.DeveloperRepository
	cache  DirectoryCache
	logger zerolog.Logger
}

func NewDeveloperService(repo ports.DeveloperRepository, cache DirectoryCache, logger zerolog.Logger) *DeveloperService {
	return &DeveloperService{repo: repo, cache: cache, logger: logger}
}

// List serves the directory. A skill filter bypasses the cache: the cached
// entry holds the unfiltered directory, and filtered reads are rare enough
// to go straight to the store.
func (s *DeveloperService) List(ctx context.Context, skill string) ([]domain.Developer, error) {
	if skill = strings.TrimSpace(skill); skill != "" {
		developers, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		return filterBySkill(developers, skill), nil
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("directory cache read failed, falling back to store")
		} else if ok {
			return cached, nil
		}
	}

	developers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, developers); err != nil {
			s.logger.Warn().Err(err).Msg("failed to populate directory cache")
		}
	}
	return developers, nil
}

func (s *DeveloperService) GetByID(ctx context.Context, id int64) (*domain.Developer, error) {
	return s.repo.FindByID(ctx, id)
}

// filterBySkill keeps developers whose profile lists skill, compared
// case-insensitively against whole skill entries.
func filterBySkill(developers []domain.Developer, skill string) []domain.Developer {
	matched := make([]domain.Developer, 0, len(developers))
	for _, dev := range developers {
		if dev.Profile == nil {
			continue
		}
		for _, s := range dev.Profile.Skills {
			if strings.EqualFold(s, skill) {
				matched = append(matched, dev)
				break
			}
		}
	}
	return matched
}
