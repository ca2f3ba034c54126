package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

const maxProjectPageSize = 100

// ProjectService implements the client project-board use cases.
type ProjectService struct {
	repo     ports.ProjectRepository
	profiles ports.ProfileRepository
	logger   zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, profiles ports.ProfileRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, profiles: profiles, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, userID int64, in ports.ProjectInput) (*domain.Project, error) {
	if err := requireProfile(ctx, s.profiles, userID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Project{
		UserID:            userID,
		Title:             in.Title,
		Description:       in.Description,
		Budget:            in.Budget,
		SkillRequirements: in.SkillRequirements,
		Constraints:       in.Constraints,
		Status:            domain.ProjectPending,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Int64("project_id", created.ID).Msg("project created")
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, userID, projectID int64, patch ports.ProjectPatch) (*domain.Project, error) {
	existing, err := s.ownedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil && *patch.Title != "" {
		existing.Title = *patch.Title
	}
	if patch.Description != nil {
		existing.Description = patch.Description
	}
	if patch.Budget != nil {
		existing.Budget = patch.Budget
	}
	if patch.SkillRequirements != nil {
		existing.SkillRequirements = patch.SkillRequirements
	}
	if patch.Constraints != nil {
		existing.Constraints = patch.Constraints
	}
	if patch.Status != nil {
		next := domain.ProjectStatus(*patch.Status)
		if !next.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		existing.Status = next
	}

	return s.repo.Update(ctx, existing)
}

func (s *ProjectService) Delete(ctx context.Context, userID, projectID int64) error {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, projectID)
}

func (s *ProjectService) ListMine(ctx context.Context, userID int64) ([]domain.Project, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// List returns the public project board, newest first. Page and limit are
// normalized here so repositories always see sane values.
func (s *ProjectService) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.ProjectDetail, int64, error) {
	if filter.Status != "" && !domain.ProjectStatus(filter.Status).Valid() {
		return nil, 0, domain.ErrInvalidStatus
	}
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > maxProjectPageSize {
		filter.Limit = maxProjectPageSize
	}
	return s.repo.List(ctx, filter)
}

func (s *ProjectService) GetByID(ctx context.Context, id int64) (*domain.ProjectDetail, error) {
	return s.repo.FindDetailByID(ctx, id)
}

func (s *ProjectService) ownedProject(ctx context.Context, userID, projectID int64) (*domain.Project, error) {
	existing, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return existing, nil
}
