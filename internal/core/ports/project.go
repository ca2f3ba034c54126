package ports

import (
	"context"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

// ProjectInput carries the fields accepted when posting a project.
type ProjectInput struct {
	Title             string
	Description       *string
	Budget            *float64
	SkillRequirements []string
	Constraints       *string
}

// ProjectPatch carries a partial update; nil means "leave unchanged".
type ProjectPatch struct {
	Title             *string
	Description       *string
	Budget            *float64
	SkillRequirements []string
	Constraints       *string
	Status            *string
}

// ProjectFilter carries query parameters for the public project board.
type ProjectFilter struct {
	Status  string // optional: filter by project status
	Keyword string // optional: substring match on title or description
	Page    int    // 1-based
	Limit   int    // rows per page, capped by the service
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	// FindDetailByID joins owner email, profile name and whatsapp.
	FindDetailByID(ctx context.Context, id int64) (*domain.ProjectDetail, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Project, error)
	// List returns a page of projects matching filter and the total count.
	List(ctx context.Context, filter ProjectFilter) ([]domain.ProjectDetail, int64, error)
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	// Create requires the caller to have an onboarding profile.
	Create(ctx context.Context, userID int64, in ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, userID, projectID int64, patch ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, userID, projectID int64) error
	ListMine(ctx context.Context, userID int64) ([]domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]domain.ProjectDetail, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ProjectDetail, error)
}
