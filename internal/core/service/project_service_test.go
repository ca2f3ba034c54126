package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

type stubProjectRepo struct {
	createFn     func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	updateFn     func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	deleteFn     func(ctx context.Context, id int64) error
	findFn       func(ctx context.Context, id int64) (*domain.Project, error)
	findDetailFn func(ctx context.Context, id int64) (*domain.ProjectDetail, error)
	listByUserFn func(ctx context.Context, userID int64) ([]domain.Project, error)
	listFn       func(ctx context.Context, filter ports.ProjectFilter) ([]domain.ProjectDetail, int64, error)
}

func (s *stubProjectRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return s.createFn(ctx, p)
}

func (s *stubProjectRepo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return s.updateFn(ctx, p)
}

func (s *stubProjectRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubProjectRepo) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	return s.findFn(ctx, id)
}

func (s *stubProjectRepo) FindDetailByID(ctx context.Context, id int64) (*domain.ProjectDetail, error) {
	return s.findDetailFn(ctx, id)
}

func (s *stubProjectRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Project, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubProjectRepo) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.ProjectDetail, int64, error) {
	return s.listFn(ctx, filter)
}

func TestProjectService_Create_StartsPending(t *testing.T) {
	repo := &stubProjectRepo{
		createFn: func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
			if p.Status != domain.ProjectPending {
				t.Fatalf("expected pending status, got %s", p.Status)
			}
			p.ID = 7
			return p, nil
		},
	}
	svc := NewProjectService(repo, profileRepoWith(&domain.Profile{ID: 1, UserID: 20}), zerolog.Nop())

	created, err := svc.Create(context.Background(), 20, ports.ProjectInput{Title: "Build an API"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("unexpected id: %d", created.ID)
	}
}

func TestProjectService_Create_RequiresProfile(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{}, profileRepoWith(nil), zerolog.Nop())

	_, err := svc.Create(context.Background(), 20, ports.ProjectInput{Title: "Build an API"})
	if err != domain.ErrProfileRequired {
		t.Fatalf("expected ErrProfileRequired, got %v", err)
	}
}

func TestProjectService_Update_InvalidStatus(t *testing.T) {
	repo := &stubProjectRepo{
		findFn: func(ctx context.Context, id int64) (*domain.Project, error) {
			return &domain.Project{ID: id, UserID: 20, Status: domain.ProjectPending}, nil
		},
	}
	svc := NewProjectService(repo, profileRepoWith(nil), zerolog.Nop())

	bogus := "cancelled"
	_, err := svc.Update(context.Background(), 20, 7, ports.ProjectPatch{Status: &bogus})
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestProjectService_Update_StatusTransition(t *testing.T) {
	repo := &stubProjectRepo{
		findFn: func(ctx context.Context, id int64) (*domain.Project, error) {
			return &domain.Project{ID: id, UserID: 20, Status: domain.ProjectPending}, nil
		},
		updateFn: func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
			return p, nil
		},
	}
	svc := NewProjectService(repo, profileRepoWith(nil), zerolog.Nop())

	accepted := string(domain.ProjectAccepted)
	updated, err := svc.Update(context.Background(), 20, 7, ports.ProjectPatch{Status: &accepted})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.ProjectAccepted {
		t.Fatalf("status not updated: %s", updated.Status)
	}
}

func TestProjectService_Update_NotOwner(t *testing.T) {
	repo := &stubProjectRepo{
		findFn: func(ctx context.Context, id int64) (*domain.Project, error) {
			return &domain.Project{ID: id, UserID: 99}, nil
		},
	}
	svc := NewProjectService(repo, profileRepoWith(nil), zerolog.Nop())

	title := "Hijack"
	if _, err := svc.Update(context.Background(), 20, 7, ports.ProjectPatch{Title: &title}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProjectService_List_NormalizesPagination(t *testing.T) {
	var seen ports.ProjectFilter
	repo := &stubProjectRepo{
		listFn: func(ctx context.Context, filter ports.ProjectFilter) ([]domain.ProjectDetail, int64, error) {
			seen = filter
			return nil, 0, nil
		},
	}
	svc := NewProjectService(repo, profileRepoWith(nil), zerolog.Nop())

	if _, _, err := svc.List(context.Background(), ports.ProjectFilter{Page: -3, Limit: 9999}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if seen.Page != 1 {
		t.Fatalf("page not normalized: %d", seen.Page)
	}
	if seen.Limit != maxProjectPageSize {
		t.Fatalf("limit not capped: %d", seen.Limit)
	}
}

func TestProjectService_List_TrimsKeyword(t *testing.T) {
	var seen ports.ProjectFilter
	repo := &stubProjectRepo{
		listFn: func(ctx context.Context, filter ports.ProjectFilter) ([]domain.ProjectDetail, int64, error) {
			seen = filter
			return nil, 0, nil
		},
	}
	svc := NewProjectService(repo, profileRepoWith(nil), zerolog.Nop())

	if _, _, err := svc.List(context.Background(), ports.ProjectFilter{Keyword: "  landing page  "}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if seen.Keyword != "landing page" {
		t.Fatalf("keyword not trimmed: %q", seen.Keyword)
	}
}

func TestProjectService_List_RejectsUnknownStatus(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{}, profileRepoWith(nil), zerolog.Nop())

	if _, _, err := svc.List(context.Background(), ports.ProjectFilter{Status: "archived"}); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
