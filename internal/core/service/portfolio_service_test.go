package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

type stubPortfolioRepo struct {
	createFn     func(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error)
	updateFn     func(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error)
	deleteFn     func(ctx context.Context, id int64) error
	findFn       func(ctx context.Context, id int64) (*domain.Portfolio, error)
	findDetailFn func(ctx context.Context, id int64) (*domain.PortfolioDetail, error)
	listFn       func(ctx context.Context, userID int64) ([]domain.Portfolio, error)
}

func (s *stubPortfolioRepo) Create(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error) {
	return s.createFn(ctx, p)
}

func (s *stubPortfolioRepo) Update(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error) {
	return s.updateFn(ctx, p)
}

func (s *stubPortfolioRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubPortfolioRepo) FindByID(ctx context.Context, id int64) (*domain.Portfolio, error) {
	return s.findFn(ctx, id)
}

func (s *stubPortfolioRepo) FindDetailByID(ctx context.Context, id int64) (*domain.PortfolioDetail, error) {
	return s.findDetailFn(ctx, id)
}

func (s *stubPortfolioRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Portfolio, error) {
	return s.listFn(ctx, userID)
}

func profileRepoWith(profile *domain.Profile) *stubProfileRepo {
	return &stubProfileRepo{
		findByUserFn: func(ctx context.Context, userID int64) (*domain.Profile, error) {
			if profile == nil {
				return nil, domain.ErrProfileNotFound
			}
			return profile, nil
		},
	}
}

func TestPortfolioService_Create_RequiresProfile(t *testing.T) {
	svc := NewPortfolioService(&stubPortfolioRepo{}, profileRepoWith(nil), nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), 10, ports.PortfolioInput{Title: "My app"})
	if err != domain.ErrProfileRequired {
		t.Fatalf("expected ErrProfileRequired, got %v", err)
	}
}

func TestPortfolioService_Create_Success(t *testing.T) {
	repo := &stubPortfolioRepo{
		createFn: func(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error) {
			if p.UserID != 10 || p.Title != "My app" {
				t.Fatalf("unexpected portfolio: %+v", p)
			}
			p.ID = 3
			return p, nil
		},
	}
	cache := &stubInvalidator{}
	svc := NewPortfolioService(repo, profileRepoWith(&domain.Profile{ID: 1, UserID: 10}), cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), 10, ports.PortfolioInput{Title: "My app"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 3 {
		t.Fatalf("unexpected id: %d", created.ID)
	}
	if cache.calls != 1 {
		t.Fatalf("expected directory invalidation")
	}
}

func TestPortfolioService_Update_NotOwner(t *testing.T) {
	repo := &stubPortfolioRepo{
		findFn: func(ctx context.Context, id int64) (*domain.Portfolio, error) {
			return &domain.Portfolio{ID: id, UserID: 99, Title: "Theirs"}, nil
		},
	}
	svc := NewPortfolioService(repo, profileRepoWith(nil), nil, zerolog.Nop())

	title := "Mine now"
	_, err := svc.Update(context.Background(), 10, 3, ports.PortfolioPatch{Title: &title})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPortfolioService_Update_ClearsLink(t *testing.T) {
	link := "https://old.example.com"
	repo := &stubPortfolioRepo{
		findFn: func(ctx context.Context, id int64) (*domain.Portfolio, error) {
			return &domain.Portfolio{ID: id, UserID: 10, Title: "App", Link: &link}, nil
		},
		updateFn: func(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error) {
			return p, nil
		},
	}
	svc := NewPortfolioService(repo, profileRepoWith(nil), &stubInvalidator{}, zerolog.Nop())

	empty := ""
	updated, err := svc.Update(context.Background(), 10, 3, ports.PortfolioPatch{Link: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Link != nil {
		t.Fatalf("expected cleared link, got %v", *updated.Link)
	}
}

func TestPortfolioService_Delete_NotFound(t *testing.T) {
	repo := &stubPortfolioRepo{
		findFn: func(ctx context.Context, id int64) (*domain.Portfolio, error) {
			return nil, domain.ErrPortfolioNotFound
		},
	}
	svc := NewPortfolioService(repo, profileRepoWith(nil), nil, zerolog.Nop())

	if err := svc.Delete(context.Background(), 10, 404); err != domain.ErrPortfolioNotFound {
		t.Fatalf("expected ErrPortfolioNotFound, got %v", err)
	}
}

func TestPortfolioService_Delete_Success(t *testing.T) {
	deleted := false
	repo := &stubPortfolioRepo{
		findFn: func(ctx context.Context, id int64) (*domain.Portfolio, error) {
			return &domain.Portfolio{ID: id, UserID: 10}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	cache := &stubInvalidator{}
	svc := NewPortfolioService(repo, profileRepoWith(nil), cache, zerolog.Nop())

	if err := svc.Delete(context.Background(), 10, 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatalf("repository delete not called")
	}
	if cache.calls != 1 {
		t.Fatalf("expected directory invalidation")
	}
}
