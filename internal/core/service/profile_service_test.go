package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

func portsProfileInput(name string, whatsapp *string) ports.ProfileInput {
	return ports.ProfileInput{Name: name, Whatsapp: whatsapp}
}

func profilePatch(bio *string) ports.ProfilePatch {
	return ports.ProfilePatch{Bio: bio}
}

type stubProfileRepo struct {
	createFn       func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	updateFn       func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	findByUserFn   func(ctx context.Context, userID int64) (*domain.Profile, error)
	findDetailFn   func(ctx context.Context, userID int64) (*domain.ProfileDetail, error)
}

func (s *stubProfileRepo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	return s.createFn(ctx, p)
}

func (s *stubProfileRepo) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	return s.updateFn(ctx, p)
}

func (s *stubProfileRepo) FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	return s.findByUserFn(ctx, userID)
}

func (s *stubProfileRepo) FindDetailByUserID(ctx context.Context, userID int64) (*domain.ProfileDetail, error) {
	return s.findDetailFn(ctx, userID)
}

type stubInvalidator struct {
	calls int
	err   error
}

func (s *stubInvalidator) Invalidate(ctx context.Context) error {
	s.calls++
	return s.err
}

func noProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func TestProfileService_Create_NormalizesWhatsapp(t *testing.T) {
	repo := &stubProfileRepo{
		findByUserFn: noProfile,
		createFn: func(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
			if p.Whatsapp == nil || *p.Whatsapp != "628123456789" {
				t.Fatalf("whatsapp not normalized: %v", p.Whatsapp)
			}
			p.ID = 1
			return p, nil
		},
	}
	cache := &stubInvalidator{}
	svc := NewProfileService(repo, cache, zerolog.Nop())

	raw := "0812-3456-789"
	profile, err := svc.Create(context.Background(), 10, portsProfileInput("Alice", &raw))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if profile.ID != 1 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if cache.calls != 1 {
		t.Fatalf("expected one cache invalidation, got %d", cache.calls)
	}
}

func TestProfileService_Create_InvalidWhatsapp(t *testing.T) {
	repo := &stubProfileRepo{findByUserFn: noProfile}
	svc := NewProfileService(repo, nil, zerolog.Nop())

	raw := "12345"
	if _, err := svc.Create(context.Background(), 10, portsProfileInput("Alice", &raw)); err != domain.ErrInvalidWhatsapp {
		t.Fatalf("expected ErrInvalidWhatsapp, got %v", err)
	}
}

func TestProfileService_Create_AlreadyExists(t *testing.T) {
	repo := &stubProfileRepo{
		findByUserFn: func(ctx context.Context, userID int64) (*domain.Profile, error) {
			return &domain.Profile{ID: 1, UserID: userID}, nil
		},
	}
	svc := NewProfileService(repo, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), 10, portsProfileInput("Alice", nil)); err != domain.ErrProfileExists {
		t.Fatalf("expected ErrProfileExists, got %v", err)
	}
}

func TestProfileService_Update_PatchSemantics(t *testing.T) {
	bio := "old bio"
	location := "Jakarta"
	repo := &stubProfileRepo{
		findByUserFn: func(ctx context.Context, userID int64) (*domain.Profile, error) {
			return &domain.Profile{ID: 1, UserID: userID, Name: "Alice", Bio: &bio, Location: &location}, nil
		},
		updateFn: func(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
			return p, nil
		},
	}
	svc := NewProfileService(repo, &stubInvalidator{}, zerolog.Nop())

	newBio := "new bio"
	updated, err := svc.Update(context.Background(), 10, profilePatch(&newBio))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Bio == nil || *updated.Bio != "new bio" {
		t.Fatalf("bio not patched: %v", updated.Bio)
	}
	if updated.Location == nil || *updated.Location != "Jakarta" {
		t.Fatalf("untouched field changed: %v", updated.Location)
	}
	if updated.Name != "Alice" {
		t.Fatalf("untouched name changed: %s", updated.Name)
	}
}

func TestProfileService_Update_NotFound(t *testing.T) {
	repo := &stubProfileRepo{findByUserFn: noProfile}
	svc := NewProfileService(repo, nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), 10, profilePatch(nil)); err != domain.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileService_Create_CacheFailureIsNotFatal(t *testing.T) {
	repo := &stubProfileRepo{
		findByUserFn: noProfile,
		createFn: func(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
			p.ID = 1
			return p, nil
		},
	}
	cache := &stubInvalidator{err: context.DeadlineExceeded}
	svc := NewProfileService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), 10, portsProfileInput("Alice", nil)); err != nil {
		t.Fatalf("cache failure should not fail the write: %v", err)
	}
}
