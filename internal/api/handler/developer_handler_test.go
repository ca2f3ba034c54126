package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

type stubDeveloperService struct {
	listFn func(ctx context.Context, skill string) ([]domain.Developer, error)
	getFn  func(ctx context.Context, id int64) (*domain.Developer, error)
}

func (s *stubDeveloperService) List(ctx context.Context, skill string) ([]domain.Developer, error) {
	return s.listFn(ctx, skill)
}

func (s *stubDeveloperService) GetByID(ctx context.Context, id int64) (*domain.Developer, error) {
	return s.getFn(ctx, id)
}

func TestDeveloperHandler_List_PassesSkillFilter(t *testing.T) {
	stub := &stubDeveloperService{
		listFn: func(ctx context.Context, skill string) ([]domain.Developer, error) {
			if skill != "go" {
				t.Fatalf("expected skill filter to reach the service, got %q", skill)
			}
			return []domain.Developer{{ID: 1, Email: "dev@example.com"}}, nil
		},
	}
	h := NewDeveloperHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/developer?skill=go", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data: %+v", resp["data"])
	}
}

func TestDeveloperHandler_Search_RequiresSkill(t *testing.T) {
	stub := &stubDeveloperService{
		listFn: func(ctx context.Context, skill string) ([]domain.Developer, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewDeveloperHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/developer/search?skill=+", "")

	err := h.Search(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "Skill query is required" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestDeveloperHandler_Search_FiltersBySkill(t *testing.T) {
	stub := &stubDeveloperService{
		listFn: func(ctx context.Context, skill string) ([]domain.Developer, error) {
			if skill != "react" {
				t.Fatalf("unexpected skill: %q", skill)
			}
			return []domain.Developer{{ID: 7}}, nil
		},
	}
	h := NewDeveloperHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/developer/search?skill=react", "")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
