package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string, role *string) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, string, error)
	meFn       func(ctx context.Context, userID int64) (*domain.User, error)
	setRoleFn  func(ctx context.Context, userID int64, role string) (*domain.User, string, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string, role *string) (*domain.User, string, error) {
	return s.registerFn(ctx, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.meFn(ctx, userID)
}

func (s *stubAuthService) SetRole(ctx context.Context, userID int64, role string) (*domain.User, string, error) {
	return s.setRoleFn(ctx, userID, role)
}

type stubTokenVerifier struct {
	verifyFn func(token string) (*domain.TokenClaims, error)
}

func (s *stubTokenVerifier) Issue(user *domain.User) (string, error) {
	return "", nil
}

func (s *stubTokenVerifier) Verify(token string) (*domain.TokenClaims, error) {
	return s.verifyFn(token)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string, role *string) (*domain.User, string, error) {
			if email != "alice@example.com" || password != "secret123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: 1, Email: email}, "token123", nil
		},
	}
	h := NewAuthHandler(stub, &stubTokenVerifier{})

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"secret123"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	if resp["success"] != true {
		t.Fatalf("expected success envelope: %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["token"] != "token123" {
		t.Fatalf("unexpected data: %+v", resp["data"])
	}
	user, ok := data["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", data["user"])
	}
	if _, leaked := user["PasswordHash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string, role *string) (*domain.User, string, error) {
			t.Fatalf("should not be called")
			return nil, "", nil
		},
	}
	h := NewAuthHandler(stub, &stubTokenVerifier{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"123"}`)

	err := h.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected two field errors, got %+v", ve.Fields)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string, role *string) (*domain.User, string, error) {
			return nil, "", domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub, &stubTokenVerifier{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"dup@example.com","password":"secret123"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return &domain.User{ID: 2, Email: email}, "token456", nil
		},
	}
	h := NewAuthHandler(stub, &stubTokenVerifier{})

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].(map[string]any)
	if !ok || data["token"] != "token456" {
		t.Fatalf("unexpected data: %+v", resp["data"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, &stubTokenVerifier{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"bad-password"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Status_NoToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubTokenVerifier{})

	c, rec := newTestContext(t, http.MethodGet, "/auth/status", "")

	if err := h.Status(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].(map[string]any)
	if !ok || data["authenticated"] != false {
		t.Fatalf("expected authenticated=false, got %+v", resp["data"])
	}
	if data["status"] != "ok" {
		t.Fatalf("expected status ok, got %+v", data["status"])
	}
}

func TestAuthHandler_Status_ValidToken(t *testing.T) {
	role := domain.RoleDeveloper
	stub := &stubAuthService{
		meFn: func(ctx context.Context, userID int64) (*domain.User, error) {
			return &domain.User{ID: userID, Email: "dev@example.com", Role: &role}, nil
		},
	}
	tokens := &stubTokenVerifier{
		verifyFn: func(token string) (*domain.TokenClaims, error) {
			return &domain.TokenClaims{UserID: 42, Email: "dev@example.com", Role: &role}, nil
		},
	}
	h := NewAuthHandler(stub, tokens)

	c, rec := newTestContext(t, http.MethodGet, "/auth/status", "")
	c.Request().Header.Set("Authorization", "Bearer good-token")

	if err := h.Status(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].(map[string]any)
	if !ok || data["authenticated"] != true || data["hasRole"] != true {
		t.Fatalf("unexpected status payload: %+v", resp["data"])
	}
	if data["status"] != "ok" {
		t.Fatalf("expected status ok, got %+v", data["status"])
	}
}

func TestAuthHandler_Status_InvalidToken(t *testing.T) {
	tokens := &stubTokenVerifier{
		verifyFn: func(token string) (*domain.TokenClaims, error) {
			return nil, domain.ErrTokenInvalid
		},
	}
	h := NewAuthHandler(&stubAuthService{}, tokens)

	c, _ := newTestContext(t, http.MethodGet, "/auth/status", "")
	c.Request().Header.Set("Authorization", "Bearer bad-token")

	err := h.Status(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_SetRole_Success(t *testing.T) {
	stub := &stubAuthService{
		setRoleFn: func(ctx context.Context, userID int64, role string) (*domain.User, string, error) {
			if userID != 42 || role != domain.RoleClient {
				t.Fatalf("unexpected args: %d %s", userID, role)
			}
			return &domain.User{ID: userID, Email: "a@example.com", Role: &role}, "fresh-token", nil
		},
	}
	h := NewAuthHandler(stub, &stubTokenVerifier{})

	c, rec := newTestContext(t, http.MethodPost, "/auth/set-role", `{"role":"client"}`)
	c.Set("user_id", int64(42))

	if err := h.SetRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].(map[string]any)
	if !ok || data["token"] != "fresh-token" {
		t.Fatalf("expected fresh token in data: %+v", resp["data"])
	}
}

func TestAuthHandler_SetRole_InvalidValue(t *testing.T) {
	stub := &stubAuthService{
		setRoleFn: func(ctx context.Context, userID int64, role string) (*domain.User, string, error) {
			t.Fatalf("should not be called")
			return nil, "", nil
		},
	}
	h := NewAuthHandler(stub, &stubTokenVerifier{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/set-role", `{"role":"admin"}`)
	c.Set("user_id", int64(42))

	err := h.SetRole(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthHandler_SetRole_AlreadySet(t *testing.T) {
	stub := &stubAuthService{
		setRoleFn: func(ctx context.Context, userID int64, role string) (*domain.User, string, error) {
			return nil, "", domain.ErrRoleAlreadySet
		},
	}
	h := NewAuthHandler(stub, &stubTokenVerifier{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/set-role", `{"role":"developer"}`)
	c.Set("user_id", int64(42))

	if err := h.SetRole(c); !errors.Is(err, domain.ErrRoleAlreadySet) {
		t.Fatalf("expected ErrRoleAlreadySet, got %v", err)
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubTokenVerifier{})

	c, _ := newTestContext(t, http.MethodGet, "/auth/me", "")

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
