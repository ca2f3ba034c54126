package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devconnect/marketplace-api/internal/api/handler"
	"github.com/devconnect/marketplace-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, resp
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec, resp := renderError(t, &handler.ValidationError{
		Fields: []handler.FieldError{{Field: "email", Message: "email must be a valid email"}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp["success"] != false {
		t.Fatalf("expected failure envelope: %+v", resp)
	}
	fields, ok := resp["errors"].([]any)
	if !ok || len(fields) != 1 {
		t.Fatalf("expected one field error: %+v", resp["errors"])
	}
	fe := fields[0].(map[string]any)
	if fe["field"] != "email" {
		t.Fatalf("unexpected field error: %+v", fe)
	}
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrEmailTaken, http.StatusConflict, "Email already registered"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{domain.ErrRoleAlreadySet, http.StatusConflict, "Role already set"},
		{domain.ErrForbidden, http.StatusForbidden, "Access forbidden"},
		{domain.ErrProfileExists, http.StatusConflict, "Profile already exists"},
		{domain.ErrProfileNotFound, http.StatusNotFound, "Profile not found"},
		{domain.ErrPortfolioNotFound, http.StatusNotFound, "Portfolio not found"},
		{domain.ErrProjectNotFound, http.StatusNotFound, "Project not found"},
		{domain.ErrDeveloperNotFound, http.StatusNotFound, "Developer not found"},
		{domain.ErrInvalidWhatsapp, http.StatusBadRequest, "Invalid WhatsApp number"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "invalid or expired token"},
	}

	for _, tc := range cases {
		rec, resp := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if resp["message"] != tc.message {
			t.Fatalf("%v: expected message %q, got %v", tc.err, tc.message, resp["message"])
		}
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, resp := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "no token provided"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if resp["message"] != "no token provided" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestErrorHandler_UnexpectedErrorGetsCorrelationID(t *testing.T) {
	rec, resp := renderError(t, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp["message"] != "internal server error" {
		t.Fatalf("internal details leaked: %v", resp["message"])
	}
	errorID, ok := resp["errorId"].(string)
	if !ok || errorID == "" {
		t.Fatalf("expected correlation id, got %+v", resp)
	}
}
