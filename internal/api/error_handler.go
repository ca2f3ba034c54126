package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devconnect/marketplace-api/internal/api/handler"
	"github.com/devconnect/marketplace-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as a 400 with the field list attached.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors with a correlation id without leaking details
//     to the client.
//
// Every response uses the canonical envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, handler.Envelope{
				Success: false,
				Message: "Validation failed",
				Errors:  ve.Fields,
			})
			return
		}

		code, msg := resolveError(err)
		if code == http.StatusInternalServerError {
			errorID := uuid.NewString()
			log.Error().
				Err(err).
				Str("error_id", errorID).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
			_ = c.JSON(code, handler.Envelope{Success: false, Message: msg, ErrorID: errorID})
			return
		}

		_ = c.JSON(code, handler.Envelope{Success: false, Message: msg})
	}
}

func resolveError(err error) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, domain.ErrRoleAlreadySet):
		return http.StatusConflict, "Role already set"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access forbidden"
	case errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, "Profile not found"
	case errors.Is(err, domain.ErrProfileExists):
		return http.StatusConflict, "Profile already exists"
	case errors.Is(err, domain.ErrProfileRequired):
		return http.StatusBadRequest, "Complete your profile first"
	case errors.Is(err, domain.ErrInvalidWhatsapp):
		return http.StatusBadRequest, "Invalid WhatsApp number"
	case errors.Is(err, domain.ErrPortfolioNotFound):
		return http.StatusNotFound, "Portfolio not found"
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, "Project not found"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid project status"
	case errors.Is(err, domain.ErrDeveloperNotFound):
		return http.StatusNotFound, "Developer not found"
	}

	return http.StatusInternalServerError, "internal server error"
}
