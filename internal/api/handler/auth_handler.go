package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/marketplace-api/internal/api/metrics"
	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

// AuthHandler handles registration, login, session status and role selection.
type AuthHandler struct {
	service ports.AuthService
	tokens  ports.TokenService
}

func NewAuthHandler(service ports.AuthService, tokens ports.TokenService) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens}
}

type sessionResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type statusResponse struct {
	Status        string       `json:"status"`
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
	HasRole       bool         `json:"hasRole"`
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.service.Register(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.Inc()

	return respond(c, http.StatusCreated, "User registered successfully", sessionResponse{User: user, Token: token})
}

// Login authenticates an account and returns a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return respond(c, http.StatusOK, "Login successful", sessionResponse{User: user, Token: token})
}

// Status reports whether the caller holds a valid session. The endpoint is
// public: without a token it answers authenticated=false rather than 401, so
// clients can probe before rendering a login screen.
//
// @Summary      Session status
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /auth/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return respond(c, http.StatusOK, "", statusResponse{Status: "ok", Authenticated: false})
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token format")
	}

	claims, err := h.tokens.Verify(parts[1])
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	user, err := h.service.Me(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", statusResponse{
		Status:        "ok",
		Authenticated: true,
		User:          user,
		HasRole:       user.HasRole(),
	})
}

// SetRole assigns the caller's role, exactly once.
//
// @Summary      Select account role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setRoleRequest  true  "Chosen role"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /auth/set-role [post]
func (h *AuthHandler) SetRole(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.service.SetRole(c.Request().Context(), userID, req.Role)
	if err != nil {
		return err
	}
	metrics.RoleAssignmentsTotal.WithLabelValues(req.Role).Inc()

	return respond(c, http.StatusOK, "Role set successfully", sessionResponse{User: user, Token: token})
}

// Me returns the caller's account.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", map[string]any{"user": user})
}
