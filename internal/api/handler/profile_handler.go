package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/marketplace-api/internal/core/ports"
)

// ProfileHandler handles onboarding profile operations.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create creates the caller's profile.
//
// @Summary      Create profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProfileRequest  true  "Profile fields"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /profile [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Create(c.Request().Context(), userID, ports.ProfileInput{
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
		Whatsapp: req.Whatsapp,
		PhotoURL: req.PhotoURL,
		Skills:   req.Skills,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Profile created successfully", profile)
}

// Update partially updates the caller's profile.
//
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Update(c.Request().Context(), userID, ports.ProfilePatch{
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
		Whatsapp: req.Whatsapp,
		PhotoURL: req.PhotoURL,
		Skills:   req.Skills,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Profile updated successfully", profile)
}

// Me returns the caller's profile.
//
// @Summary      My profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", profile)
}

// GetByUser returns the public profile of any user.
//
// @Summary      Get a profile by user id
// @Tags         profile
// @Produce      json
// @Param        userId  path      int  true  "User id"
// @Success      200     {object}  Envelope
// @Failure      404     {object}  Envelope
// @Router       /profile/{userId} [get]
func (h *ProfileHandler) GetByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	detail, err := h.service.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", detail)
}
