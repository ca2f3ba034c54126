package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/marketplace-api/internal/core/ports"
)

// DeveloperHandler serves the public developer directory.
type DeveloperHandler struct {
	service ports.DeveloperService
}

func NewDeveloperHandler(service ports.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{service: service}
}

// List returns every developer with profile and portfolio items, optionally
// narrowed by skill.
//
// @Summary      Browse developers
// @Tags         developer
// @Produce      json
// @Param        skill  query     string  false  "Only developers listing this skill"
// @Success      200  {object}  Envelope
// @Router       /developer [get]
func (h *DeveloperHandler) List(c echo.Context) error {
	developers, err := h.service.List(c.Request().Context(), c.QueryParam("skill"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", developers)
}

// Search finds developers by skill. Unlike List, the skill is mandatory here.
//
// @Summary      Search developers by skill
// @Tags         developer
// @Produce      json
// @Param        skill  query     string  true  "Skill to search for"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /developer/search [get]
func (h *DeveloperHandler) Search(c echo.Context) error {
	skill := strings.TrimSpace(c.QueryParam("skill"))
	if skill == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Skill query is required")
	}

	developers, err := h.service.List(c.Request().Context(), skill)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", developers)
}

// Get returns one developer by id.
//
// @Summary      Get a developer
// @Tags         developer
// @Produce      json
// @Param        id  path      int  true  "User id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /developer/{id} [get]
func (h *DeveloperHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	developer, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", developer)
}
