package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/marketplace-api/internal/api/metrics"
	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

// ProjectHandler handles client project postings and the public board.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectListResponse struct {
	Projects   []domain.ProjectDetail `json:"projects"`
	Pagination paginationResponse     `json:"pagination"`
}

// Create posts a new project.
//
// @Summary      Post a project
// @Tags         project
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project fields"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Router       /project [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), userID, ports.ProjectInput{
		Title:             req.Title,
		Description:       req.Description,
		Budget:            req.Budget,
		SkillRequirements: req.SkillRequirements,
		Constraints:       req.Constraints,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProfileRequired) {
			return echo.NewHTTPError(http.StatusBadRequest, "Complete your profile before creating project")
		}
		return err
	}
	metrics.ProjectsCreatedTotal.Inc()

	return respond(c, http.StatusCreated, "Project created successfully", project)
}

// Update partially updates an owned project.
//
// @Summary      Update a project
// @Tags         project
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /project/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.service.Update(c.Request().Context(), userID, id, ports.ProjectPatch{
		Title:             req.Title,
		Description:       req.Description,
		Budget:            req.Budget,
		SkillRequirements: req.SkillRequirements,
		Constraints:       req.Constraints,
		Status:            req.Status,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Project updated successfully", project)
}

// Delete removes an owned project.
//
// @Summary      Delete a project
// @Tags         project
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Project id"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /project/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Project deleted successfully", nil)
}

// Mine lists the caller's projects.
//
// @Summary      My projects
// @Tags         project
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Router       /project/me [get]
func (h *ProjectHandler) Mine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	projects, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", projects)
}

// ListAll serves the public project board, newest first.
//
// @Summary      Browse projects
// @Tags         project
// @Produce      json
// @Param        status   query     string  false  "Filter by status"  Enums(pending, accepted, rejected, done)
// @Param        keyword  query     string  false  "Substring match on title or description"
// @Param        page     query     int     false  "Page (1-based)"
// @Param        limit    query     int     false  "Rows per page (max 100)"
// @Success      200     {object}  Envelope
// @Failure      400     {object}  Envelope
// @Router       /project/all [get]
func (h *ProjectHandler) ListAll(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	projects, total, err := h.service.List(c.Request().Context(), ports.ProjectFilter{
		Status:  c.QueryParam("status"),
		Keyword: c.QueryParam("keyword"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return respond(c, http.StatusOK, "", projectListResponse{
		Projects: projects,
		Pagination: paginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// Get returns one project with owner contact fields.
//
// @Summary      Get a project
// @Tags         project
// @Produce      json
// @Param        id  path      int  true  "Project id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /project/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", detail)
}
