package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/marketplace-api/internal/api/metrics"
	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

// PortfolioHandler handles developer work items.
type PortfolioHandler struct {
	service ports.PortfolioService
}

func NewPortfolioHandler(service ports.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// Create publishes a new portfolio item.
//
// @Summary      Publish a portfolio item
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPortfolioRequest  true  "Portfolio fields"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Router       /portfolio [post]
func (h *PortfolioHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPortfolioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	portfolio, err := h.service.Create(c.Request().Context(), userID, ports.PortfolioInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProfileRequired) {
			return echo.NewHTTPError(http.StatusBadRequest, "Complete your profile before adding portfolio")
		}
		return err
	}
	metrics.PortfoliosCreatedTotal.Inc()

	return respond(c, http.StatusCreated, "Portfolio created successfully", portfolio)
}

// Update partially updates an owned portfolio item.
//
// @Summary      Update a portfolio item
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Portfolio id"
// @Param        body  body      updatePortfolioRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /portfolio/{id} [put]
func (h *PortfolioHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePortfolioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	portfolio, err := h.service.Update(c.Request().Context(), userID, id, ports.PortfolioPatch{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Portfolio updated successfully", portfolio)
}

// Delete removes an owned portfolio item.
//
// @Summary      Delete a portfolio item
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Portfolio id"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c echo.Context) error {
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

	return respond(c, http.StatusOK, "Portfolio deleted successfully", nil)
}

// Mine lists the caller's portfolio items.
//
// @Summary      My portfolio items
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Router       /portfolio/me [get]
func (h *PortfolioHandler) Mine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", items)
}

// ListByUser lists any user's portfolio items.
//
// @Summary      Portfolio items by user
// @Tags         portfolio
// @Produce      json
// @Param        userId  path      int  true  "User id"
// @Success      200     {object}  Envelope
// @Router       /portfolio/user/{userId} [get]
func (h *PortfolioHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	items, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", items)
}

// Get returns one portfolio item with owner contact fields.
//
// @Summary      Get a portfolio item
// @Tags         portfolio
// @Produce      json
// @Param        id  path      int  true  "Portfolio id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /portfolio/{id} [get]
func (h *PortfolioHandler) Get(c echo.Context) error {
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
