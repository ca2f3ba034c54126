package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

// WhatsappHandler builds wa.me deep links so clients can open a chat with a
// developer without exposing raw phone handling on the frontend.
type WhatsappHandler struct{}

func NewWhatsappHandler() *WhatsappHandler {
	return &WhatsappHandler{}
}

type whatsappLinkResponse struct {
	Link string `json:"link"`
}

// Link builds a wa.me URL from a phone number and optional message.
//
// @Summary      Build a WhatsApp deep link
// @Tags         whatsapp
// @Produce      json
// @Param        phone    query     string  true   "Phone number, any formatting"
// @Param        message  query     string  false  "Prefilled message"
// @Success      200      {object}  Envelope
// @Failure      400      {object}  Envelope
// @Router       /whatsapp/link [get]
func (h *WhatsappHandler) Link(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "phone is required")
	}

	number := domain.NormalizeWhatsapp(phone)
	if number == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "phone must contain digits")
	}

	link := "https://wa.me/" + number
	if msg := c.QueryParam("message"); msg != "" {
		link += "?text=" + url.QueryEscape(msg)
	}

	return respond(c, http.StatusOK, "", whatsappLinkResponse{Link: link})
}
