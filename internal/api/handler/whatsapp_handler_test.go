package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestWhatsappHandler_Link(t *testing.T) {
	h := NewWhatsappHandler()

	c, rec := newTestContext(t, http.MethodGet, "/whatsapp/link?phone=0812-3456-789", "")

	if err := h.Link(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].(map[string]any)
	if !ok || data["link"] != "https://wa.me/628123456789" {
		t.Fatalf("unexpected link: %+v", resp["data"])
	}
}

func TestWhatsappHandler_Link_WithMessage(t *testing.T) {
	h := NewWhatsappHandler()

	c, rec := newTestContext(t, http.MethodGet, "/whatsapp/link?phone=628123456789&message=Hello+there", "")

	if err := h.Link(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].(map[string]any)
	if !ok || data["link"] != "https://wa.me/628123456789?text=Hello+there" {
		t.Fatalf("unexpected link: %+v", resp["data"])
	}
}

func TestWhatsappHandler_Link_MissingPhone(t *testing.T) {
	h := NewWhatsappHandler()

	c, _ := newTestContext(t, http.MethodGet, "/whatsapp/link", "")

	err := h.Link(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
