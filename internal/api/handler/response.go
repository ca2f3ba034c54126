package handler

import "github.com/labstack/echo/v4"

// Envelope is the canonical response shape for every endpoint. Message is
// optional on reads; Errors carries field-level validation details.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	ErrorID string `json:"errorId,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}
