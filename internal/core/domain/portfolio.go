package domain

import (
	"errors"
	"time"
)

var ErrPortfolioNotFound = errors.New("portfolio not found")

// Portfolio is a published work item owned by a developer.
type Portfolio struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Link        *string   `json:"link"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PortfolioDetail is a portfolio joined with owner contact fields for the
// public detail view.
type PortfolioDetail struct {
	Portfolio
	OwnerEmail string  `json:"owner_email"`
	OwnerName  *string `json:"owner_name"`
}
