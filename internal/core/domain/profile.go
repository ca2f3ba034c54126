package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")
var ErrProfileExists = errors.New("profile already exists")
var ErrProfileRequired = errors.New("profile required")
var ErrInvalidWhatsapp = errors.New("invalid whatsapp number")

// Profile is the onboarding profile attached to a User. Certain writes
// (portfolio and project creation) require one to exist first.
type Profile struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio"`
	Location  *string   `json:"location"`
	Whatsapp  *string   `json:"whatsapp"`
	PhotoURL  *string   `json:"photo_url"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileDetail is a profile joined with its owner's public identity fields.
type ProfileDetail struct {
	Profile
	Email string  `json:"email"`
	Role  *string `json:"role"`
}

var whatsappPattern = regexp.MustCompile(`^62\d{9,13}$`)
var nonDigits = regexp.MustCompile(`[^0-9]`)

// NormalizeWhatsapp strips formatting characters and rewrites a local
// leading-zero prefix to the 62 country code. Empty input stays empty.
func NormalizeWhatsapp(raw string) string {
	cleaned := nonDigits.ReplaceAllString(raw, "")
	if strings.HasPrefix(cleaned, "0") {
		return "62" + cleaned[1:]
	}
	return cleaned
}

// ValidWhatsapp reports whether a normalized number is acceptable.
func ValidWhatsapp(number string) bool {
	return whatsappPattern.MatchString(number)
}
