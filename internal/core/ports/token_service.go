package ports

import "github.com/devconnect/marketplace-api/internal/core/domain"

// TokenService mints and validates the bearer tokens that represent an
// authenticated session. Tokens are stateless; there is no revocation list,
// so invalidation happens only by expiry or secret rotation.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns the decoded claims, or one of domain.ErrTokenMalformed,
	// domain.ErrTokenExpired, domain.ErrTokenInvalid.
	Verify(token string) (*domain.TokenClaims, error)
}
