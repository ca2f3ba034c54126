package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devconnect/marketplace-api/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// ErrMissingSecret signals a fatal configuration error: the service refuses
// to issue or verify tokens without a signing secret.
var ErrMissingSecret = errors.New("token service: signing secret not configured")

// TokenService issues and verifies HS256 session tokens carrying the
// identity's id, email and role snapshot.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// sessionClaims is the wire shape of the token payload.
type sessionClaims struct {
	UserID int64   `json:"id"`
	Email  string  `json:"email"`
	Role   *string `json:"role"`
	jwt.RegisteredClaims
}

// NewTokenService builds a TokenService. An empty secret is rejected so the
// misconfiguration surfaces at boot instead of per request.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token valid for the configured TTL. The role claim is a
// snapshot of the role at issuance time.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now().UTC()
	claims := sessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, distinguishing malformed structure,
// expiry, and signature/other failures.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	if token == "" {
		return nil, domain.ErrTokenMalformed
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenInvalid
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	out := &domain.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
