package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/ports"
)

// AuthService implements registration, login and the one-shot role
// assignment over the user repository and token service.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, email, password string, role *string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}
	if role != nil && !domain.ValidRole(*role) {
		return nil, "", domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// An unknown email reads the same as a wrong password so the
		// response does not leak account existence.
		if err == domain.ErrUserNotFound {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// SetRole assigns a role to an identity that has none yet. Roles are
// terminal: a second call conflicts instead of overwriting. A fresh token is
// issued so the caller's next requests carry the new role claim; tokens
// minted before the change keep their stale claim until expiry.
func (s *AuthService) SetRole(ctx context.Context, userID int64, role string) (*domain.User, string, error) {
	if !domain.ValidRole(role) {
		return nil, "", domain.ErrInvalidRole
	}

	updated, err := s.repo.SetRole(ctx, userID, role)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(updated)
	if err != nil {
		return nil, "", err
	}
	return updated, token, nil
}
