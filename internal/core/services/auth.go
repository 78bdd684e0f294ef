package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
	"github.com/mapmarket/mapmarket-api/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService signs users in and verifies their tokens.
type AuthService struct {
	users  driven.UserStore
	tokens driven.TokenIssuer
	hasher driven.PasswordHasher
	now    func() time.Time
}

// NewAuthService creates a new auth service.
func NewAuthService(users driven.UserStore, tokens driven.TokenIssuer, hasher driven.PasswordHasher) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		now:    time.Now,
	}
}

// Signin checks credentials and issues a token pair.
// Unknown users, disabled users and wrong passwords are indistinguishable.
func (s *AuthService) Signin(ctx context.Context, username, password string) (*domain.Token, error) {
	if s.users == nil || s.tokens == nil || s.hasher == nil {
		return nil, domain.ErrNotImplemented
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, domain.NewAuthError(domain.ErrAuthInvalid, domain.InvalidCredentials)
	}

	user, err := s.users.Get(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Debug("signin for unknown user %q", username)
		return nil, domain.NewAuthError(domain.ErrAuthInvalid, domain.InvalidCredentials)
	}
	if err != nil {
		return nil, err
	}
	if !user.Enabled {
		logger.Debug("signin for disabled user %q", username)
		return nil, domain.NewAuthError(domain.ErrAuthInvalid, domain.InvalidCredentials)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.NewAuthError(domain.ErrAuthInvalid, domain.InvalidCredentials)
	}

	return s.tokens.Issue(user.Username, s.now())
}

// Refresh exchanges a refresh token for a new token pair.
// An empty username accepts whichever user the token was issued to.
func (s *AuthService) Refresh(ctx context.Context, username, refreshToken string) (*domain.Token, error) {
	if s.users == nil || s.tokens == nil {
		return nil, domain.ErrNotImplemented
	}
	if refreshToken == "" {
		return nil, domain.NewAuthError(domain.ErrAuthRequired, domain.MissingToken)
	}

	principal, err := s.tokens.Verify(refreshToken, domain.TokenKindRefresh)
	if err != nil {
		return nil, err
	}
	if username == "" {
		username = principal.Username
	}
	if principal.Username != username {
		return nil, domain.NewAuthError(domain.ErrAuthInvalid, domain.InvalidToken)
	}

	user, err := s.users.Get(ctx, username)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !user.Enabled) {
		return nil, domain.NewAuthError(domain.ErrAuthInvalid, domain.InvalidToken)
	}
	if err != nil {
		return nil, err
	}

	return s.tokens.Issue(user.Username, s.now())
}

// Authenticate verifies an access token.
func (s *AuthService) Authenticate(_ context.Context, accessToken string) (*domain.Principal, error) {
	if s.tokens == nil {
		return nil, domain.ErrNotImplemented
	}
	if accessToken == "" {
		return nil, domain.NewAuthError(domain.ErrAuthRequired, domain.MissingToken)
	}
	return s.tokens.Verify(accessToken, domain.TokenKindAccess)
}

// Register creates or replaces a user account.
func (s *AuthService) Register(ctx context.Context, username, fullName, password string) error {
	if s.users == nil || s.hasher == nil {
		return domain.ErrNotImplemented
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.NewRequiredParameter(domain.FieldUsername)
	}
	if password == "" {
		return domain.NewRequiredParameter(domain.FieldPassword)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	user := domain.User{
		Username:     username,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hash,
		Enabled:      true,
		CreatedAt:    s.now(),
	}
	if existing, err := s.users.Get(ctx, username); err == nil {
		user.CreatedAt = existing.CreatedAt
	}

	if err := s.users.Save(ctx, user); err != nil {
		return err
	}
	logger.Info("registered user %q", username)
	return nil
}
