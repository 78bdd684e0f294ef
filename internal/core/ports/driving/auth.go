package driving

import (
	"context"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// AuthService authenticates API callers.
type AuthService interface {
	// Signin checks credentials and issues a token pair.
	// Returns domain.ErrAuthInvalid for unknown users or wrong passwords.
	Signin(ctx context.Context, username, password string) (*domain.Token, error)

	// Refresh exchanges a refresh token for a new token pair.
	// The token must belong to username.
	Refresh(ctx context.Context, username, refreshToken string) (*domain.Token, error)

	// Authenticate verifies an access token.
	Authenticate(ctx context.Context, accessToken string) (*domain.Principal, error)

	// Register creates or replaces a user account.
	Register(ctx context.Context, username, fullName, password string) error
}
