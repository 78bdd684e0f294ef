package driven

import (
	"context"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// UserStore persists API accounts.
type UserStore interface {
	// Get retrieves a user by username.
	// Returns domain.ErrNotFound if the user does not exist.
	Get(ctx context.Context, username string) (*domain.User, error)

	// Save stores or updates a user.
	Save(ctx context.Context, user domain.User) error
}
