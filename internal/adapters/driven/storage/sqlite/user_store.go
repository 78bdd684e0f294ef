package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
)

// userStore implements driven.UserStore.
type userStore struct {
	store *Store
}

var _ driven.UserStore = (*userStore)(nil)

// Get retrieves a user by username.
func (s *userStore) Get(ctx context.Context, username string) (*domain.User, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT username, full_name, password_hash, enabled, created_at
		FROM users WHERE username = ?
	`, username)

	var user domain.User
	var createdAt sql.NullTime
	if err := row.Scan(&user.Username, &user.FullName, &user.PasswordHash, &user.Enabled, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	user.CreatedAt = createdAt.Time
	return &user, nil
}

// Save stores or updates a user. The original creation time is kept.
func (s *userStore) Save(ctx context.Context, user domain.User) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO users (username, full_name, password_hash, enabled, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			full_name = excluded.full_name,
			password_hash = excluded.password_hash,
			enabled = excluded.enabled
	`, user.Username, user.FullName, user.PasswordHash, user.Enabled, user.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	return nil
}
