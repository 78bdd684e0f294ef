package driven

import (
	"time"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	// Issue creates an access/refresh token pair for username.
	Issue(username string, now time.Time) (*domain.Token, error)

	// Verify checks a token's signature, expiry and kind.
	// Returns domain.ErrAuthExpired or domain.ErrAuthInvalid on failure.
	Verify(token string, kind domain.TokenKind) (*domain.Principal, error)
}

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	// Hash returns a digest suitable for storage.
	Hash(password string) (string, error)

	// Compare returns nil if password matches hash.
	Compare(hash, password string) error
}
