package domain

import "time"

// User is an account allowed to call the API.
type User struct {
	// Username is the unique login name.
	Username string

	// FullName is optional display information.
	FullName string

	// PasswordHash is the stored password digest; never the plain password.
	PasswordHash string

	// Enabled is false for locked accounts.
	Enabled bool

	// CreatedAt is when the account was created.
	CreatedAt time.Time
}

// Token is the result of a successful sign-in or refresh.
type Token struct {
	// Username identifies the authenticated user.
	Username string `json:"username"`

	// Authenticated is always true for issued tokens.
	Authenticated bool `json:"authenticated"`

	// Created is when the access token was issued.
	Created time.Time `json:"created"`

	// Expiration is when the access token stops being valid.
	Expiration time.Time `json:"expiration"`

	// AccessToken is the bearer token for API access.
	AccessToken string `json:"accessToken"`

	// RefreshToken is used to obtain a new access token.
	RefreshToken string `json:"refreshToken"`
}

// IsExpired returns true if the access token has expired.
func (t *Token) IsExpired() bool {
	if t.Expiration.IsZero() {
		return false
	}
	return time.Now().After(t.Expiration)
}

// TokenKind distinguishes access tokens from refresh tokens.
type TokenKind string

// Token kinds.
const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Principal is the verified identity behind a token.
type Principal struct {
	// Username identifies the caller.
	Username string

	// Kind is the kind of token that was verified.
	Kind TokenKind

	// ExpiresAt is when the token expires.
	ExpiresAt time.Time
}
