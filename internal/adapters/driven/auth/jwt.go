package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
	"github.com/mapmarket/mapmarket-api/internal/logger"
)

// Ensure JWTIssuer implements the TokenIssuer interface.
var _ driven.TokenIssuer = (*JWTIssuer)(nil)

// claims are the JWT claims of MapMarket tokens.
type claims struct {
	Kind domain.TokenKind `json:"typ"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 access and refresh tokens.
type JWTIssuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTIssuer creates an issuer from auth settings.
// Without a configured secret a random one is generated, so tokens do not
// survive a restart.
func NewJWTIssuer(settings domain.AuthSettings) (*JWTIssuer, error) {
	secret := []byte(settings.Secret)
	if !settings.IsConfigured() {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generating token secret: %w", err)
		}
		logger.Warn("auth.secret not set; tokens are valid for this process only")
	}
	if settings.AccessTTL <= 0 || settings.RefreshTTL <= 0 {
		return nil, fmt.Errorf("%w: token lifetimes must be positive", domain.ErrInvalidInput)
	}

	return &JWTIssuer{
		secret:     secret,
		issuer:     settings.Issuer,
		accessTTL:  settings.AccessTTL,
		refreshTTL: settings.RefreshTTL,
	}, nil
}

// Issue creates an access/refresh token pair for username.
func (i *JWTIssuer) Issue(username string, now time.Time) (*domain.Token, error) {
	access, err := i.sign(username, domain.TokenKindAccess, now, i.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := i.sign(username, domain.TokenKindRefresh, now, i.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &domain.Token{
		Username:      username,
		Authenticated: true,
		Created:       now,
		Expiration:    now.Add(i.accessTTL),
		AccessToken:   access,
		RefreshToken:  refresh,
	}, nil
}

func (i *JWTIssuer) sign(username string, kind domain.TokenKind, now time.Time, ttl time.Duration) (string, error) {
	c := claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", kind, err)
	}
	return signed, nil
}

// Verify checks a token's signature, issuer, expiry and kind.
func (i *JWTIssuer) Verify(token string, kind domain.TokenKind) (*domain.Principal, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, domain.NewAuthError(domain.ErrAuthExpired, domain.InvalidToken)
	}
	if err != nil {
		logger.Debug("rejected token: %v", err)
		return nil, domain.NewAuthError(domain.ErrAuthInvalid, domain.InvalidToken)
	}
	if c.Kind != kind || c.Subject == "" {
		return nil, domain.NewAuthError(domain.ErrAuthInvalid, domain.InvalidToken)
	}

	return &domain.Principal{
		Username:  c.Subject,
		Kind:      c.Kind,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
