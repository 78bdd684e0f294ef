// Package auth provides the token and password adapters used to
// authenticate API callers.
//
// Adapters:
//   - JWTIssuer: HS256 access and refresh tokens
//   - BcryptHasher: password digests
package auth
