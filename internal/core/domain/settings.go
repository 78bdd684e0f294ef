package domain

import (
	"fmt"
	"time"
)

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// AuthSettings configures token issuance.
type AuthSettings struct {
	// Secret signs tokens. Empty means a random per-process secret.
	Secret string

	// Issuer is written into every token.
	Issuer string

	// AccessTTL is the lifetime of access tokens.
	AccessTTL time.Duration

	// RefreshTTL is the lifetime of refresh tokens.
	RefreshTTL time.Duration
}

// IsConfigured returns true if a signing secret is set.
func (a AuthSettings) IsConfigured() bool {
	return a.Secret != ""
}

// RateLimitSettings configures request throttling.
type RateLimitSettings struct {
	// RequestsPerSecond is the sustained rate. Zero disables limiting.
	RequestsPerSecond int

	// Burst is the maximum number of requests admitted at once.
	Burst int
}

// Enabled returns true if requests are throttled.
func (r RateLimitSettings) Enabled() bool {
	return r.RequestsPerSecond > 0
}

// TelemetrySettings configures trace export.
type TelemetrySettings struct {
	// Endpoint is the OTLP/HTTP collector host:port. Empty disables export.
	Endpoint string

	// Insecure sends traces over plain HTTP.
	Insecure bool
}

// IsConfigured returns true if traces are exported.
func (t TelemetrySettings) IsConfigured() bool {
	return t.Endpoint != ""
}

// AppSettings holds all runtime configuration.
type AppSettings struct {
	Server    ServerSettings
	Auth      AuthSettings
	RateLimit RateLimitSettings
	Telemetry TelemetrySettings

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Addr:            ":8080",
			ShutdownTimeout: 15 * time.Second,
		},
		Auth: AuthSettings{
			Issuer:     "mapmarket",
			AccessTTL:  time.Hour,
			RefreshTTL: 3 * time.Hour,
		},
		RateLimit: RateLimitSettings{
			RequestsPerSecond: 50,
			Burst:             100,
		},
	}
}

// Validate checks the settings for values the server cannot run with.
func (s AppSettings) Validate() error {
	if s.Server.Addr == "" {
		return fmt.Errorf("%w: server address is empty", ErrInvalidInput)
	}
	if s.Auth.AccessTTL <= 0 || s.Auth.RefreshTTL <= 0 {
		return fmt.Errorf("%w: token lifetimes must be positive", ErrInvalidInput)
	}
	if s.Auth.RefreshTTL < s.Auth.AccessTTL {
		return fmt.Errorf("%w: refresh lifetime shorter than access lifetime", ErrInvalidInput)
	}
	if s.RateLimit.RequestsPerSecond < 0 || s.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidInput)
	}
	return nil
}
