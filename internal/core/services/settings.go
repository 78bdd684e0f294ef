package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
	"github.com/mapmarket/mapmarket-api/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyServerAddr        = "server.addr"
	KeyShutdownTimeout   = "server.shutdown_timeout"
	KeyAuthSecret        = "auth.secret"
	KeyAuthIssuer        = "auth.issuer"
	KeyAccessTTL         = "auth.access_ttl"
	KeyRefreshTTL        = "auth.refresh_ttl"
	KeyRateLimitRPS      = "rate_limit.requests_per_second"
	KeyRateLimitBurst    = "rate_limit.burst"
	KeyTelemetryEndpoint = "telemetry.endpoint"
	KeyTelemetryInsecure = "telemetry.insecure"
	KeyLogVerbose        = "log.verbose"
)

// EnvPrefix prefixes environment overrides: server.addr is read from
// MAPMARKET_SERVER_ADDR.
const EnvPrefix = "MAPMARKET_"

type settingKind int

const (
	kindString settingKind = iota
	kindInt
	kindBool
	kindDuration
)

var settingKinds = map[string]settingKind{
	KeyServerAddr:        kindString,
	KeyShutdownTimeout:   kindDuration,
	KeyAuthSecret:        kindString,
	KeyAuthIssuer:        kindString,
	KeyAccessTTL:         kindDuration,
	KeyRefreshTTL:        kindDuration,
	KeyRateLimitRPS:      kindInt,
	KeyRateLimitBurst:    kindInt,
	KeyTelemetryEndpoint: kindString,
	KeyTelemetryInsecure: kindBool,
	KeyLogVerbose:        kindBool,
}

// SettingKeys returns every recognised configuration key.
func SettingKeys() []string {
	return []string{
		KeyServerAddr, KeyShutdownTimeout,
		KeyAuthSecret, KeyAuthIssuer, KeyAccessTTL, KeyRefreshTTL,
		KeyRateLimitRPS, KeyRateLimitBurst,
		KeyTelemetryEndpoint, KeyTelemetryInsecure,
		KeyLogVerbose,
	}
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// SettingsService manages application settings.
// Values resolve as defaults, then the config file, then the environment.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// Get retrieves current application settings.
// Unparseable values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Server: domain.ServerSettings{
			Addr:            s.getString(KeyServerAddr, defaults.Server.Addr),
			ShutdownTimeout: s.getDuration(KeyShutdownTimeout, defaults.Server.ShutdownTimeout),
		},
		Auth: domain.AuthSettings{
			Secret:     s.getString(KeyAuthSecret, defaults.Auth.Secret),
			Issuer:     s.getString(KeyAuthIssuer, defaults.Auth.Issuer),
			AccessTTL:  s.getDuration(KeyAccessTTL, defaults.Auth.AccessTTL),
			RefreshTTL: s.getDuration(KeyRefreshTTL, defaults.Auth.RefreshTTL),
		},
		RateLimit: domain.RateLimitSettings{
			RequestsPerSecond: s.getInt(KeyRateLimitRPS, defaults.RateLimit.RequestsPerSecond),
			Burst:             s.getInt(KeyRateLimitBurst, defaults.RateLimit.Burst),
		},
		Telemetry: domain.TelemetrySettings{
			Endpoint: s.getString(KeyTelemetryEndpoint, defaults.Telemetry.Endpoint),
			Insecure: s.getBool(KeyTelemetryInsecure, defaults.Telemetry.Insecure),
		},
		Verbose: s.getBool(KeyLogVerbose, defaults.Verbose),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyServerAddr, settings.Server.Addr},
		{KeyShutdownTimeout, settings.Server.ShutdownTimeout.String()},
		{KeyAuthIssuer, settings.Auth.Issuer},
		{KeyAccessTTL, settings.Auth.AccessTTL.String()},
		{KeyRefreshTTL, settings.Auth.RefreshTTL.String()},
		{KeyRateLimitRPS, settings.RateLimit.RequestsPerSecond},
		{KeyRateLimitBurst, settings.RateLimit.Burst},
		{KeyTelemetryEndpoint, settings.Telemetry.Endpoint},
		{KeyTelemetryInsecure, settings.Telemetry.Insecure},
		{KeyLogVerbose, settings.Verbose},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// An empty secret means "generate one per process"; don't overwrite a stored one.
	if settings.Auth.Secret != "" {
		if err := s.configStore.Set(KeyAuthSecret, settings.Auth.Secret); err != nil {
			return fmt.Errorf("save %s: %w", KeyAuthSecret, err)
		}
	}

	return nil
}

// Set parses value according to the key's type and persists it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	parsed, err := parseSetting(kind, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func parseSetting(kind settingKind, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch kind {
	case kindInt:
		return strconv.Atoi(value)
	case kindBool:
		return strconv.ParseBool(value)
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, err
		}
		return d.String(), nil
	default:
		return value, nil
	}
}

// lookup returns the raw value for key, preferring the environment.
func (s *SettingsService) lookup(key string) (any, bool) {
	if s.lookupEnv != nil {
		if v, ok := s.lookupEnv(EnvName(key)); ok {
			return v, true
		}
	}
	if s.configStore == nil {
		return nil, false
	}
	return s.configStore.Get(key)
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val, ok := s.lookup(key)
	if !ok {
		return defaultVal
	}
	if str, ok := val.(string); ok && str != "" {
		return str
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val, ok := s.lookup(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	logger.Warn("ignoring invalid value for %s: %v", key, val)
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, ok := s.lookup(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	logger.Warn("ignoring invalid value for %s: %v", key, val)
	return defaultVal
}

// getDuration accepts Go duration strings ("90s") or whole seconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val, ok := s.lookup(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case int64:
		return time.Duration(v) * time.Second
	case int:
		return time.Duration(v) * time.Second
	case string:
		v = strings.TrimSpace(v)
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	logger.Warn("ignoring invalid value for %s: %v", key, val)
	return defaultVal
}
