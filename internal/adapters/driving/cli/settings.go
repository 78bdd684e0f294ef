package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapmarket/mapmarket-api/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change server settings.

Settings live in ~/.mapmarket/config.toml. Any key can be overridden with a
MAPMARKET_* environment variable, e.g. MAPMARKET_SERVER_ADDR for server.addr.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting and write it to the config file.

Durations take Go syntax ("90s", "2h"). Run 'mapmarket settings keys' for
the list of keys.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:         "keys",
	Short:       "List setting keys and their environment variables",
	Annotations: map[string]string{skipWiring: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		for _, key := range services.SettingKeys() {
			cmd.Printf("  %-32s %s\n", key, services.EnvName(key))
		}
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Printf("  Shutdown timeout: %s\n", settings.Server.ShutdownTimeout)
	cmd.Println()

	cmd.Println("[Auth]")
	cmd.Printf("  Issuer: %s\n", settings.Auth.Issuer)
	if settings.Auth.IsConfigured() {
		cmd.Printf("  Secret: %s\n", maskSecret(settings.Auth.Secret))
	} else {
		cmd.Println("  Secret: (random per process)")
	}
	cmd.Printf("  Access token TTL: %s\n", settings.Auth.AccessTTL)
	cmd.Printf("  Refresh token TTL: %s\n", settings.Auth.RefreshTTL)
	cmd.Println()

	cmd.Println("[Rate Limit]")
	if settings.RateLimit.Enabled() {
		cmd.Printf("  Requests/second: %d\n", settings.RateLimit.RequestsPerSecond)
		cmd.Printf("  Burst: %d\n", settings.RateLimit.Burst)
	} else {
		cmd.Println("  Disabled")
	}
	cmd.Println()

	cmd.Println("[Telemetry]")
	if settings.Telemetry.IsConfigured() {
		cmd.Printf("  OTLP endpoint: %s\n", settings.Telemetry.Endpoint)
		cmd.Printf("  Insecure: %t\n", settings.Telemetry.Insecure)
	} else {
		cmd.Println("  Export disabled")
	}
	cmd.Println()

	cmd.Printf("Verbose logging: %t\n", settings.Verbose)
	if configStore != nil {
		cmd.Printf("Config file: %s\n", configStore.Path())
	}

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
