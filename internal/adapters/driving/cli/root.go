// Package cli provides the mapmarket command line interface.
//
// Commands talk to the core through package-level driving ports. They are
// wired from flags on first use, or injected directly by tests.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
	"github.com/mapmarket/mapmarket-api/internal/logger"
)

// version is set at build time.
var version = "dev"

// skipWiring marks commands that run without services.
const skipWiring = "skip-wiring"

// Global flags.
var (
	verbose   bool
	dataDir   string
	configDir string
	useMemory bool
)

// Driving ports used by commands.
var (
	productService  driving.ProductService
	locationService driving.LocationService
	authService     driving.AuthService
	settingsService driving.SettingsService
	configStore     driven.ConfigStore
)

// cleanup releases whatever wire acquired.
var cleanup func() error

var rootCmd = &cobra.Command{
	Use:   "mapmarket",
	Short: "Products and their warehouse locations",
	Long: `MapMarket keeps a catalogue of products and the shelf location each one
occupies. A product sits in at most one location and a location holds at
most one product.

Run 'mapmarket serve' to start the REST API, or use the product and
location commands to work with the catalogue directly.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		logger.Sync()
		if cleanup == nil {
			return nil
		}
		err := cleanup()
		cleanup = nil
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Database directory (default ~/.mapmarket/data)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/.mapmarket)")
	rootCmd.PersistentFlags().BoolVar(&useMemory, "memory", false, "Keep data in memory instead of SQLite")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by 'mapmarket version'.
func SetVersion(v string) {
	version = v
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if cmd.Annotations[skipWiring] == "true" || settingsService != nil {
		return nil
	}

	release, err := wire(wireOptions{
		dataDir:   dataDir,
		configDir: configDir,
		memory:    useMemory,
	})
	if err != nil {
		return err
	}
	cleanup = release
	return nil
}
