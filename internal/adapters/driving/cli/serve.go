package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mapmarket/mapmarket-api/internal/adapters/driving/rest"
	"github.com/mapmarket/mapmarket-api/internal/logger"
	"github.com/mapmarket/mapmarket-api/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the REST API server.

The listen address, token lifetimes, rate limit and trace export come from
the config file and MAPMARKET_* environment variables. Edits to the config
file while the server runs re-apply log verbosity and the rate limit.

Examples:
  mapmarket serve
  mapmarket serve --addr :9090
  mapmarket serve --memory`,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if productService == nil || locationService == nil || authService == nil || settingsService == nil {
		return errors.New("services not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	addr := settings.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, shutdownTracing, err := telemetry.Setup(ctx, settings.Telemetry, version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("flushing traces: %v", err)
		}
	}()

	limiter := rest.NewRateLimiter(settings.RateLimit)
	app := rest.NewApp(rest.Services{
		Products:  productService,
		Locations: locationService,
		Auth:      authService,
	}, limiter)

	if configStore != nil {
		go watchConfig(ctx, limiter)
	}

	cmd.Printf("MapMarket API listening on %s\n", addr)
	server := rest.NewServer(addr, rest.NewRouter(app), settings.Server.ShutdownTimeout)
	return server.Run(ctx)
}

// watchConfig re-applies reloadable settings whenever the config file changes.
func watchConfig(ctx context.Context, limiter *rest.RateLimiter) {
	err := configStore.Watch(ctx, func() {
		applyReloadableSettings(limiter)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("config watch stopped: %v", err)
	}
}

func applyReloadableSettings(limiter *rest.RateLimiter) {
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("reloading settings: %v", err)
		return
	}
	logger.SetVerbose(verbose || settings.Verbose)
	limiter.Update(settings.RateLimit)
	logger.Info("settings reloaded")
}
