package cli

import (
	"fmt"

	"github.com/mapmarket/mapmarket-api/internal/adapters/driven/auth"
	"github.com/mapmarket/mapmarket-api/internal/adapters/driven/config/file"
	"github.com/mapmarket/mapmarket-api/internal/adapters/driven/storage/memory"
	"github.com/mapmarket/mapmarket-api/internal/adapters/driven/storage/sqlite"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
	"github.com/mapmarket/mapmarket-api/internal/core/services"
	"github.com/mapmarket/mapmarket-api/internal/logger"
)

type wireOptions struct {
	dataDir   string
	configDir string
	memory    bool
}

// wire builds the stores and services and assigns the package ports.
func wire(opts wireOptions) (func() error, error) {
	logger.Section("wiring")

	cfgStore, err := file.NewConfigStore(opts.configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settings := services.NewSettingsService(cfgStore)
	appSettings, err := settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if appSettings.Verbose {
		logger.SetVerbose(true)
	}

	var (
		products  driven.ProductStore
		locations driven.LocationStore
		users     driven.UserStore
		release   = func() error { return nil }
	)
	if opts.memory {
		logger.Debug("using in-memory stores")
		productStore := memory.NewProductStore()
		products = productStore
		locations = memory.NewLocationStore(productStore, memory.SeedLocations()...)
		users = memory.NewUserStore()
	} else {
		store, err := sqlite.NewStore(opts.dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		logger.Debug("using database %s", store.Path())
		products = store.ProductStore()
		locations = store.LocationStore()
		users = store.UserStore()
		release = store.Close
	}

	issuer, err := auth.NewJWTIssuer(appSettings.Auth)
	if err != nil {
		_ = release()
		return nil, fmt.Errorf("configuring tokens: %w", err)
	}

	configStore = cfgStore
	settingsService = settings
	productService = services.NewProductService(products)
	locationService = services.NewLocationService(locations, products)
	authService = services.NewAuthService(users, issuer, auth.NewBcryptHasher(0))

	return func() error {
		configStore = nil
		settingsService = nil
		productService = nil
		locationService = nil
		authService = nil
		return release()
	}, nil
}
