package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/disfrutatv/dtv/internal/repositories"
	"github.com/disfrutatv/dtv/internal/services"
	"github.com/disfrutatv/dtv/internal/session"
	"github.com/disfrutatv/dtv/internal/shared"
	"github.com/disfrutatv/dtv/internal/store"
	"github.com/disfrutatv/dtv/internal/tasks"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	apiService := services.NewAPIService(config.API.BaseURL, nil)
	authService := services.NewAuthService(apiService)
	catalogService := services.NewCatalogService(apiService, config.TMDB.RateLimit)
	libraryService := services.NewLibraryService(apiService)
	adminService := services.NewAdminService(apiService)
	tmdbService := services.NewTMDBService(config.TMDB.APIKey, config.TMDB.BaseURL, config.API.Language, config.TMDB.RateLimit, nil)

	opts := RunnerOpts{
		Config:  config,
		API:     apiService,
		Auth:    authService,
		Catalog: catalogService,
		TMDB:    tmdbService,
		Library: libraryService,
		Admin:   adminService,
		Logger:  logger,
		State:   store.New(),
	}

	if db, err := shared.NewDatabase(config.Database.Path); err != nil {
		logger.Warn("database unavailable, credentials will not persist", "error", err)
	} else {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		creds := repositories.NewCredentialRepository(db)
		titles := repositories.NewCatalogRepository(db)

		opts.DB = db
		opts.Creds = creds
		opts.Cached = repositories.NewCachedCatalog(titles)
		opts.Session = session.NewManager(creds, authService, apiService, logger)
		opts.Engine = tasks.NewCatalogEngine(catalogService, adminService, titles)
	}

	runner := NewRunner(opts)

	app := &cli.Command{
		Name:     "dtv",
		Usage:    "Browse and track movies & TV series from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
