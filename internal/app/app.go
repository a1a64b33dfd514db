package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/aggregators"
	"github.com/CarbonROM/tribble-tracker/internal/cachepub"
	internalhttp "github.com/CarbonROM/tribble-tracker/internal/http"
	"github.com/CarbonROM/tribble-tracker/internal/ingestors"
	"github.com/CarbonROM/tribble-tracker/internal/refreshers"
	"github.com/CarbonROM/tribble-tracker/internal/shared/configs"
	"github.com/CarbonROM/tribble-tracker/internal/shared/loggers"
	"github.com/CarbonROM/tribble-tracker/internal/stores"
	"github.com/CarbonROM/tribble-tracker/internal/stores/postgres"
	redisstore "github.com/CarbonROM/tribble-tracker/internal/stores/redis"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	cacheRefresher   refreshers.CacheRefresher
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc

	closers []func()
}

// New creates and initializes a new App instance, connecting to the
// configured storage and cache backends.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "tribble-tracker").
		Logger()

	app := &App{config: config, appLogger: appLogger}

	// Initialize event and state stores
	var eventStore stores.EventStore
	var stateStore stores.DeviceStateStore
	switch config.Storage.Backend {
	case "postgres":
		db, err := postgres.NewDB(ctx, config.Storage.Postgres, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		app.closers = append(app.closers, db.Close)
		eventStore = postgres.NewEventStore(db)
		stateStore = postgres.NewDeviceStateStore(db)
	default:
		eventStore = stores.NewInMemoryEventStore()
		stateStore = stores.NewInMemoryDeviceStateStore()
	}

	// Initialize stats cache
	var cache stores.StatsCache
	switch config.Cache.Backend {
	case "redis":
		redisCache, err := redisstore.NewStatsCache(ctx, config.Cache.Redis, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		app.closers = append(app.closers, func() { _ = redisCache.Close() })
		cache = redisCache
	default:
		cache = stores.NewInMemoryStatsCache()
	}

	// Initialize services
	ingestionService := ingestors.NewIngestionService(eventStore, stateStore)
	aggregator := aggregators.NewStatsAggregator(stateStore)
	publisher := cachepub.NewPublisher(aggregator, cache)

	refresherLogger := appLogger.With().Str(loggers.FieldComponent, "refresher").Logger()
	app.cacheRefresher = refreshers.NewCacheRefresher(
		publisher,
		time.Duration(config.Rollup.RefreshInterval)*time.Second,
		config.Rollup.WindowDays,
		refresherLogger,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, cache, httpLogger)

	// Create HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return app, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting tribble-tracker service on port %d (log_level=%s, storage=%s, cache=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Storage.Backend,
			app.config.Cache.Backend)

	// start background cache refresher
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.cacheRefresher.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel and wait for the background refresher
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.cacheRefresher.Stop()
	app.appLogger.Info().Msg("Cache refresher stopped")

	// 3) Close storage connections
	for _, closeFn := range app.closers {
		closeFn()
	}

	return nil
}
