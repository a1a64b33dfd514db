package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/aggregators"
	"github.com/CarbonROM/tribble-tracker/internal/cachepub"
	"github.com/CarbonROM/tribble-tracker/internal/export"
	"github.com/CarbonROM/tribble-tracker/internal/reconcilers"
	"github.com/CarbonROM/tribble-tracker/internal/shared/configs"
	"github.com/CarbonROM/tribble-tracker/internal/shared/loggers"
	"github.com/CarbonROM/tribble-tracker/internal/stores"
	"github.com/CarbonROM/tribble-tracker/internal/stores/postgres"
	redisstore "github.com/CarbonROM/tribble-tracker/internal/stores/redis"
)

const usage = `Usage: statsctl [-config path] <command>

Commands:
  migrate                     rebuild the device state table from the event log
  rebuild                     run one full cache rebuild
  dump <start> <end> <file>   export pseudonymized events between two dates (YYYY-MM-DD)
`

func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to configuration file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fatal("Failed to load config: %v", err)
	}

	logger, err := loggers.New(cfg.Log.Level)
	if err != nil {
		fatal("Failed to initialize logger: %v", err)
	}
	logger = logger.With().Str(loggers.FieldApp, "statsctl").Logger()

	ctx := logger.WithContext(context.Background())

	switch args[0] {
	case "migrate":
		runMigrate(ctx, cfg, logger)
	case "rebuild":
		runRebuild(ctx, cfg, logger)
	case "dump":
		if len(args) != 4 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		runDump(ctx, cfg, logger, args[1], args[2], args[3])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runMigrate(ctx context.Context, cfg *configs.Config, logger loggers.Logger) {
	eventStore, stateStore, cleanup := openStores(ctx, cfg, logger)
	defer cleanup()

	reconciler := reconcilers.NewReconciler(eventStore, stateStore)
	applied, err := reconciler.ReconcileAll(ctx)
	if err != nil {
		fatal("Migration failed after %d events: %v", applied, err)
	}
	fmt.Printf("Migrated %d events\n", applied)
}

func runRebuild(ctx context.Context, cfg *configs.Config, logger loggers.Logger) {
	_, stateStore, cleanup := openStores(ctx, cfg, logger)
	defer cleanup()

	cache := openCache(ctx, cfg, logger)
	publisher := cachepub.NewPublisher(aggregators.NewStatsAggregator(stateStore), cache)
	if err := publisher.RebuildAll(ctx, cfg.Rollup.WindowDays); err != nil {
		fatal("Cache rebuild failed: %v", err)
	}
	fmt.Println("Cache rebuilt")
}

func runDump(ctx context.Context, cfg *configs.Config, logger loggers.Logger, start, end, filename string) {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		fatal("Invalid start date %q: %v", start, err)
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		fatal("Invalid end date %q: %v", end, err)
	}

	eventStore, _, cleanup := openStores(ctx, cfg, logger)
	defer cleanup()

	f, err := os.Create(filename)
	if err != nil {
		fatal("Failed to create %q: %v", filename, err)
	}
	defer f.Close()

	exporter := export.NewExporter(eventStore)
	count, err := exporter.Dump(ctx, from, to, f)
	if err != nil {
		fatal("Export failed after %d records: %v", count, err)
	}
	fmt.Printf("Exported %d records to %s\n", count, filename)
}

func openStores(ctx context.Context, cfg *configs.Config, logger loggers.Logger) (stores.EventStore, stores.DeviceStateStore, func()) {
	if cfg.Storage.Backend != "postgres" {
		// A memory backend holds no data another process could operate on.
		fatal("statsctl requires the postgres storage backend, got %q", cfg.Storage.Backend)
	}
	db, err := postgres.NewDB(ctx, cfg.Storage.Postgres, logger)
	if err != nil {
		fatal("Failed to connect to postgres: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		fatal("Failed to ensure schema: %v", err)
	}
	return postgres.NewEventStore(db), postgres.NewDeviceStateStore(db), db.Close
}

func openCache(ctx context.Context, cfg *configs.Config, logger loggers.Logger) stores.StatsCache {
	if cfg.Cache.Backend != "redis" {
		fatal("statsctl requires the redis cache backend, got %q", cfg.Cache.Backend)
	}
	cache, err := redisstore.NewStatsCache(ctx, cfg.Cache.Redis, logger)
	if err != nil {
		fatal("Failed to connect to redis: %v", err)
	}
	return cache
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
