package cachepub

import (
	"context"
	"sync"

	"github.com/CarbonROM/tribble-tracker/internal/aggregators"
	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/shared/loggers"
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
	"github.com/CarbonROM/tribble-tracker/internal/shared/svcerrors"
	"github.com/CarbonROM/tribble-tracker/internal/stores"
)

// Publisher performs full rebuilds of the statistics cache: for every
// dimension it publishes the popularity rollup and one breakdown entry per
// observed value, plus the rendered main page.
//
// A rebuild is not transactional across keys. A failure computing one key
// is logged and skipped; keys untouched by a pass keep their previous
// (possibly stale) value, which the periodic idempotent rebuild tolerates.
//
//go:generate mockgen -source=publisher.go -destination=./mocks/publisher_mock.go -package=mocks
type Publisher interface {
	RebuildAll(ctx context.Context, days int) error
}

type publisher struct {
	aggregator aggregators.StatsAggregator
	cache      stores.StatsCache

	// Guards against overlapping rebuilds; a second concurrent invocation
	// is rejected, not queued.
	rebuildMu sync.Mutex
}

// NewPublisher creates a Publisher over the given aggregator and cache.
func NewPublisher(aggregator aggregators.StatsAggregator, cache stores.StatsCache) Publisher {
	return &publisher{aggregator: aggregator, cache: cache}
}

func (p *publisher) RebuildAll(ctx context.Context, days int) error {
	if !p.rebuildMu.TryLock() {
		metricCacheRebuildsTotal.WithLabelValues(codeRebuildInProgress).Inc()
		return errRebuildInProgress()
	}
	defer p.rebuildMu.Unlock()

	logger := loggers.Ctx(ctx)
	logger.Info().Int("window_days", days).Msg("starting cache rebuild")

	p.publishMain(ctx, days)

	for _, dimension := range models.AllDimensions() {
		p.publishPopularity(ctx, dimension, days)

		values, err := p.aggregator.DistinctValues(ctx, dimension, days)
		if err != nil {
			logger.Error().Err(err).
				Str(loggers.FieldDimension, dimension.String()).
				Msg("failed to list dimension values, skipping breakdowns")
			continue
		}
		for _, value := range values {
			if err := ctx.Err(); err != nil {
				return err
			}
			p.publishBreakdown(ctx, dimension, value, days)
		}
	}

	metricCacheRebuildsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().Msg("cache rebuild completed")
	return nil
}

func (p *publisher) publishMain(ctx context.Context, days int) {
	logger := loggers.Ctx(ctx)

	byModel, err := p.aggregator.Popularity(ctx, models.DimensionModel, days)
	if err != nil {
		p.skip(ctx, KeyMain, string(models.CacheKindPage), err)
		return
	}
	byCountry, err := p.aggregator.Popularity(ctx, models.DimensionCountry, days)
	if err != nil {
		p.skip(ctx, KeyMain, string(models.CacheKindPage), err)
		return
	}
	total, err := p.aggregator.Count(ctx, days)
	if err != nil {
		p.skip(ctx, KeyMain, string(models.CacheKindPage), err)
		return
	}

	page, err := renderMainPage(byModel, byCountry, total, days)
	if err != nil {
		p.skip(ctx, KeyMain, string(models.CacheKindPage), err)
		return
	}
	p.store(ctx, KeyMain, models.CacheKindPage, page)
	logger.Debug().Str(loggers.FieldCacheKey, KeyMain).Msg("published main page")
}

func (p *publisher) publishPopularity(ctx context.Context, dimension models.Dimension, days int) {
	key := KeyPopular(dimension)
	rollup, err := p.aggregator.Popularity(ctx, dimension, days)
	if err != nil {
		p.skip(ctx, key, string(models.CacheKindRollup), err)
		return
	}
	p.store(ctx, key, models.CacheKindRollup, rollup)
}

func (p *publisher) publishBreakdown(ctx context.Context, dimension models.Dimension, value string, days int) {
	key := KeyBreakdown(dimension, value)
	breakdown, err := p.aggregator.Breakdown(ctx, dimension, value, days)
	if err != nil {
		p.skip(ctx, key, string(models.CacheKindBreakdown), err)
		return
	}
	p.store(ctx, key, models.CacheKindBreakdown, breakdown)
}

// store serializes data into the versioned envelope and writes it.
func (p *publisher) store(ctx context.Context, key string, kind models.CacheValueKind, data any) {
	blob, err := models.EncodeCacheValue(kind, data)
	if err != nil {
		p.skip(ctx, key, string(kind), err)
		return
	}
	if err := p.cache.Set(ctx, key, blob); err != nil {
		p.skip(ctx, key, string(kind), errInternalCacheStoreFailed(err))
		return
	}
	metricCacheKeysRebuiltTotal.WithLabelValues(string(kind), metrics.ValueNoError).Inc()
}

// skip records a key the rebuild could not publish and moves on. Empty
// filter sets are expected (a value may have aged out of the window since
// it was listed) and logged at debug, everything else at error.
func (p *publisher) skip(ctx context.Context, key, kind string, err error) {
	logger := loggers.Ctx(ctx)
	errorCode := ""
	notFound := false
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		errorCode = svcErr.Code
		notFound = svcErr.IsNotFoundError()
	}
	metricCacheKeysRebuiltTotal.WithLabelValues(kind, errorCode).Inc()

	if notFound {
		logger.Debug().Err(err).Str(loggers.FieldCacheKey, key).Msg("no data for cache key, skipping")
		return
	}
	logger.Error().Err(err).Str(loggers.FieldCacheKey, key).Msg("failed to rebuild cache key, skipping")
}
