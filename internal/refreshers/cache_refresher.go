package refreshers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/cachepub"
	"github.com/CarbonROM/tribble-tracker/internal/shared/loggers"
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
	"github.com/CarbonROM/tribble-tracker/internal/shared/svcerrors"
	"github.com/CarbonROM/tribble-tracker/internal/shared/ulid"
)

// CacheRefresher runs full cache rebuilds on a fixed cadence, out of band
// from request handling. One rebuild runs at a time; the publisher's own
// guard rejects overlap if an operator triggers a manual rebuild while the
// scheduled one is in flight.
//
//go:generate mockgen -source=cache_refresher.go -destination=./mocks/cache_refresher_mock.go -package=mocks
type CacheRefresher interface {
	Start(ctx context.Context)
	Stop()
}

type cacheRefresher struct {
	publisher  cachepub.Publisher
	interval   time.Duration
	windowDays int

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewCacheRefresher(publisher cachepub.Publisher, interval time.Duration, windowDays int, logger loggers.Logger) CacheRefresher {
	return &cacheRefresher{
		publisher:  publisher,
		interval:   interval,
		windowDays: windowDays,
		stopCh:     make(chan struct{}),
		logger:     logger,
	}
}

// Start spawns the refresh loop. The first rebuild runs immediately so the
// cache warms up without waiting a full interval after startup.
func (r *cacheRefresher) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

// Stop waits for the refresh loop to finish (best called during app shutdown).
func (r *cacheRefresher) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *cacheRefresher) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.rebuild(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.rebuild(ctx)
		}
	}
}

func (r *cacheRefresher) rebuild(ctx context.Context) {
	// Handle panic recovery to keep the refresh loop alive
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("cache refresh panic recovered: %v", p)

			var panicErr error
			if err, ok := p.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", p)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricRefreshRunsTotal.WithLabelValues(svcErr.Code).Inc()
		}
	}()

	runCtx := r.logger.With().
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	if err := r.publisher.RebuildAll(runCtx, r.windowDays); err != nil {
		errorCode := ""
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			errorCode = svcErr.Code
		}
		metricRefreshRunsTotal.WithLabelValues(errorCode).Inc()
		r.logger.Error().Err(err).Msg("scheduled cache rebuild failed")
		return
	}
	metricRefreshRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
}
