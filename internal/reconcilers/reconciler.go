package reconcilers

import (
	"context"
	"fmt"

	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/shared/loggers"
	"github.com/CarbonROM/tribble-tracker/internal/shared/svcerrors"
	"github.com/CarbonROM/tribble-tracker/internal/stores"
)

const codeInternalReconcileFailed = "REC_9000"

const progressInterval = 1000

// Reconciler rebuilds the latest-state table from the raw event log. Events
// are applied in whatever order the store scans them; the conditional upsert
// makes the result order-independent, and re-running any number of times
// converges on the same table. Safe to abort and restart at any point.
//
//go:generate mockgen -source=reconciler.go -destination=./mocks/reconciler_mock.go -package=mocks
type Reconciler interface {
	// ReconcileAll replays the full event log into the state store and
	// returns the number of events applied.
	ReconcileAll(ctx context.Context) (int64, error)
}

type reconciler struct {
	eventStore stores.EventStore
	stateStore stores.DeviceStateStore
}

// NewReconciler creates a Reconciler over the given stores.
func NewReconciler(eventStore stores.EventStore, stateStore stores.DeviceStateStore) Reconciler {
	return &reconciler{eventStore: eventStore, stateStore: stateStore}
}

func (r *reconciler) ReconcileAll(ctx context.Context) (int64, error) {
	logger := loggers.Ctx(ctx)
	logger.Info().Msg("starting full reconciliation")

	var applied int64
	err := r.eventStore.Scan(ctx, func(event *models.Event) error {
		if err := r.stateStore.UpsertLatest(ctx, event); err != nil {
			return err
		}
		applied++
		metricEventsReconciledTotal.Inc()
		if applied%progressInterval == 0 {
			logger.Info().Int64("events_applied", applied).Msg("reconciliation progress")
		}
		return nil
	})
	if err != nil {
		return applied, svcerrors.NewInternalError(codeInternalReconcileFailed, fmt.Errorf("reconcileAllFailed: %w", err))
	}

	logger.Info().Int64("events_applied", applied).Msg("reconciliation completed")
	return applied, nil
}
