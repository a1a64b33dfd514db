package reconcilers

import (
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
)

var (
	metricEventsReconciledTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReconcile,
			Name:      "events_applied_total",
		},
	)
)
