package refreshers

import (
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
)

var (
	metricRefreshRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCache,
			Name:      "refresh_runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
