package ingestors

import (
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
)

var (
	metricStatsIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "stats_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
