package cachepub

import (
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
)

var (
	// metricCacheKeysRebuiltTotal counts cache keys written per rebuild
	// pass, by value kind. The error_code label is empty on success.
	metricCacheKeysRebuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCache,
			Name:      "keys_rebuilt_total",
		},
		[]string{"kind", metrics.FieldErrorCode},
	)

	// metricCacheRebuildsTotal counts whole rebuild passes.
	metricCacheRebuildsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCache,
			Name:      "rebuilds_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
