package aggregators

import (
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
)

// metricRollupComputedTotal counts rollup computations by operation
// (popularity, breakdown, count, official_count, distinct_values) and
// outcome. The error_code label is empty on success.
var (
	metricRollupComputedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRollup,
			Name:      "rollup_computed_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)
)
