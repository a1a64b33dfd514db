package http

import (
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
)

var (
	// metricHTTPRequestsTotal counts total HTTP requests.
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "http_requests_total",
		},
		[]string{"method", "path", "status", metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method", "path", "status", metrics.FieldErrorCode},
	)

	// metricCacheLookupsTotal counts read-path cache lookups by outcome.
	metricCacheLookupsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "cache_lookups_total",
		},
		[]string{"outcome"},
	)
)

const (
	lookupHit  = "hit"
	lookupMiss = "miss"
)
