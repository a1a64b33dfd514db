package http

import (
	"net/http"

	"github.com/CarbonROM/tribble-tracker/internal/ingestors"
	"github.com/CarbonROM/tribble-tracker/internal/shared/loggers"
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
	"github.com/CarbonROM/tribble-tracker/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, cache stores.StatsCache, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	submitStatsHandler := NewSubmitStatsHandler(ingestionService)
	popularStatsHandler := NewPopularStatsHandler(cache)
	breakdownStatsHandler := NewBreakdownStatsHandler(cache)
	mainPageHandler := NewMainPageHandler(cache)

	// Routes
	router.Post("/api/v1/stats", errorHandlingAdapter(submitStatsHandler))
	router.Get("/api/v1/popular/{dimension}", errorHandlingAdapter(popularStatsHandler))
	router.Get("/api/v1/{dimension}/{value}", errorHandlingAdapter(breakdownStatsHandler))
	router.Get("/", errorHandlingAdapter(mainPageHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
