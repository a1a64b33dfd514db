package http

import (
	"errors"
	"net/http"

	"github.com/CarbonROM/tribble-tracker/internal/cachepub"
	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/stores"

	"github.com/go-chi/chi/v5"
)

type breakdownStatsHandler struct {
	cache stores.StatsCache
}

func NewBreakdownStatsHandler(cache stores.StatsCache) AppHttpHandler {
	return &breakdownStatsHandler{cache: cache}
}

// Handle processes GET /api/v1/{dimension}/{value} requests, e.g.
// /api/v1/model/hammerhead or /api/v1/country/in. The value is matched
// against the raw observed field value.
func (h *breakdownStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	raw := chi.URLParam(r, "dimension")
	dimension, err := models.ParseDimension(raw)
	if err != nil {
		return errInvalidDimension(raw, err)
	}
	value := chi.URLParam(r, "value")

	blob, err := h.cache.Get(r.Context(), cachepub.KeyBreakdown(dimension, value))
	if err != nil {
		if errors.Is(err, stores.ErrCacheMiss) {
			metricCacheLookupsTotal.WithLabelValues(lookupMiss).Inc()
			return writeEmptyObject(w)
		}
		return errInternalCacheReadFailed(err)
	}

	data, err := models.DecodeCacheValue(blob, models.CacheKindBreakdown)
	if err != nil {
		return errInternalCacheDecodeFailed(err)
	}

	metricCacheLookupsTotal.WithLabelValues(lookupHit).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(data)
	return err
}
