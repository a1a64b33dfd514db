package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CarbonROM/tribble-tracker/internal/cachepub"
	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/stores"

	"github.com/go-chi/chi/v5"
)

type popularStatsHandler struct {
	cache stores.StatsCache
}

func NewPopularStatsHandler(cache stores.StatsCache) AppHttpHandler {
	return &popularStatsHandler{cache: cache}
}

// Handle processes GET /api/v1/popular/{dimension} requests. Pure cache
// read: rollups are never computed on demand here.
func (h *popularStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	raw := chi.URLParam(r, "dimension")
	if raw == "device_id" {
		// Device identifiers are not a grouping dimension and never will be.
		return writeJSON(w, http.StatusOK, map[string]string{"result": "No!"})
	}

	dimension, err := models.ParseDimension(raw)
	if err != nil {
		return errInvalidDimension(raw, err)
	}

	blob, err := h.cache.Get(r.Context(), cachepub.KeyPopular(dimension))
	if err != nil {
		if errors.Is(err, stores.ErrCacheMiss) {
			metricCacheLookupsTotal.WithLabelValues(lookupMiss).Inc()
			return writeEmptyObject(w)
		}
		return errInternalCacheReadFailed(err)
	}

	data, err := models.DecodeCacheValue(blob, models.CacheKindRollup)
	if err != nil {
		return errInternalCacheDecodeFailed(err)
	}

	metricCacheLookupsTotal.WithLabelValues(lookupHit).Inc()
	return writeJSON(w, http.StatusOK, map[string]json.RawMessage{"result": data})
}
