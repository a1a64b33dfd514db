package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/CarbonROM/tribble-tracker/internal/cachepub"
	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/stores"
)

const mainPagePlaceholder = "This page isn't rendered yet"

type mainPageHandler struct {
	cache stores.StatsCache
}

func NewMainPageHandler(cache stores.StatsCache) AppHttpHandler {
	return &mainPageHandler{cache: cache}
}

// Handle processes GET / requests, serving the pre-rendered summary page.
func (h *mainPageHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	blob, err := h.cache.Get(r.Context(), cachepub.KeyMain)
	if err != nil {
		if errors.Is(err, stores.ErrCacheMiss) {
			metricCacheLookupsTotal.WithLabelValues(lookupMiss).Inc()
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, err = io.WriteString(w, mainPagePlaceholder)
			return err
		}
		return errInternalCacheReadFailed(err)
	}

	data, err := models.DecodeCacheValue(blob, models.CacheKindPage)
	if err != nil {
		return errInternalCacheDecodeFailed(err)
	}
	var page string
	if err := json.Unmarshal(data, &page); err != nil {
		return errInternalCacheDecodeFailed(err)
	}

	metricCacheLookupsTotal.WithLabelValues(lookupHit).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = io.WriteString(w, page)
	return err
}
