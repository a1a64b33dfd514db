package http

import (
	"net/http"

	"github.com/CarbonROM/tribble-tracker/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type submitStatsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewSubmitStatsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &submitStatsHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /api/v1/stats requests.
func (h *submitStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := h.ingestionService.SubmitStats(r.Context(), r.Body); err != nil {
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
