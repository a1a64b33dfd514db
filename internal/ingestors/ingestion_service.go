package ingestors

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/shared/loggers"
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
	"github.com/CarbonROM/tribble-tracker/internal/shared/validators"
	"github.com/CarbonROM/tribble-tracker/internal/stores"
)

const maxSubmissionBytes = 16 * 1024

// StatsSubmission is the inbound JSON payload devices post. Field names
// follow the wire format existing client builds already send.
type StatsSubmission struct {
	DeviceID  string `json:"device_hash" validate:"required"`
	Model     string `json:"device_name" validate:"required"`
	Version   string `json:"device_version" validate:"required"`
	Country   string `json:"device_country" validate:"required"`
	Carrier   string `json:"device_carrier" validate:"required"`
	CarrierID string `json:"device_carrier_id" validate:"required"`
}

// IngestionService accepts one telemetry submission: append to the event
// log, then reconcile the device's latest state inline. No dedup at this
// boundary; every valid submission becomes an event.
//
//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	SubmitStats(ctx context.Context, r io.Reader) error
}

type ingestionService struct {
	eventStore stores.EventStore
	stateStore stores.DeviceStateStore
	validate   *validators.Validate
}

func NewIngestionService(eventStore stores.EventStore, stateStore stores.DeviceStateStore) IngestionService {
	return &ingestionService{
		eventStore: eventStore,
		stateStore: stateStore,
		validate:   validators.New(),
	}
}

func (s *ingestionService) SubmitStats(ctx context.Context, r io.Reader) error {
	submission, err := s.decodeSubmission(r)
	if err != nil {
		if svcErr, ok := svcErrorOf(err); ok {
			metricStatsIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return err
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldDeviceID, submission.DeviceID).Msg("ingesting stats submission")

	event := &models.Event{
		DeviceID:   submission.DeviceID,
		Model:      submission.Model,
		Version:    submission.Version,
		Country:    submission.Country,
		Carrier:    submission.Carrier,
		CarrierID:  submission.CarrierID,
		ObservedAt: time.Now().UTC(),
	}

	if err := s.eventStore.Append(ctx, event); err != nil {
		svcErr := errInternalEventStoreFailed(err)
		metricStatsIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	// Inline reconciliation: the latest-state row is current as soon as
	// the ingest request returns. ObservedAt comparison inside the store
	// keeps concurrent submissions for the same device consistent.
	if err := s.stateStore.UpsertLatest(ctx, event); err != nil {
		svcErr := errInternalStateStoreFailed(err)
		metricStatsIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	metricStatsIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}

func (s *ingestionService) decodeSubmission(r io.Reader) (*StatsSubmission, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	var submission StatsSubmission
	decoder := json.NewDecoder(io.LimitReader(r, maxSubmissionBytes))
	if err := decoder.Decode(&submission); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}

	submission.DeviceID = strings.TrimSpace(submission.DeviceID)
	submission.Model = strings.TrimSpace(submission.Model)
	submission.Version = strings.TrimSpace(submission.Version)
	submission.Country = strings.TrimSpace(submission.Country)
	submission.Carrier = strings.TrimSpace(submission.Carrier)
	submission.CarrierID = strings.TrimSpace(submission.CarrierID)

	if err := s.validate.Struct(&submission); err != nil {
		if ve, ok := err.(validators.ValidationErrors); ok && len(ve) > 0 {
			return nil, errValidationFailed("missing required field: "+ve[0].Field(), err)
		}
		return nil, errValidationFailed("invalid submission", err)
	}
	return &submission, nil
}
