package export

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/shared/loggers"
	"github.com/CarbonROM/tribble-tracker/internal/stores"

	"github.com/google/uuid"
)

const progressInterval = 10000

// exportRecord is one pseudonymized event in the dump output. Short keys
// match the format downstream consumers of earlier dumps expect.
type exportRecord struct {
	DeviceID string `json:"d"`
	Time     string `json:"t"`
	Model    string `json:"m"`
	Version  string `json:"v"`
	Country  string `json:"u"`
}

// Exporter writes bulk dumps of raw events with device IDs replaced by a
// salted one-way hash. The salt is generated per run and never persisted,
// so device IDs from different dumps cannot be correlated.
type Exporter struct {
	eventStore stores.EventStore
}

// NewExporter creates an Exporter over the given event store.
func NewExporter(eventStore stores.EventStore) *Exporter {
	return &Exporter{eventStore: eventStore}
}

// Dump streams events with ObservedAt in [from, to) to w as a JSON array.
// Returns the number of exported records.
func (e *Exporter) Dump(ctx context.Context, from, to time.Time, w io.Writer) (int64, error) {
	salt, err := newSalt()
	if err != nil {
		return 0, fmt.Errorf("failed to generate export salt: %w", err)
	}

	exportID := uuid.NewString()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldExportID, exportID).Logger()
	logger.Info().
		Time("from", from).
		Time("to", to).
		Msg("starting event export")

	if _, err := io.WriteString(w, "[\n"); err != nil {
		return 0, err
	}

	var count int64
	err = e.eventStore.ScanRange(ctx, from, to, func(event *models.Event) error {
		record := exportRecord{
			DeviceID: pseudonymize(salt, event.DeviceID),
			Time:     event.ObservedAt.UTC().Format("20060102 1504"),
			Model:    event.Model,
			Version:  event.Version,
			Country:  event.Country,
		}
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal export record: %w", err)
		}
		if count > 0 {
			if _, err := io.WriteString(w, ",\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
		count++
		if count%progressInterval == 0 {
			logger.Info().Int64("records", count).Msg("export progress")
		}
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("event export failed: %w", err)
	}

	if _, err := io.WriteString(w, "\n]\n"); err != nil {
		return count, err
	}

	logger.Info().Int64("records", count).Msg("export completed")
	return count, nil
}

// pseudonymize maps a device ID to an uppercase hex salted hash.
func pseudonymize(salt, deviceID string) string {
	sum := sha256.Sum256([]byte(salt + deviceID))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func newSalt() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
