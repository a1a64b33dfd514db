package stores

import (
	"context"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"
)

// EventStore is the append-only log of raw telemetry submissions. There is
// no deduplication and no uniqueness constraint on device ID: every accepted
// submission becomes one stored event.
//
// Scan and ScanRange stream rows to the callback one at a time so callers
// can walk datasets larger than memory; implementations must not buffer the
// full result set. Returning an error from the callback stops the scan.
//
//go:generate mockgen -source=event_store.go -destination=./mocks/event_store_mock.go -package=mocks
type EventStore interface {
	Append(ctx context.Context, event *models.Event) error
	Scan(ctx context.Context, fn func(*models.Event) error) error
	ScanRange(ctx context.Context, from, to time.Time, fn func(*models.Event) error) error
}
