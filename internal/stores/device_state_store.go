package stores

import (
	"context"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"
)

// DeviceStateStore holds the latest observed attribute set per device.
//
// UpsertLatest applies last-write-wins semantics as a single atomic
// operation: the incoming event replaces the stored row only if its
// ObservedAt is not older than the stored one. The >= comparison makes
// replaying the same event a no-op, so reconciliation converges no matter
// how often or in what order events are re-applied.
//
//go:generate mockgen -source=device_state_store.go -destination=./mocks/device_state_store_mock.go -package=mocks
type DeviceStateStore interface {
	UpsertLatest(ctx context.Context, event *models.Event) error
	// ListSince returns all device states observed at or after cutoff.
	ListSince(ctx context.Context, cutoff time.Time) ([]*models.DeviceState, error)
}
