package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"
)

// DeviceStateStore is the postgres-backed latest-state table. The upsert is
// a single conditional INSERT .. ON CONFLICT statement, so last-write-wins
// is decided inside the database without a read-then-write race.
type DeviceStateStore struct {
	db *DB
}

// NewDeviceStateStore creates a DeviceStateStore on the given pool.
func NewDeviceStateStore(db *DB) *DeviceStateStore {
	return &DeviceStateStore{db: db}
}

func (s *DeviceStateStore) UpsertLatest(ctx context.Context, event *models.Event) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO device_state (device_id, model, version, country, carrier, carrier_id, observed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (device_id) DO UPDATE SET
			model       = excluded.model,
			version     = excluded.version,
			country     = excluded.country,
			carrier     = excluded.carrier,
			carrier_id  = excluded.carrier_id,
			observed_at = excluded.observed_at
		WHERE excluded.observed_at >= device_state.observed_at`,
		event.DeviceID, event.Model, event.Version, event.Country,
		event.Carrier, event.CarrierID, event.ObservedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert device state: %w", err)
	}
	return nil
}

func (s *DeviceStateStore) ListSince(ctx context.Context, cutoff time.Time) ([]*models.DeviceState, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT device_id, model, version, country, carrier, carrier_id, observed_at
		FROM device_state
		WHERE observed_at >= $1`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list device states: %w", err)
	}
	defer rows.Close()

	var result []*models.DeviceState
	for rows.Next() {
		var state models.DeviceState
		if err := rows.Scan(
			&state.DeviceID, &state.Model, &state.Version, &state.Country,
			&state.Carrier, &state.CarrierID, &state.ObservedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan device state row: %w", err)
		}
		result = append(result, &state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("device state listing failed: %w", err)
	}
	return result, nil
}
