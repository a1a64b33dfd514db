package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"

	"github.com/jackc/pgx/v5"
)

// EventStore is the postgres-backed append-only event log.
type EventStore struct {
	db *DB
}

// NewEventStore creates an EventStore on the given pool.
func NewEventStore(db *DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) Append(ctx context.Context, event *models.Event) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO events (device_id, model, version, country, carrier, carrier_id, observed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.DeviceID, event.Model, event.Version, event.Country,
		event.Carrier, event.CarrierID, event.ObservedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

func (s *EventStore) Scan(ctx context.Context, fn func(*models.Event) error) error {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT device_id, model, version, country, carrier, carrier_id, observed_at
		FROM events`)
	if err != nil {
		return fmt.Errorf("failed to scan events: %w", err)
	}
	return s.forEach(rows, fn)
}

// ScanRange streams events with observed_at in [from, to).
func (s *EventStore) ScanRange(ctx context.Context, from, to time.Time, fn func(*models.Event) error) error {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT device_id, model, version, country, carrier, carrier_id, observed_at
		FROM events
		WHERE observed_at >= $1 AND observed_at < $2`,
		from, to,
	)
	if err != nil {
		return fmt.Errorf("failed to scan event range: %w", err)
	}
	return s.forEach(rows, fn)
}

// forEach drains rows one at a time. pgx streams the result set from the
// server, so scans never hold the full table in memory.
func (s *EventStore) forEach(rows pgx.Rows, fn func(*models.Event) error) error {
	defer rows.Close()
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.DeviceID, &event.Model, &event.Version, &event.Country,
			&event.Carrier, &event.CarrierID, &event.ObservedAt,
		); err != nil {
			return fmt.Errorf("failed to scan event row: %w", err)
		}
		if err := fn(&event); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("event scan failed: %w", err)
	}
	return nil
}
