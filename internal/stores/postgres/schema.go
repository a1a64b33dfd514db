package postgres

import (
	"context"
	"fmt"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS events (
    id          BIGSERIAL PRIMARY KEY,
    device_id   TEXT        NOT NULL,
    model       TEXT        NOT NULL,
    version     TEXT        NOT NULL,
    country     TEXT        NOT NULL,
    carrier     TEXT        NOT NULL,
    carrier_id  TEXT        NOT NULL,
    observed_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS events_observed_at_idx ON events (observed_at);

CREATE TABLE IF NOT EXISTS device_state (
    device_id   TEXT        PRIMARY KEY,
    model       TEXT        NOT NULL,
    version     TEXT        NOT NULL,
    country     TEXT        NOT NULL,
    carrier     TEXT        NOT NULL,
    carrier_id  TEXT        NOT NULL,
    observed_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS device_state_observed_at_idx ON device_state (observed_at);
`

// EnsureSchema creates the events and device_state tables if missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
