package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS session_snapshots (
		session_id UUID        NOT NULL,
		kind       TEXT        NOT NULL,
		payload    JSONB       NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (session_id, kind)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_session_snapshots_updated_at ON session_snapshots (updated_at)`,
}

// Migrate creates the tables the portal owns. Statements are idempotent.
func (d *Database) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.sqlx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
