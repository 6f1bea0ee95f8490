package db

import (
	"context"
	"fmt"
)

// migrations run in order on startup. Statements must stay idempotent; there
// is no down path and no version table for a schema this small.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id             SERIAL PRIMARY KEY,
		snowflake      TEXT   NOT NULL UNIQUE,
		balance_wallet BIGINT NOT NULL DEFAULT 0 CHECK (balance_wallet >= 0),
		balance_bank   BIGINT NOT NULL DEFAULT 0 CHECK (balance_bank >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_snowflake ON users (snowflake)`,
}

// Migrate applies the schema. Called once from main before the bot starts.
func (c *Connector) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
