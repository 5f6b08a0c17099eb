package sqlite

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS seo_records (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		entity_type     TEXT NOT NULL,
		entity_id       TEXT NOT NULL,
		title           TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		keywords        TEXT NOT NULL DEFAULT '',
		author          TEXT NOT NULL DEFAULT '',
		robots          TEXT NOT NULL DEFAULT '',
		canonical_url   TEXT NOT NULL DEFAULT '',
		open_graph      TEXT NOT NULL DEFAULT '{}',
		twitter         TEXT NOT NULL DEFAULT '{}',
		json_ld         TEXT NOT NULL DEFAULT '{}',
		additional_meta TEXT NOT NULL DEFAULT '{}',
		created_at      TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at      TEXT NOT NULL DEFAULT (datetime('now')),
		CONSTRAINT uq_seo_record_entity UNIQUE (entity_type, entity_id)
	);

	CREATE INDEX IF NOT EXISTS idx_seo_records_type ON seo_records (entity_type);
	CREATE INDEX IF NOT EXISTS idx_seo_records_canonical ON seo_records (canonical_url) WHERE canonical_url <> '';
	`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
