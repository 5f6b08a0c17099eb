package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	// Idempotent via IF NOT EXISTS; revisit with a migration tool once
	// the schema needs destructive changes.
	ddl := `
CREATE TABLE IF NOT EXISTS seo_records (
    id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    entity_type     TEXT NOT NULL,
    entity_id       TEXT NOT NULL,
    title           TEXT NOT NULL DEFAULT '',
    description     TEXT NOT NULL DEFAULT '',
    keywords        TEXT NOT NULL DEFAULT '',
    author          TEXT NOT NULL DEFAULT '',
    robots          TEXT NOT NULL DEFAULT '',
    canonical_url   TEXT NOT NULL DEFAULT '',
    open_graph      JSONB NOT NULL DEFAULT '{}',
    twitter         JSONB NOT NULL DEFAULT '{}',
    json_ld         JSONB NOT NULL DEFAULT '{}',
    additional_meta JSONB NOT NULL DEFAULT '{}',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT uq_seo_record_entity UNIQUE (entity_type, entity_id)
);

CREATE INDEX IF NOT EXISTS idx_seo_records_type ON seo_records (entity_type);
CREATE INDEX IF NOT EXISTS idx_seo_records_canonical ON seo_records (canonical_url) WHERE canonical_url <> '';
`
	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
