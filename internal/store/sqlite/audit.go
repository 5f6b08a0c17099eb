package sqlite

import (
	"context"
	"fmt"

	"seopro/internal/store"
)

func (c *Client) AuditSummary(ctx context.Context) (*store.AuditSummary, error) {
	query := `
	SELECT
		COUNT(*),
		COALESCE(SUM(CASE WHEN title = '' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN description = '' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN keywords = '' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN canonical_url = '' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN open_graph = '{}' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN json_ld = '{}' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN title = '' OR description = '' THEN 1 ELSE 0 END), 0)
	FROM seo_records
	`

	var s store.AuditSummary
	err := c.db.QueryRowContext(ctx, query).Scan(
		&s.Total,
		&s.MissingTitle,
		&s.MissingDescription,
		&s.MissingKeywords,
		&s.MissingCanonical,
		&s.MissingOpenGraph,
		&s.MissingJSONLD,
		&s.RecordsWithIssues,
	)
	if err != nil {
		return nil, fmt.Errorf("summarizing records: %w", err)
	}
	return &s, nil
}
