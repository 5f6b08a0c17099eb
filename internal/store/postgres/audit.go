package postgres

import (
	"context"
	"fmt"

	"seopro/internal/store"
)

func (c *Client) AuditSummary(ctx context.Context) (*store.AuditSummary, error) {
	query := `
SELECT
    count(*),
    count(*) FILTER (WHERE title = ''),
    count(*) FILTER (WHERE description = ''),
    count(*) FILTER (WHERE keywords = ''),
    count(*) FILTER (WHERE canonical_url = ''),
    count(*) FILTER (WHERE open_graph = '{}'::jsonb),
    count(*) FILTER (WHERE json_ld = '{}'::jsonb),
    count(*) FILTER (WHERE title = '' OR description = '')
FROM seo_records`

	var s store.AuditSummary
	err := c.pool.QueryRow(ctx, query).Scan(
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
