package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"seopro/internal/store"
)

const recordColumns = `id, entity_type, entity_id, title, description, keywords, author, robots, canonical_url, open_graph, twitter, json_ld, additional_meta, created_at, updated_at`

func (c *Client) GetOrCreate(ctx context.Context, ref store.EntityRef) (*store.Record, bool, error) {
	rec, err := c.Get(ctx, ref)
	if err == nil {
		return rec, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	query := `
INSERT INTO seo_records (entity_type, entity_id)
VALUES ($1, $2)
ON CONFLICT (entity_type, entity_id) DO UPDATE SET entity_type = EXCLUDED.entity_type
RETURNING ` + recordColumns

	rec, err = scanRecord(c.pool.QueryRow(ctx, query, ref.Type, ref.ID))
	if err != nil {
		return nil, false, fmt.Errorf("creating seo record: %w", err)
	}
	return rec, true, nil
}

func (c *Client) Get(ctx context.Context, ref store.EntityRef) (*store.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM seo_records WHERE entity_type = $1 AND entity_id = $2`

	rec, err := scanRecord(c.pool.QueryRow(ctx, query, ref.Type, ref.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting seo record: %w", err)
	}
	return rec, nil
}

func (c *Client) Upsert(ctx context.Context, ref store.EntityRef, patch store.Patch) (*store.Record, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("validating patch: %w", err)
	}

	cols := make([]string, 0, len(patch))
	for col := range patch {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	insertCols := []string{"entity_type", "entity_id"}
	placeholders := []string{"$1", "$2"}
	args := []any{ref.Type, ref.ID}
	var sets []string
	for i, col := range cols {
		val, err := bindValue(col, patch[col])
		if err != nil {
			return nil, err
		}
		insertCols = append(insertCols, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+3))
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf(`
INSERT INTO seo_records (%s)
VALUES (%s)
ON CONFLICT (entity_type, entity_id) DO UPDATE SET %s
RETURNING %s`,
		strings.Join(insertCols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(sets, ", "),
		recordColumns,
	)

	rec, err := scanRecord(c.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("upserting seo record: %w", err)
	}
	return rec, nil
}

func (c *Client) Delete(ctx context.Context, ref store.EntityRef) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM seo_records WHERE entity_type = $1 AND entity_id = $2`, ref.Type, ref.ID)
	if err != nil {
		return fmt.Errorf("deleting seo record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (c *Client) List(ctx context.Context, entityType string, limit, offset int) ([]store.Summary, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
SELECT entity_type, entity_id, title, canonical_url, updated_at
FROM seo_records
WHERE ($1 = '' OR entity_type = $1)
ORDER BY entity_type, entity_id
LIMIT NULLIF($2, -1) OFFSET $3`

	rows, err := c.pool.Query(ctx, query, entityType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing seo records: %w", err)
	}
	defer rows.Close()

	var out []store.Summary
	for rows.Next() {
		var s store.Summary
		if err := rows.Scan(&s.Entity.Type, &s.Entity.ID, &s.Title, &s.CanonicalURL, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (c *Client) ListSitemapEntries(ctx context.Context) ([]store.SitemapEntry, error) {
	query := `
SELECT canonical_url, updated_at
FROM seo_records
WHERE canonical_url <> ''
ORDER BY canonical_url`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sitemap entries: %w", err)
	}
	defer rows.Close()

	var out []store.SitemapEntry
	for rows.Next() {
		var e store.SitemapEntry
		if err := rows.Scan(&e.URL, &e.LastMod); err != nil {
			return nil, fmt.Errorf("scanning sitemap entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func bindValue(col string, val any) (any, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", col, err)
		}
		return raw, nil
	}
}

func scanRecord(row pgx.Row) (*store.Record, error) {
	var (
		rec                             store.Record
		ogRaw, twRaw, jsonLDRaw, addRaw []byte
	)
	err := row.Scan(
		&rec.ID,
		&rec.Entity.Type,
		&rec.Entity.ID,
		&rec.Title,
		&rec.Description,
		&rec.Keywords,
		&rec.Author,
		&rec.Robots,
		&rec.CanonicalURL,
		&ogRaw,
		&twRaw,
		&jsonLDRaw,
		&addRaw,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(ogRaw, &rec.OpenGraph); err != nil {
		return nil, fmt.Errorf("unmarshaling open_graph: %w", err)
	}
	if err := json.Unmarshal(twRaw, &rec.Twitter); err != nil {
		return nil, fmt.Errorf("unmarshaling twitter: %w", err)
	}
	if err := json.Unmarshal(jsonLDRaw, &rec.JSONLD); err != nil {
		return nil, fmt.Errorf("unmarshaling json_ld: %w", err)
	}
	if err := json.Unmarshal(addRaw, &rec.AdditionalMeta); err != nil {
		return nil, fmt.Errorf("unmarshaling additional_meta: %w", err)
	}
	if rec.OpenGraph == nil {
		rec.OpenGraph = map[string]string{}
	}
	if rec.Twitter == nil {
		rec.Twitter = map[string]string{}
	}
	if rec.JSONLD == nil {
		rec.JSONLD = map[string]any{}
	}
	if rec.AdditionalMeta == nil {
		rec.AdditionalMeta = map[string]string{}
	}
	return &rec, nil
}
