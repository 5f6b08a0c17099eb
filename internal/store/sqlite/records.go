package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"seopro/internal/store"
)

const recordColumns = `id, entity_type, entity_id, title, description, keywords, author, robots, canonical_url, open_graph, twitter, json_ld, additional_meta, created_at, updated_at`

const timeLayout = "2006-01-02 15:04:05"

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
	VALUES (?, ?)
	ON CONFLICT (entity_type, entity_id) DO NOTHING
	`
	if _, err := c.db.ExecContext(ctx, query, ref.Type, ref.ID); err != nil {
		return nil, false, fmt.Errorf("creating seo record: %w", err)
	}

	rec, err = c.Get(ctx, ref)
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

func (c *Client) Get(ctx context.Context, ref store.EntityRef) (*store.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM seo_records WHERE entity_type = ? AND entity_id = ?`

	rec, err := scanRecord(c.db.QueryRowContext(ctx, query, ref.Type, ref.ID))
	if errors.Is(err, sql.ErrNoRows) {
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
	placeholders := []string{"?", "?"}
	args := []any{ref.Type, ref.ID}
	var sets []string
	for _, col := range cols {
		val, err := bindValue(col, patch[col])
		if err != nil {
			return nil, err
		}
		insertCols = append(insertCols, col)
		placeholders = append(placeholders, "?")
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", col, col))
	}
	sets = append(sets, "updated_at = datetime('now')")

	query := fmt.Sprintf(`
	INSERT INTO seo_records (%s)
	VALUES (%s)
	ON CONFLICT (entity_type, entity_id) DO UPDATE SET %s
	`,
		strings.Join(insertCols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(sets, ", "),
	)

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("upserting seo record: %w", err)
	}
	return c.Get(ctx, ref)
}

func (c *Client) Delete(ctx context.Context, ref store.EntityRef) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM seo_records WHERE entity_type = ? AND entity_id = ?`, ref.Type, ref.ID)
	if err != nil {
		return fmt.Errorf("deleting seo record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting seo record: %w", err)
	}
	if n == 0 {
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
	WHERE (? = '' OR entity_type = ?)
	ORDER BY entity_type, entity_id
	LIMIT ? OFFSET ?
	`
	rows, err := c.db.QueryContext(ctx, query, entityType, entityType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing seo records: %w", err)
	}
	defer rows.Close()

	var out []store.Summary
	for rows.Next() {
		var (
			s         store.Summary
			updatedAt string
		)
		if err := rows.Scan(&s.Entity.Type, &s.Entity.ID, &s.Title, &s.CanonicalURL, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		s.UpdatedAt = parseTime(updatedAt)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (c *Client) ListSitemapEntries(ctx context.Context) ([]store.SitemapEntry, error) {
	query := `
	SELECT canonical_url, updated_at
	FROM seo_records
	WHERE canonical_url <> ''
	ORDER BY canonical_url
	`
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sitemap entries: %w", err)
	}
	defer rows.Close()

	var out []store.SitemapEntry
	for rows.Next() {
		var (
			e       store.SitemapEntry
			lastMod string
		)
		if err := rows.Scan(&e.URL, &lastMod); err != nil {
			return nil, fmt.Errorf("scanning sitemap entry: %w", err)
		}
		e.LastMod = parseTime(lastMod)
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
		return string(raw), nil
	}
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func scanRecord(row *sql.Row) (*store.Record, error) {
	var (
		rec                             store.Record
		ogRaw, twRaw, jsonLDRaw, addRaw string
		createdAt, updatedAt            string
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
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(ogRaw), &rec.OpenGraph); err != nil {
		return nil, fmt.Errorf("unmarshaling open_graph: %w", err)
	}
	if err := json.Unmarshal([]byte(twRaw), &rec.Twitter); err != nil {
		return nil, fmt.Errorf("unmarshaling twitter: %w", err)
	}
	if err := json.Unmarshal([]byte(jsonLDRaw), &rec.JSONLD); err != nil {
		return nil, fmt.Errorf("unmarshaling json_ld: %w", err)
	}
	if err := json.Unmarshal([]byte(addRaw), &rec.AdditionalMeta); err != nil {
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
	rec.CreatedAt = parseTime(createdAt)
	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}
