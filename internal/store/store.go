// Package store defines the persistence contract for SEO records and
// the shared row types its backends return.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup names an entity with no record.
var ErrNotFound = errors.New("seo record not found")

type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// GetOrCreate returns the record for ref, inserting an empty one
	// when none exists. The bool reports whether a row was created.
	GetOrCreate(ctx context.Context, ref EntityRef) (*Record, bool, error)
	Get(ctx context.Context, ref EntityRef) (*Record, error)
	Upsert(ctx context.Context, ref EntityRef, patch Patch) (*Record, error)
	Delete(ctx context.Context, ref EntityRef) error

	// List returns summaries ordered by entity type then id. An empty
	// entityType matches all types; limit <= 0 means no limit.
	List(ctx context.Context, entityType string, limit, offset int) ([]Summary, error)
	ListSitemapEntries(ctx context.Context) ([]SitemapEntry, error)
	AuditSummary(ctx context.Context) (*AuditSummary, error)
}
