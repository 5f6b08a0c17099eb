package store

import (
	"fmt"
	"time"
)

// EntityRef identifies the application object a record belongs to,
// for example {Type: "post", ID: "42"}.
type EntityRef struct {
	Type string `json:"entity_type"`
	ID   string `json:"entity_id"`
}

func (r EntityRef) String() string {
	return r.Type + ":" + r.ID
}

// Record is one persisted set of SEO metadata. String fields hold ""
// when unset; map fields are never nil on records read from a store.
type Record struct {
	ID             int64             `json:"id"`
	Entity         EntityRef         `json:"entity"`
	Title          string            `json:"title,omitempty"`
	Description    string            `json:"description,omitempty"`
	Keywords       string            `json:"keywords,omitempty"`
	Author         string            `json:"author,omitempty"`
	Robots         string            `json:"robots,omitempty"`
	CanonicalURL   string            `json:"canonical_url,omitempty"`
	OpenGraph      map[string]string `json:"open_graph,omitempty"`
	Twitter        map[string]string `json:"twitter,omitempty"`
	JSONLD         map[string]any    `json:"json_ld,omitempty"`
	AdditionalMeta map[string]string `json:"additional_meta,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Summary is the listing projection of a record.
type Summary struct {
	Entity       EntityRef `json:"entity"`
	Title        string    `json:"title,omitempty"`
	CanonicalURL string    `json:"canonical_url,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SitemapEntry is one record's contribution to the generated sitemap.
// Only records with a canonical URL contribute.
type SitemapEntry struct {
	URL     string
	LastMod time.Time
}

// AuditSummary aggregates metadata completeness over all records.
// RecordsWithIssues counts each record at most once, regardless of how
// many fields it is missing.
type AuditSummary struct {
	Total              int64 `json:"total"`
	MissingTitle       int64 `json:"missing_title"`
	MissingDescription int64 `json:"missing_description"`
	MissingKeywords    int64 `json:"missing_keywords"`
	MissingCanonical   int64 `json:"missing_canonical"`
	MissingOpenGraph   int64 `json:"missing_open_graph"`
	MissingJSONLD      int64 `json:"missing_json_ld"`
	RecordsWithIssues  int64 `json:"records_with_issues"`
}

// Patch maps column names to replacement values for Upsert. Text
// columns take strings; open_graph, twitter and additional_meta take
// map[string]string; json_ld takes map[string]any.
type Patch map[string]any

var textColumns = map[string]bool{
	"title":         true,
	"description":   true,
	"keywords":      true,
	"author":        true,
	"robots":        true,
	"canonical_url": true,
}

var jsonColumns = map[string]bool{
	"open_graph":      true,
	"twitter":         true,
	"json_ld":         true,
	"additional_meta": true,
}

// Validate rejects unknown columns and mistyped values before any SQL
// is built from the patch.
func (p Patch) Validate() error {
	for col, val := range p {
		switch {
		case textColumns[col]:
			if _, ok := val.(string); !ok {
				return fmt.Errorf("column %q wants a string, got %T", col, val)
			}
		case col == "json_ld":
			if _, ok := val.(map[string]any); !ok {
				return fmt.Errorf("column %q wants a map[string]any, got %T", col, val)
			}
		case jsonColumns[col]:
			switch val.(type) {
			case map[string]string, map[string]any:
			default:
				return fmt.Errorf("column %q wants a map, got %T", col, val)
			}
		default:
			return fmt.Errorf("unknown column %q", col)
		}
	}
	return nil
}
