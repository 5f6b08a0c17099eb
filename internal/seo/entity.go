// Package seo wires configuration, metadata, persistence and rendering
// into one engine that application code drives.
package seo

import "seopro/internal/store"

// Entity is anything that owns SEO metadata. SeoKey returns the stable
// reference its record is stored under.
type Entity interface {
	SeoKey() store.EntityRef
}

// The optional provider interfaces let an entity supply fallback values
// that apply only when the stored record leaves a field empty.

type TitleProvider interface {
	SeoTitle() string
}

type DescriptionProvider interface {
	SeoDescription() string
}

type KeywordsProvider interface {
	SeoKeywords() string
}

type URLProvider interface {
	SeoURL() string
}
