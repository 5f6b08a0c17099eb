// Package cache provides keyed string caching for rendered SEO
// artifacts, with in-memory and Redis backends.
package cache

import (
	"context"
	"time"
)

// Key identifies one cached artifact. Kind groups entries by artifact
// type (meta, sitemap, robots, score); ID distinguishes entries within
// a kind.
type Key struct {
	Kind string
	ID   string
}

const keyPrefix = "seo_pro_"

// String renders the backend key as "seo_pro_<kind>_<id>". An empty ID
// drops the trailing segment.
func (k Key) String() string {
	if k.ID == "" {
		return keyPrefix + k.Kind
	}
	return keyPrefix + k.Kind + "_" + k.ID
}

// Cache stores rendered artifacts for a bounded time. Get's second
// return distinguishes a miss from an empty value.
type Cache interface {
	Get(ctx context.Context, key Key) (string, bool, error)
	Set(ctx context.Context, key Key, value string, ttl time.Duration) error
	Forget(ctx context.Context, key Key) error
}
