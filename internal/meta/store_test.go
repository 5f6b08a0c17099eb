package meta

import (
	"testing"

	"seopro/internal/config"
)

func TestStoreFields(t *testing.T) {
	cfg := config.Default()

	t.Run("title falls back to configured default", func(t *testing.T) {
		s := NewStore(cfg)
		if got := s.Title(); got != cfg.Defaults.Title {
			t.Fatalf("expected default title, got %q", got)
		}
		s.SetTitle("About Us")
		if got := s.Title(); got != "About Us" {
			t.Fatalf("expected set title, got %q", got)
		}
	})

	t.Run("reset discards content", func(t *testing.T) {
		s := NewStore(cfg)
		s.SetTitle("About Us")
		s.SetOpenGraph("og:image", "https://x.test/a.png")
		s.AddJSONLD(map[string]any{"@type": "Article"})
		s.Reset()
		if got := s.Title(); got != cfg.Defaults.Title {
			t.Fatalf("expected default title after reset, got %q", got)
		}
		if len(s.OpenGraph()) != 0 {
			t.Fatal("expected empty open graph after reset")
		}
		if len(s.JSONLD()) != 0 {
			t.Fatal("expected empty json-ld after reset")
		}
	})

	t.Run("canonical url has no default", func(t *testing.T) {
		s := NewStore(cfg)
		if got := s.CanonicalURL(); got != "" {
			t.Fatalf("expected empty canonical, got %q", got)
		}
	})

	t.Run("merge overwrites key-wise", func(t *testing.T) {
		s := NewStore(cfg)
		s.MergeOpenGraph(map[string]string{"og:title": "A", "og:type": "article"})
		s.MergeOpenGraph(map[string]string{"og:title": "B"})
		og := s.OpenGraph()
		if og["og:title"] != "B" {
			t.Fatalf("expected merged og:title B, got %q", og["og:title"])
		}
		if og["og:type"] != "article" {
			t.Fatalf("expected og:type preserved, got %q", og["og:type"])
		}
	})

	t.Run("field group accessors", func(t *testing.T) {
		s := NewStore(cfg)
		s.SetField(GroupTwitter, "twitter:site", "@site")
		if got := s.Field(GroupTwitter, "twitter:site"); got != "@site" {
			t.Fatalf("expected @site, got %q", got)
		}
		if got := s.Field(GroupBasic, "robots"); got != cfg.Defaults.Robots {
			t.Fatalf("expected robots default, got %q", got)
		}
	})
}

func TestJSONLD(t *testing.T) {
	cfg := config.Default()

	t.Run("add injects context once", func(t *testing.T) {
		s := NewStore(cfg)
		s.AddJSONLD(map[string]any{"@type": "Article", "headline": "Hello"})
		doc := s.JSONLD()
		if doc["@context"] != "https://schema.org" {
			t.Fatalf("expected schema.org context, got %v", doc["@context"])
		}

		s.AddJSONLD(map[string]any{"author": "Jo"})
		doc = s.JSONLD()
		if doc["@context"] != "https://schema.org" {
			t.Fatalf("expected context preserved, got %v", doc["@context"])
		}
		if doc["headline"] != "Hello" || doc["author"] != "Jo" {
			t.Fatalf("expected additive merge, got %v", doc)
		}
	})

	t.Run("add nothing leaves document empty", func(t *testing.T) {
		s := NewStore(cfg)
		s.AddJSONLD(nil)
		s.AddJSONLD(map[string]any{})
		if doc := s.JSONLD(); len(doc) != 0 {
			t.Fatalf("expected empty document, got %v", doc)
		}
	})

	t.Run("set replaces wholesale", func(t *testing.T) {
		s := NewStore(cfg)
		s.AddJSONLD(map[string]any{"headline": "Old"})
		s.SetJSONLD(map[string]any{"@type": "WebSite"})
		doc := s.JSONLD()
		if _, ok := doc["headline"]; ok {
			t.Fatal("expected headline discarded by SetJSONLD")
		}
	})
}

func TestBreadcrumbs(t *testing.T) {
	s := NewStore(config.Default())
	s.AddBreadcrumb("Home", "/", 0)
	s.AddBreadcrumb("Blog", "/blog", 0)
	s.AddBreadcrumb("Post", "", 7)

	crumbs := s.Breadcrumbs()
	if len(crumbs) != 3 {
		t.Fatalf("expected 3 crumbs, got %d", len(crumbs))
	}
	if crumbs[0].Position != 1 || crumbs[1].Position != 2 {
		t.Fatalf("expected auto positions 1,2, got %d,%d", crumbs[0].Position, crumbs[1].Position)
	}
	if crumbs[2].Position != 7 {
		t.Fatalf("expected explicit position kept, got %d", crumbs[2].Position)
	}
}
