package meta

import (
	"strings"
	"testing"
	"unicode/utf8"

	"seopro/internal/config"
)

func TestOptimizeTitle(t *testing.T) {
	cfg := config.Default()

	t.Run("collapses whitespace", func(t *testing.T) {
		s := NewStore(cfg)
		s.SetTitle("  Hello\t\tWorld  ")
		s.Optimize()
		if got := s.Title(); got != "Hello World" {
			t.Fatalf("expected collapsed title, got %q", got)
		}
	})

	t.Run("truncates long titles to exactly 60 runes", func(t *testing.T) {
		s := NewStore(cfg)
		s.SetTitle(strings.Repeat("a", 80))
		s.Optimize()
		got := s.Title()
		if utf8.RuneCountInString(got) != 60 {
			t.Fatalf("expected 60 runes, got %d (%q)", utf8.RuneCountInString(got), got)
		}
		if !strings.HasSuffix(got, "...") {
			t.Fatalf("expected ellipsis suffix, got %q", got)
		}
	})

	t.Run("leaves short titles alone", func(t *testing.T) {
		s := NewStore(cfg)
		s.SetTitle("Short title")
		s.Optimize()
		if got := s.Title(); got != "Short title" {
			t.Fatalf("expected unchanged title, got %q", got)
		}
	})

	t.Run("multibyte titles never split a rune", func(t *testing.T) {
		s := NewStore(cfg)
		s.SetTitle(strings.Repeat("ä", 80))
		s.Optimize()
		got := s.Title()
		if !utf8.ValidString(got) {
			t.Fatalf("expected valid utf8, got %q", got)
		}
		if utf8.RuneCountInString(got) != 60 {
			t.Fatalf("expected 60 runes, got %d", utf8.RuneCountInString(got))
		}
	})
}

func TestOptimizeDescription(t *testing.T) {
	s := NewStore(config.Default())
	s.SetDescription(strings.Repeat("b", 200))
	s.Optimize()
	got := s.Description()
	if utf8.RuneCountInString(got) != 160 {
		t.Fatalf("expected 160 runes, got %d", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestOptimizeKeywords(t *testing.T) {
	t.Run("dedupes preserving first-seen order", func(t *testing.T) {
		s := NewStore(config.Default())
		s.SetKeywords("go, web, go, seo,  web , tools")
		s.Optimize()
		if got := s.Keywords(); got != "go, web, seo, tools" {
			t.Fatalf("unexpected keywords: %q", got)
		}
	})

	t.Run("caps at ten tokens", func(t *testing.T) {
		s := NewStore(config.Default())
		s.SetKeywords("a,b,c,d,e,f,g,h,i,j,k,l")
		s.Optimize()
		if got := len(strings.Split(s.Keywords(), ", ")); got != 10 {
			t.Fatalf("expected 10 tokens, got %d", got)
		}
	})

	t.Run("dedupe is case-sensitive", func(t *testing.T) {
		s := NewStore(config.Default())
		s.SetKeywords("Go, go")
		s.Optimize()
		if got := s.Keywords(); got != "Go, go" {
			t.Fatalf("expected both cases kept, got %q", got)
		}
	})
}

func TestOptimizeBackfill(t *testing.T) {
	cfg := config.Default()

	t.Run("copies basics into open graph and twitter", func(t *testing.T) {
		s := NewStore(cfg)
		s.SetTitle("Page Title")
		s.SetDescription("Page description")
		s.SetCanonicalURL("https://x.test/page")
		s.Optimize()

		og := s.OpenGraph()
		if og["og:title"] != "Page Title" || og["og:description"] != "Page description" {
			t.Fatalf("expected backfilled og fields, got %v", og)
		}
		if og["og:url"] != "https://x.test/page" {
			t.Fatalf("expected og:url from canonical, got %q", og["og:url"])
		}
		if og["og:type"] != "website" {
			t.Fatalf("expected default og:type, got %q", og["og:type"])
		}

		tw := s.Twitter()
		if tw["twitter:title"] != "Page Title" || tw["twitter:description"] != "Page description" {
			t.Fatalf("expected backfilled twitter fields, got %v", tw)
		}
		if tw["twitter:card"] != "summary_large_image" {
			t.Fatalf("expected default twitter card, got %q", tw["twitter:card"])
		}
	})

	t.Run("does not overwrite explicit values", func(t *testing.T) {
		s := NewStore(cfg)
		s.SetTitle("Basic Title")
		s.SetOpenGraph("og:title", "Social Title")
		s.Optimize()
		if got := s.OpenGraph()["og:title"]; got != "Social Title" {
			t.Fatalf("expected explicit og:title kept, got %q", got)
		}
	})
}

func TestOptimizeIdempotent(t *testing.T) {
	s := NewStore(config.Default())
	long := strings.Repeat("a", 80)
	s.SetTitle(long)
	s.Optimize()
	first := s.Title()

	s.Optimize()
	if got := s.Title(); got != first {
		t.Fatalf("second optimize changed title: %q -> %q", first, got)
	}

	// A reset re-arms optimization.
	s.Reset()
	s.SetTitle(long)
	s.Optimize()
	if got := s.Title(); got != first {
		t.Fatalf("optimize after reset should truncate again, got %q", got)
	}
}
