package seo

import (
	"testing"

	"seopro/internal/config"
	"seopro/internal/meta"
	"seopro/internal/store"
)

type fakePost struct {
	ref   store.EntityRef
	title string
	desc  string
	url   string
}

func (p fakePost) SeoKey() store.EntityRef { return p.ref }
func (p fakePost) SeoTitle() string        { return p.title }
func (p fakePost) SeoDescription() string  { return p.desc }
func (p fakePost) SeoURL() string          { return p.url }

func TestHydrate(t *testing.T) {
	cfg := config.Default()

	t.Run("record values win over entity providers", func(t *testing.T) {
		ms := meta.NewStore(cfg)
		rec := &store.Record{Title: "Stored Title", CanonicalURL: "https://x.test/stored"}
		Hydrate(ms, rec, fakePost{title: "Entity Title", url: "https://x.test/entity"})

		if got := ms.Title(); got != "Stored Title" {
			t.Errorf("title = %q", got)
		}
		if got := ms.CanonicalURL(); got != "https://x.test/stored" {
			t.Errorf("canonical = %q", got)
		}
	})

	t.Run("entity providers fill record gaps", func(t *testing.T) {
		ms := meta.NewStore(cfg)
		rec := &store.Record{Title: "Stored Title"}
		Hydrate(ms, rec, fakePost{title: "Entity Title", desc: "Entity description"})

		if got := ms.Title(); got != "Stored Title" {
			t.Errorf("title = %q", got)
		}
		if got := ms.Description(); got != "Entity description" {
			t.Errorf("description = %q", got)
		}
	})

	t.Run("unset fields fall through to config defaults", func(t *testing.T) {
		ms := meta.NewStore(cfg)
		Hydrate(ms, &store.Record{}, fakePost{})

		if got := ms.Title(); got != cfg.Defaults.Title {
			t.Errorf("title = %q", got)
		}
		if got := ms.CanonicalURL(); got != "" {
			t.Errorf("canonical = %q, want unset", got)
		}
	})

	t.Run("nil record uses only entity providers", func(t *testing.T) {
		ms := meta.NewStore(cfg)
		Hydrate(ms, nil, fakePost{title: "Entity Title"})

		if got := ms.Title(); got != "Entity Title" {
			t.Errorf("title = %q", got)
		}
	})

	t.Run("record maps merge into groups", func(t *testing.T) {
		ms := meta.NewStore(cfg)
		rec := &store.Record{
			OpenGraph:      map[string]string{"og:image": "https://x.test/a.png"},
			Twitter:        map[string]string{"twitter:site": "@x"},
			JSONLD:         map[string]any{"@type": "Article"},
			AdditionalMeta: map[string]string{"theme-color": "#fff"},
		}
		Hydrate(ms, rec, nil)

		if ms.OpenGraph()["og:image"] != "https://x.test/a.png" {
			t.Error("open graph not merged")
		}
		if ms.Twitter()["twitter:site"] != "@x" {
			t.Error("twitter not merged")
		}
		if ms.JSONLD()["@type"] != "Article" {
			t.Error("json-ld not set")
		}
		if ms.AdditionalMeta()["theme-color"] != "#fff" {
			t.Error("additional meta not set")
		}
	})
}
