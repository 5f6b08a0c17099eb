package store

import "testing"

func TestPatchValidate(t *testing.T) {
	t.Run("valid patch", func(t *testing.T) {
		p := Patch{
			"title":         "Hello",
			"canonical_url": "https://x.test/",
			"open_graph":    map[string]string{"og:title": "Hello"},
			"json_ld":       map[string]any{"@type": "Article"},
		}
		if err := p.Validate(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("empty patch is valid", func(t *testing.T) {
		if err := (Patch{}).Validate(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("unknown column", func(t *testing.T) {
		if err := (Patch{"entity_type": "post"}).Validate(); err == nil {
			t.Fatal("expected error for non-patchable column")
		}
	})

	t.Run("wrong type for text column", func(t *testing.T) {
		if err := (Patch{"title": 7}).Validate(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("wrong type for json column", func(t *testing.T) {
		if err := (Patch{"open_graph": "not a map"}).Validate(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("json_ld accepts nested values", func(t *testing.T) {
		p := Patch{"json_ld": map[string]any{"author": map[string]any{"name": "a"}}}
		if err := p.Validate(); err != nil {
			t.Fatal(err)
		}
	})
}
