package robots

import "testing"

func TestRender(t *testing.T) {
	t.Run("full rule set", func(t *testing.T) {
		got := Render(RuleSet{
			UserAgent:  "*",
			Disallow:   []string{"/admin", "/api"},
			Allow:      []string{"/"},
			SitemapURL: "https://x.test/sitemap.xml",
		})
		want := "User-agent: *\nDisallow: /admin\nDisallow: /api\nAllow: /\n\nSitemap: https://x.test/sitemap.xml\n"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("empty user agent defaults to wildcard", func(t *testing.T) {
		got := Render(RuleSet{})
		if got != "User-agent: *\n" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("no sitemap omits trailing block", func(t *testing.T) {
		got := Render(RuleSet{UserAgent: "googlebot", Disallow: []string{"/private"}})
		want := "User-agent: googlebot\nDisallow: /private\n"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		got := Render(RuleSet{
			UserAgent: "*",
			Disallow:  []string{"/b", "/a"},
			Allow:     []string{"/z", "/y"},
		})
		want := "User-agent: *\nDisallow: /b\nDisallow: /a\nAllow: /z\nAllow: /y\n"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})
}
