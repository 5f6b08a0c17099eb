// Package robots renders robots.txt bodies from an ordered rule set.
package robots

import (
	"fmt"
	"strings"
)

// RuleSet describes one robots.txt document. List order is emission
// order; no deduplication or sorting is applied.
type RuleSet struct {
	UserAgent  string
	Disallow   []string
	Allow      []string
	SitemapURL string
}

// Render produces the robots.txt body: the user-agent line, one
// Disallow line per entry, one Allow line per entry, then a blank line
// and the sitemap reference when configured.
func Render(rs RuleSet) string {
	agent := rs.UserAgent
	if agent == "" {
		agent = "*"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User-agent: %s\n", agent)
	for _, path := range rs.Disallow {
		fmt.Fprintf(&b, "Disallow: %s\n", path)
	}
	for _, path := range rs.Allow {
		fmt.Fprintf(&b, "Allow: %s\n", path)
	}
	if rs.SitemapURL != "" {
		fmt.Fprintf(&b, "\nSitemap: %s\n", rs.SitemapURL)
	}
	return b.String()
}
