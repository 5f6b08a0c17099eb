package meta

import (
	"fmt"
	"unicode/utf8"
)

// Score bands, closed intervals. An inner "optimal" band earns full
// points, the outer band a reduced amount, any other non-empty value a
// token amount.
const (
	titleOptimalMin = 30
	titleOptimalMax = 60
	titleOuterMin   = 20
	titleOuterMax   = 70
	descOptimalMin  = 120
	descOptimalMax  = 160
	descOuterMin    = 100
	descOuterMax    = 180
)

// Score computes a 0-100 completeness score from the explicitly set
// fields. Buckets are independent and sum to exactly 100 at maximum:
// title 20, description 20, keywords 10, Open Graph 20, Twitter 10,
// canonical 10, JSON-LD 10. Configured defaults do not count; the
// score reflects what has actually been set on the store.
func (s *Store) Score() int {
	score := 0

	score += bandScore(utf8.RuneCountInString(s.basic["title"]),
		titleOptimalMin, titleOptimalMax, titleOuterMin, titleOuterMax)
	score += bandScore(utf8.RuneCountInString(s.basic["description"]),
		descOptimalMin, descOptimalMax, descOuterMin, descOuterMax)

	if s.basic["keywords"] != "" {
		score += 10
	}

	for _, prop := range []string{"og:title", "og:description", "og:image", "og:type"} {
		if s.openGraph[prop] != "" {
			score += 5
		}
	}

	if s.twitter["twitter:card"] != "" {
		score += 5
	}
	if s.twitter["twitter:title"] != "" {
		score += 3
	}
	if s.twitter["twitter:description"] != "" {
		score += 2
	}

	if s.basic["canonical_url"] != "" {
		score += 10
	}
	if len(s.jsonLD) > 0 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func bandScore(length, optimalMin, optimalMax, outerMin, outerMax int) int {
	switch {
	case length == 0:
		return 0
	case length >= optimalMin && length <= optimalMax:
		return 20
	case length >= outerMin && length <= outerMax:
		return 15
	default:
		return 5
	}
}

// Recommendations returns one human-readable message per failing
// condition, in field priority order: title, description, canonical,
// Open Graph image, JSON-LD.
func (s *Store) Recommendations() []string {
	var recs []string

	switch length := utf8.RuneCountInString(s.basic["title"]); {
	case length == 0:
		recs = append(recs, "Add a page title")
	case length < titleOptimalMin:
		recs = append(recs, fmt.Sprintf("Make your title longer (%d-%d characters)", titleOptimalMin, titleOptimalMax))
	case length > titleOptimalMax:
		recs = append(recs, fmt.Sprintf("Shorten your title (%d-%d characters)", titleOptimalMin, titleOptimalMax))
	}

	switch length := utf8.RuneCountInString(s.basic["description"]); {
	case length == 0:
		recs = append(recs, "Add a meta description")
	case length < descOptimalMin:
		recs = append(recs, fmt.Sprintf("Make your description longer (%d-%d characters)", descOptimalMin, descOptimalMax))
	case length > descOptimalMax:
		recs = append(recs, fmt.Sprintf("Shorten your description (%d-%d characters)", descOptimalMin, descOptimalMax))
	}

	if s.basic["canonical_url"] == "" {
		recs = append(recs, "Add a canonical URL")
	}
	if s.openGraph["og:image"] == "" {
		recs = append(recs, "Add an Open Graph image")
	}
	if len(s.jsonLD) == 0 {
		recs = append(recs, "Add structured data (JSON-LD)")
	}

	return recs
}
