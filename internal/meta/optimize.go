package meta

import (
	"strings"
)

const (
	maxTitleRunes       = 60
	titleTruncateRunes  = 57
	maxDescRunes        = 160
	descTruncateRunes   = 157
	maxKeywordTokens    = 10
	truncationEllipsis  = "..."
	fallbackOGType      = "website"
	fallbackTwitterCard = "summary_large_image"
)

// Optimize normalizes the store in place: whitespace cleanup and
// truncation for title and description, keyword de-duplication, and
// Open Graph / Twitter back-fill from the basic fields. Calling it a
// second time without a Reset is a no-op.
func (s *Store) Optimize() {
	if s.optimized {
		return
	}
	s.optimized = true

	if title, ok := s.basic["title"]; ok {
		s.basic["title"] = truncate(collapseWhitespace(title), maxTitleRunes, titleTruncateRunes)
	}
	if desc, ok := s.basic["description"]; ok {
		s.basic["description"] = truncate(collapseWhitespace(desc), maxDescRunes, descTruncateRunes)
	}
	if keywords, ok := s.basic["keywords"]; ok {
		s.basic["keywords"] = normalizeKeywords(keywords)
	}

	s.backfill()
}

func (s *Store) backfill() {
	title := s.Title()
	desc := s.Description()

	if s.openGraph["og:title"] == "" && title != "" {
		s.openGraph["og:title"] = title
	}
	if s.openGraph["og:description"] == "" && desc != "" {
		s.openGraph["og:description"] = desc
	}
	if s.twitter["twitter:title"] == "" && title != "" {
		s.twitter["twitter:title"] = title
	}
	if s.twitter["twitter:description"] == "" && desc != "" {
		s.twitter["twitter:description"] = desc
	}
	if s.openGraph["og:url"] == "" && s.CanonicalURL() != "" {
		s.openGraph["og:url"] = s.CanonicalURL()
	}
	if s.openGraph["og:type"] == "" {
		ogType := s.cfg.OpenGraph.Type
		if ogType == "" {
			ogType = fallbackOGType
		}
		s.openGraph["og:type"] = ogType
	}
	if s.twitter["twitter:card"] == "" {
		card := s.cfg.Twitter.Card
		if card == "" {
			card = fallbackTwitterCard
		}
		s.twitter["twitter:card"] = card
	}
}

// collapseWhitespace trims the string and collapses internal
// whitespace runs to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts the string to keep runes and appends an ellipsis when
// it exceeds max runes.
func truncate(s string, max, keep int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:keep]) + truncationEllipsis
}

// normalizeKeywords splits on commas, trims each token, drops
// duplicates preserving first-seen order, and caps the list.
func normalizeKeywords(keywords string) string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, token := range strings.Split(keywords, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
		if len(tokens) == maxKeywordTokens {
			break
		}
	}
	return strings.Join(tokens, ", ")
}
