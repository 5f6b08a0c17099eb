package seo

import (
	"seopro/internal/meta"
	"seopro/internal/store"
)

// Hydrate fills ms from a stored record, then from the entity's
// provider methods for any field the record leaves empty. Fields set
// by neither are left unset so the configured defaults apply at render
// time.
func Hydrate(ms *meta.Store, rec *store.Record, entity Entity) {
	var title, desc, keywords, canonical string

	if rec != nil {
		title = rec.Title
		desc = rec.Description
		keywords = rec.Keywords
		canonical = rec.CanonicalURL
		if rec.Author != "" {
			ms.SetAuthor(rec.Author)
		}
		if rec.Robots != "" {
			ms.SetRobots(rec.Robots)
		}
		if len(rec.OpenGraph) > 0 {
			ms.MergeOpenGraph(rec.OpenGraph)
		}
		if len(rec.Twitter) > 0 {
			ms.MergeTwitter(rec.Twitter)
		}
		if len(rec.JSONLD) > 0 {
			ms.SetJSONLD(rec.JSONLD)
		}
		if len(rec.AdditionalMeta) > 0 {
			ms.SetAdditionalMeta(rec.AdditionalMeta)
		}
	}

	if entity != nil {
		if p, ok := entity.(TitleProvider); ok && title == "" {
			title = p.SeoTitle()
		}
		if p, ok := entity.(DescriptionProvider); ok && desc == "" {
			desc = p.SeoDescription()
		}
		if p, ok := entity.(KeywordsProvider); ok && keywords == "" {
			keywords = p.SeoKeywords()
		}
		if p, ok := entity.(URLProvider); ok && canonical == "" {
			canonical = p.SeoURL()
		}
	}

	if title != "" {
		ms.SetTitle(title)
	}
	if desc != "" {
		ms.SetDescription(desc)
	}
	if keywords != "" {
		ms.SetKeywords(keywords)
	}
	if canonical != "" {
		ms.SetCanonicalURL(canonical)
	}
}
