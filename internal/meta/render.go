package meta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
)

// Rendering is read-only: every fallback-to-default resolution happens
// here without writing back into the store, and no renderer ever fails
// for a well-formed store. Missing optional fields degrade to omitted
// tags.

// RenderMetaTags emits the basic meta-tag block: title, description,
// keywords, author, robots, viewport, canonical link, and additional
// meta pairs. Tags whose resolved content is empty are omitted, and
// additional pairs with an empty name or content are never emitted.
func (s *Store) RenderMetaTags() string {
	if !s.cfg.Features.MetaTags {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(s.Title()))
	writeMeta(&b, "description", s.Description())
	writeMeta(&b, "keywords", s.Keywords())
	writeMeta(&b, "author", s.Author())
	writeMeta(&b, "robots", s.Robots())
	writeMeta(&b, "viewport", s.Viewport())

	if canonical := s.CanonicalURL(); canonical != "" {
		fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\">\n", html.EscapeString(canonical))
	}

	for _, name := range sortedKeys(s.additional) {
		writeMeta(&b, name, s.additional[name])
	}

	return b.String()
}

// RenderOpenGraphTags emits the Open Graph block. The image tags are
// emitted only as a group, and only when og:image is set; width and
// height then fall back to the configured defaults.
func (s *Store) RenderOpenGraphTags() string {
	if !s.cfg.Features.OpenGraph {
		return ""
	}

	var b strings.Builder
	writeProperty(&b, "og:title", s.ogValue("og:title", s.Title()))
	writeProperty(&b, "og:description", s.ogValue("og:description", s.Description()))
	writeProperty(&b, "og:type", s.ogValue("og:type", s.cfg.OpenGraph.Type))
	writeProperty(&b, "og:url", s.ogValue("og:url", s.CanonicalURL()))
	writeProperty(&b, "og:site_name", s.ogValue("og:site_name", s.cfg.OpenGraph.SiteName))
	writeProperty(&b, "og:locale", s.ogValue("og:locale", s.cfg.OpenGraph.Locale))

	if image := s.openGraph["og:image"]; image != "" {
		writeProperty(&b, "og:image", image)
		writeProperty(&b, "og:image:width",
			s.ogValue("og:image:width", strconv.Itoa(s.cfg.OpenGraph.ImageWidth)))
		writeProperty(&b, "og:image:height",
			s.ogValue("og:image:height", strconv.Itoa(s.cfg.OpenGraph.ImageHeight)))
	}

	return b.String()
}

// RenderTwitterCardTags emits the Twitter Card block. twitter:image is
// emitted only when set.
func (s *Store) RenderTwitterCardTags() string {
	if !s.cfg.Features.TwitterCards {
		return ""
	}

	var b strings.Builder
	writeMeta(&b, "twitter:card", s.twValue("twitter:card", s.cfg.Twitter.Card))
	writeMeta(&b, "twitter:site", s.twValue("twitter:site", s.cfg.Twitter.Site))
	writeMeta(&b, "twitter:creator", s.twValue("twitter:creator", s.cfg.Twitter.Creator))
	writeMeta(&b, "twitter:title", s.twValue("twitter:title", s.Title()))
	writeMeta(&b, "twitter:description", s.twValue("twitter:description", s.Description()))
	if image := s.twitter["twitter:image"]; image != "" {
		writeMeta(&b, "twitter:image", image)
	}

	return b.String()
}

// RenderJSONLD emits a script block with the JSON-LD document
// pretty-printed and forward slashes left unescaped, or an empty
// string when the document is empty.
func (s *Store) RenderJSONLD() string {
	if !s.cfg.Features.JSONLD || len(s.jsonLD) == 0 {
		return ""
	}
	return jsonLDScript(s.jsonLD)
}

// RenderBreadcrumbs emits a BreadcrumbList JSON-LD script block built
// from the stored trail, or an empty string when there are no crumbs.
func (s *Store) RenderBreadcrumbs() string {
	if len(s.breadcrumbs) == 0 {
		return ""
	}

	items := make([]map[string]any, 0, len(s.breadcrumbs))
	for _, crumb := range s.breadcrumbs {
		item := map[string]any{
			"@type":    "ListItem",
			"position": crumb.Position,
			"name":     crumb.Name,
		}
		if crumb.URL != "" {
			item["item"] = crumb.URL
		}
		items = append(items, item)
	}

	doc := map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
	return jsonLDScript(doc)
}

// RenderAll concatenates every block in head order: basic meta, Open
// Graph, Twitter Card, JSON-LD, breadcrumbs.
func (s *Store) RenderAll() string {
	var b strings.Builder
	for _, block := range []string{
		s.RenderMetaTags(),
		s.RenderOpenGraphTags(),
		s.RenderTwitterCardTags(),
		s.RenderJSONLD(),
		s.RenderBreadcrumbs(),
	} {
		if block == "" {
			continue
		}
		b.WriteString(block)
		if !strings.HasSuffix(block, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *Store) ogValue(property, fallback string) string {
	if v := s.openGraph[property]; v != "" {
		return v
	}
	return fallback
}

func (s *Store) twValue(name, fallback string) string {
	if v := s.twitter[name]; v != "" {
		return v
	}
	return fallback
}

func writeMeta(b *strings.Builder, name, content string) {
	if name == "" || content == "" {
		return
	}
	fmt.Fprintf(b, "<meta name=\"%s\" content=\"%s\">\n",
		html.EscapeString(name), html.EscapeString(content))
}

func writeProperty(b *strings.Builder, property, content string) {
	if content == "" {
		return
	}
	fmt.Fprintf(b, "<meta property=\"%s\" content=\"%s\">\n",
		html.EscapeString(property), html.EscapeString(content))
}

func jsonLDScript(doc map[string]any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		// Non-serializable values degrade to omission, not failure.
		return ""
	}
	return "<script type=\"application/ld+json\">\n" +
		strings.TrimRight(buf.String(), "\n") +
		"\n</script>"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
