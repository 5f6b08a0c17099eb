// Package sitemap renders XML sitemaps in the sitemaps.org 0.9 format,
// with optional image and news extensions.
package sitemap

import (
	"fmt"
	"strings"
	"time"
)

// ChangeFreq is a sitemap change-frequency hint.
type ChangeFreq string

const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

// Valid reports whether f is one of the frequencies the protocol
// defines. The empty string is not valid; callers omit the element
// instead.
func (f ChangeFreq) Valid() bool {
	switch f {
	case Always, Hourly, Daily, Weekly, Monthly, Yearly, Never:
		return true
	}
	return false
}

// Image is an entry in the Google image sitemap extension.
type Image struct {
	Loc     string
	Title   string
	Caption string
}

// News is an entry in the Google news sitemap extension.
type News struct {
	PublicationName     string
	PublicationLanguage string
	Title               string
	PublicationDate     time.Time
}

// Entry is one <url> element. Loc is required; every other field is
// emitted only when set.
type Entry struct {
	Loc        string
	LastMod    time.Time
	Priority   string
	ChangeFreq ChangeFreq
	Images     []Image
	News       *News
}

const (
	xmlProlog = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	urlsetNS  = "http://www.sitemaps.org/schemas/sitemap/0.9"
	imageNS   = "http://www.google.com/schemas/sitemap-image/1.1"
	newsNS    = "http://www.google.com/schemas/sitemap-news/0.9"
)

// Render produces a standard sitemap. Entries with an empty Loc are
// skipped; invalid change frequencies are omitted from their entry.
func Render(entries []Entry) string {
	var b strings.Builder
	b.WriteString(xmlProlog)
	fmt.Fprintf(&b, "<urlset xmlns=%q>\n", urlsetNS)
	for _, e := range entries {
		writeURL(&b, e, false)
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

// RenderAdvanced produces a sitemap carrying the image and news
// extension namespaces in addition to the standard elements.
func RenderAdvanced(entries []Entry) string {
	var b strings.Builder
	b.WriteString(xmlProlog)
	fmt.Fprintf(&b, "<urlset xmlns=%q xmlns:image=%q xmlns:news=%q>\n", urlsetNS, imageNS, newsNS)
	for _, e := range entries {
		writeURL(&b, e, true)
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

func writeURL(b *strings.Builder, e Entry, extensions bool) {
	if e.Loc == "" {
		return
	}
	b.WriteString("  <url>\n")
	fmt.Fprintf(b, "    <loc>%s</loc>\n", escape(e.Loc))
	if !e.LastMod.IsZero() {
		fmt.Fprintf(b, "    <lastmod>%s</lastmod>\n", e.LastMod.Format("2006-01-02"))
	}
	if e.Priority != "" {
		fmt.Fprintf(b, "    <priority>%s</priority>\n", escape(e.Priority))
	}
	if e.ChangeFreq.Valid() {
		fmt.Fprintf(b, "    <changefreq>%s</changefreq>\n", e.ChangeFreq)
	}
	if extensions {
		for _, img := range e.Images {
			writeImage(b, img)
		}
		if e.News != nil {
			writeNews(b, *e.News)
		}
	}
	b.WriteString("  </url>\n")
}

func writeImage(b *strings.Builder, img Image) {
	if img.Loc == "" {
		return
	}
	b.WriteString("    <image:image>\n")
	fmt.Fprintf(b, "      <image:loc>%s</image:loc>\n", escape(img.Loc))
	if img.Title != "" {
		fmt.Fprintf(b, "      <image:title>%s</image:title>\n", escape(img.Title))
	}
	if img.Caption != "" {
		fmt.Fprintf(b, "      <image:caption>%s</image:caption>\n", escape(img.Caption))
	}
	b.WriteString("    </image:image>\n")
}

func writeNews(b *strings.Builder, n News) {
	b.WriteString("    <news:news>\n")
	b.WriteString("      <news:publication>\n")
	fmt.Fprintf(b, "        <news:name>%s</news:name>\n", escape(n.PublicationName))
	fmt.Fprintf(b, "        <news:language>%s</news:language>\n", escape(n.PublicationLanguage))
	b.WriteString("      </news:publication>\n")
	if !n.PublicationDate.IsZero() {
		fmt.Fprintf(b, "      <news:publication_date>%s</news:publication_date>\n", n.PublicationDate.Format("2006-01-02"))
	}
	if n.Title != "" {
		fmt.Fprintf(b, "      <news:title>%s</news:title>\n", escape(n.Title))
	}
	b.WriteString("    </news:news>\n")
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
