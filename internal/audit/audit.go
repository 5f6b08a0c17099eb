// Package audit inspects rendered HTML documents for missing or
// out-of-range SEO markup. Extraction is regex based; documents are
// scanned as produced, not parsed into a DOM.
package audit

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Thresholds bounds the length checks and toggles the optional ones.
type Thresholds struct {
	MinTitleLen int
	MaxTitleLen int
	MinDescLen  int
	MaxDescLen  int

	CheckTitle       bool
	CheckDescription bool
	CheckKeywords    bool
	CheckCanonical   bool
	CheckOpenGraph   bool
	CheckTwitter     bool
	CheckJSONLD      bool
	CheckHeadings    bool
	CheckImages      bool
}

// DefaultThresholds mirrors the stock configuration bounds with every
// check enabled.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinTitleLen:      30,
		MaxTitleLen:      60,
		MinDescLen:       120,
		MaxDescLen:       160,
		CheckTitle:       true,
		CheckDescription: true,
		CheckKeywords:    true,
		CheckCanonical:   true,
		CheckOpenGraph:   true,
		CheckTwitter:     true,
		CheckJSONLD:      true,
		CheckHeadings:    true,
		CheckImages:      true,
	}
}

// Report groups findings by severity. Issues block indexing quality
// outright; warnings are advisory.
type Report struct {
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
	Passed   []string `json:"passed"`
}

// Extraction holds everything the regex scan pulled out of a document.
type Extraction struct {
	Title         string
	Meta          map[string]string
	OpenGraph     map[string]string
	Twitter       map[string]string
	Canonical     string
	HasJSONLD     bool
	H1Count       int
	ImgMissingAlt int
}

var (
	titleRe   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	metaTagRe = regexp.MustCompile(`(?is)<meta\b[^>]*>`)
	linkTagRe = regexp.MustCompile(`(?is)<link\b[^>]*>`)
	attrRe    = regexp.MustCompile(`(?is)([a-zA-Z:_-]+)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	jsonLDRe  = regexp.MustCompile(`(?is)<script[^>]+type\s*=\s*["']application/ld\+json["']`)
	h1Re      = regexp.MustCompile(`(?is)<h1[\s>]`)
	imgTagRe  = regexp.MustCompile(`(?is)<img\b[^>]*>`)
	imgAltRe  = regexp.MustCompile(`(?is)\balt\s*=`)
)

func attrs(tag string) map[string]string {
	out := make(map[string]string)
	for _, m := range attrRe.FindAllStringSubmatch(tag, -1) {
		val := m[2]
		if val == "" {
			val = m[3]
		}
		out[strings.ToLower(m[1])] = val
	}
	return out
}

// Extract scans an HTML document for the markup the auditor cares
// about. It never fails; absent elements are simply zero-valued.
func Extract(html string) Extraction {
	ex := Extraction{
		Meta:      make(map[string]string),
		OpenGraph: make(map[string]string),
		Twitter:   make(map[string]string),
	}

	if m := titleRe.FindStringSubmatch(html); m != nil {
		ex.Title = strings.TrimSpace(m[1])
	}

	for _, tag := range metaTagRe.FindAllString(html, -1) {
		a := attrs(tag)
		content := a["content"]
		switch {
		case a["name"] != "":
			name := strings.ToLower(a["name"])
			if strings.HasPrefix(name, "twitter:") {
				ex.Twitter[name] = content
			} else {
				ex.Meta[name] = content
			}
		case a["property"] != "":
			prop := strings.ToLower(a["property"])
			if strings.HasPrefix(prop, "og:") {
				ex.OpenGraph[prop] = content
			}
		}
	}

	for _, tag := range linkTagRe.FindAllString(html, -1) {
		a := attrs(tag)
		if strings.EqualFold(a["rel"], "canonical") {
			ex.Canonical = a["href"]
			break
		}
	}

	ex.HasJSONLD = jsonLDRe.MatchString(html)
	ex.H1Count = len(h1Re.FindAllString(html, -1))

	for _, tag := range imgTagRe.FindAllString(html, -1) {
		if !imgAltRe.MatchString(tag) {
			ex.ImgMissingAlt++
		}
	}
	return ex
}

// Audit extracts markup from html and evaluates it against th. A
// missing title or description is an issue; every other finding is a
// warning.
func Audit(html string, th Thresholds) Report {
	return Evaluate(Extract(html), th)
}

// Evaluate applies the threshold checks to an already-extracted
// document.
func Evaluate(ex Extraction, th Thresholds) Report {
	var r Report

	if th.CheckTitle {
		switch n := utf8.RuneCountInString(ex.Title); {
		case ex.Title == "":
			r.Issues = append(r.Issues, "Missing page title")
		case n < th.MinTitleLen:
			r.Warnings = append(r.Warnings, "Title too short (less than "+strconv.Itoa(th.MinTitleLen)+" characters)")
		case n > th.MaxTitleLen:
			r.Warnings = append(r.Warnings, "Title too long (more than "+strconv.Itoa(th.MaxTitleLen)+" characters)")
		default:
			r.Passed = append(r.Passed, "Title length is optimal")
		}
	}

	if th.CheckDescription {
		desc := ex.Meta["description"]
		switch n := utf8.RuneCountInString(desc); {
		case desc == "":
			r.Issues = append(r.Issues, "Missing meta description")
		case n < th.MinDescLen:
			r.Warnings = append(r.Warnings, "Description too short (less than "+strconv.Itoa(th.MinDescLen)+" characters)")
		case n > th.MaxDescLen:
			r.Warnings = append(r.Warnings, "Description too long (more than "+strconv.Itoa(th.MaxDescLen)+" characters)")
		default:
			r.Passed = append(r.Passed, "Description length is optimal")
		}
	}

	if th.CheckKeywords {
		if ex.Meta["keywords"] == "" {
			r.Warnings = append(r.Warnings, "Missing meta keywords")
		} else {
			r.Passed = append(r.Passed, "Meta keywords present")
		}
	}

	if th.CheckCanonical {
		if ex.Canonical == "" {
			r.Warnings = append(r.Warnings, "Missing canonical URL")
		} else {
			r.Passed = append(r.Passed, "Canonical URL present")
		}
	}

	if th.CheckOpenGraph {
		missing := missingOf(ex.OpenGraph, "og:title", "og:description", "og:image")
		if len(missing) > 0 {
			r.Warnings = append(r.Warnings, "Missing Open Graph tags: "+strings.Join(missing, ", "))
		} else {
			r.Passed = append(r.Passed, "Open Graph tags present")
		}
	}

	if th.CheckTwitter {
		if ex.Twitter["twitter:card"] == "" {
			r.Warnings = append(r.Warnings, "Missing Twitter card")
		} else {
			r.Passed = append(r.Passed, "Twitter card present")
		}
	}

	if th.CheckJSONLD {
		if !ex.HasJSONLD {
			r.Warnings = append(r.Warnings, "Missing structured data (JSON-LD)")
		} else {
			r.Passed = append(r.Passed, "Structured data present")
		}
	}

	if th.CheckHeadings {
		switch ex.H1Count {
		case 0:
			r.Warnings = append(r.Warnings, "Missing H1 heading")
		case 1:
			r.Passed = append(r.Passed, "Single H1 heading")
		default:
			r.Warnings = append(r.Warnings, "Multiple H1 headings found")
		}
	}

	if th.CheckImages {
		if ex.ImgMissingAlt > 0 {
			r.Warnings = append(r.Warnings, strconv.Itoa(ex.ImgMissingAlt)+" image(s) missing alt text")
		} else {
			r.Passed = append(r.Passed, "All images have alt text")
		}
	}

	return r
}

func missingOf(m map[string]string, keys ...string) []string {
	var out []string
	for _, k := range keys {
		if m[k] == "" {
			out = append(out, k)
		}
	}
	return out
}
