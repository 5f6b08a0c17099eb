package meta

import (
	"seopro/internal/config"
)

// Group names a field group inside a Store.
type Group string

const (
	GroupBasic      Group = "basic"
	GroupOpenGraph  Group = "open_graph"
	GroupTwitter    Group = "twitter"
	GroupAdditional Group = "additional"
)

// Breadcrumb is one element of a navigation trail.
type Breadcrumb struct {
	Position int
	Name     string
	URL      string
}

// Store aggregates all metadata field groups for one page render. A
// Store is call-scoped: construct or hydrate one per logical request,
// never share an instance across concurrent requests.
//
// Absent fields stay absent; configured defaults are resolved lazily
// at read and render time and are never written back into the store.
type Store struct {
	cfg *config.SeoConfig

	basic       map[string]string
	openGraph   map[string]string
	twitter     map[string]string
	jsonLD      map[string]any
	additional  map[string]string
	breadcrumbs []Breadcrumb

	optimized bool
}

// NewStore returns an empty store bound to the given configuration.
func NewStore(cfg *config.SeoConfig) *Store {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Store{cfg: cfg}
	s.Reset()
	return s
}

// Reset discards all current content. Reads after a reset resolve to
// the configured defaults again.
func (s *Store) Reset() {
	s.basic = make(map[string]string)
	s.openGraph = make(map[string]string)
	s.twitter = make(map[string]string)
	s.jsonLD = make(map[string]any)
	s.additional = make(map[string]string)
	s.breadcrumbs = nil
	s.optimized = false
}

func (s *Store) Config() *config.SeoConfig { return s.cfg }

// SetField sets one field in the named group.
func (s *Store) SetField(group Group, key, value string) {
	switch group {
	case GroupBasic:
		s.basic[key] = value
	case GroupOpenGraph:
		s.openGraph[key] = value
	case GroupTwitter:
		s.twitter[key] = value
	case GroupAdditional:
		s.additional[key] = value
	}
}

// Field returns the stored value for a field, falling back to the
// configured default for basic fields when unset.
func (s *Store) Field(group Group, key string) string {
	switch group {
	case GroupBasic:
		if v, ok := s.basic[key]; ok {
			return v
		}
		return s.basicDefault(key)
	case GroupOpenGraph:
		return s.openGraph[key]
	case GroupTwitter:
		return s.twitter[key]
	case GroupAdditional:
		return s.additional[key]
	}
	return ""
}

func (s *Store) basicDefault(key string) string {
	switch key {
	case "title":
		return s.cfg.Defaults.Title
	case "description":
		return s.cfg.Defaults.Description
	case "keywords":
		return s.cfg.Defaults.Keywords
	case "author":
		return s.cfg.Defaults.Author
	case "robots":
		return s.cfg.Defaults.Robots
	case "viewport":
		return s.cfg.Defaults.Viewport
	}
	return ""
}

func (s *Store) SetTitle(title string)       { s.basic["title"] = title }
func (s *Store) SetDescription(desc string)  { s.basic["description"] = desc }
func (s *Store) SetKeywords(keywords string) { s.basic["keywords"] = keywords }
func (s *Store) SetAuthor(author string)     { s.basic["author"] = author }
func (s *Store) SetRobots(robots string)     { s.basic["robots"] = robots }
func (s *Store) SetViewport(viewport string) { s.basic["viewport"] = viewport }
func (s *Store) SetCanonicalURL(url string)  { s.basic["canonical_url"] = url }

// Title returns the stored title or the configured default.
func (s *Store) Title() string { return s.Field(GroupBasic, "title") }

// Description returns the stored description or the configured default.
func (s *Store) Description() string { return s.Field(GroupBasic, "description") }

func (s *Store) Keywords() string { return s.Field(GroupBasic, "keywords") }
func (s *Store) Author() string   { return s.Field(GroupBasic, "author") }
func (s *Store) Robots() string   { return s.Field(GroupBasic, "robots") }
func (s *Store) Viewport() string { return s.Field(GroupBasic, "viewport") }

// CanonicalURL returns the stored canonical URL, empty when unset.
// There is no process-wide default for canonical URLs.
func (s *Store) CanonicalURL() string { return s.basic["canonical_url"] }

func (s *Store) SetOpenGraph(property, content string) {
	s.openGraph[property] = content
}

// MergeOpenGraph performs a shallow key-wise merge; new values
// overwrite existing ones.
func (s *Store) MergeOpenGraph(data map[string]string) {
	for k, v := range data {
		s.openGraph[k] = v
	}
}

// OpenGraph returns a copy of the Open Graph group.
func (s *Store) OpenGraph() map[string]string {
	return copyMap(s.openGraph)
}

func (s *Store) SetTwitter(name, content string) {
	s.twitter[name] = content
}

// MergeTwitter performs a shallow key-wise merge; new values overwrite
// existing ones.
func (s *Store) MergeTwitter(data map[string]string) {
	for k, v := range data {
		s.twitter[k] = v
	}
}

// Twitter returns a copy of the Twitter Card group.
func (s *Store) Twitter() map[string]string {
	return copyMap(s.twitter)
}

// SetJSONLD replaces the JSON-LD document wholesale.
func (s *Store) SetJSONLD(data map[string]any) {
	s.jsonLD = make(map[string]any, len(data))
	for k, v := range data {
		s.jsonLD[k] = v
	}
}

// AddJSONLD merges keys into the JSON-LD document, injecting the
// schema.org @context when none is present yet. Merging nothing leaves
// an empty document empty.
func (s *Store) AddJSONLD(data map[string]any) {
	if len(data) == 0 {
		return
	}
	for k, v := range data {
		s.jsonLD[k] = v
	}
	if _, ok := s.jsonLD["@context"]; !ok {
		s.jsonLD["@context"] = "https://schema.org"
	}
}

// JSONLD returns a copy of the JSON-LD document.
func (s *Store) JSONLD() map[string]any {
	out := make(map[string]any, len(s.jsonLD))
	for k, v := range s.jsonLD {
		out[k] = v
	}
	return out
}

// AddMeta inserts one additional meta tag pair.
func (s *Store) AddMeta(name, content string) {
	s.additional[name] = content
}

// SetAdditionalMeta merges a map of additional meta tag pairs.
func (s *Store) SetAdditionalMeta(pairs map[string]string) {
	for k, v := range pairs {
		s.additional[k] = v
	}
}

// AdditionalMeta returns a copy of the additional meta group.
func (s *Store) AdditionalMeta() map[string]string {
	return copyMap(s.additional)
}

// AddBreadcrumb appends a trail element. A zero position is assigned
// the next position in sequence.
func (s *Store) AddBreadcrumb(name, url string, position int) {
	if position <= 0 {
		position = len(s.breadcrumbs) + 1
	}
	s.breadcrumbs = append(s.breadcrumbs, Breadcrumb{Position: position, Name: name, URL: url})
}

// Breadcrumbs returns a copy of the navigation trail.
func (s *Store) Breadcrumbs() []Breadcrumb {
	out := make([]Breadcrumb, len(s.breadcrumbs))
	copy(out, s.breadcrumbs)
	return out
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
