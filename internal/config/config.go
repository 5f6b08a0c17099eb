package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SeoConfig holds every process-wide default and toggle. It is loaded
// once at startup and passed explicitly into each component; nothing in
// this package is mutated after Load returns.
type SeoConfig struct {
	Defaults  Defaults  `yaml:"defaults"`
	OpenGraph OpenGraph `yaml:"open_graph"`
	Twitter   Twitter   `yaml:"twitter"`
	Robots    Robots    `yaml:"robots"`
	Sitemap   Sitemap   `yaml:"sitemap"`
	Audit     Audit     `yaml:"audit"`
	Features  Features  `yaml:"features"`
	Database  Database  `yaml:"database"`
	Cache     Cache     `yaml:"cache"`
	Server    Server    `yaml:"server"`
}

type Defaults struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
	Author      string `yaml:"author"`
	Robots      string `yaml:"robots"`
	Viewport    string `yaml:"viewport"`
}

type OpenGraph struct {
	Type        string `yaml:"type"`
	SiteName    string `yaml:"site_name"`
	Locale      string `yaml:"locale"`
	ImageWidth  int    `yaml:"image_width"`
	ImageHeight int    `yaml:"image_height"`
}

type Twitter struct {
	Card    string `yaml:"card"`
	Site    string `yaml:"site"`
	Creator string `yaml:"creator"`
}

type Robots struct {
	UserAgent string   `yaml:"user_agent"`
	Disallow  []string `yaml:"disallow"`
	Allow     []string `yaml:"allow"`
	Sitemap   string   `yaml:"sitemap"`
}

type Sitemap struct {
	BaseURL    string       `yaml:"base_url"`
	URLs       []SitemapURL `yaml:"urls"`
	Sources    []string     `yaml:"sources"`
	Priority   string       `yaml:"priority"`
	ChangeFreq string       `yaml:"changefreq"`
}

// SitemapURL is a static sitemap entry declared in configuration.
type SitemapURL struct {
	URL        string         `yaml:"url"`
	LastMod    string         `yaml:"lastmod"`
	Priority   string         `yaml:"priority"`
	ChangeFreq string         `yaml:"changefreq"`
	Images     []SitemapImage `yaml:"images"`
	News       *SitemapNews   `yaml:"news"`
}

type SitemapImage struct {
	URL     string `yaml:"url"`
	Title   string `yaml:"title"`
	Caption string `yaml:"caption"`
}

type SitemapNews struct {
	PublicationName string `yaml:"publication_name"`
	Language        string `yaml:"language"`
	PublicationDate string `yaml:"publication_date"`
	Title           string `yaml:"title"`
}

type Audit struct {
	Enabled              bool `yaml:"enabled"`
	CheckTitle           bool `yaml:"check_title"`
	CheckDescription     bool `yaml:"check_description"`
	CheckKeywords        bool `yaml:"check_keywords"`
	CheckOpenGraph       bool `yaml:"check_og_tags"`
	CheckTwitter         bool `yaml:"check_twitter_tags"`
	CheckCanonical       bool `yaml:"check_canonical"`
	MinTitleLength       int  `yaml:"min_title_length"`
	MaxTitleLength       int  `yaml:"max_title_length"`
	MinDescriptionLength int  `yaml:"min_description_length"`
	MaxDescriptionLength int  `yaml:"max_description_length"`
}

type Features struct {
	MetaTags     bool `yaml:"meta_tags"`
	OpenGraph    bool `yaml:"open_graph"`
	TwitterCards bool `yaml:"twitter_cards"`
	JSONLD       bool `yaml:"json_ld"`
	RobotsTxt    bool `yaml:"robots_txt"`
	SitemapXML   bool `yaml:"sitemap"`
}

type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type Cache struct {
	Backend    string `yaml:"backend"`
	RedisAddr  string `yaml:"redis_addr"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

type Server struct {
	Addr    string `yaml:"addr"`
	LogFile string `yaml:"log_file"`
}

var validChangeFreqs = map[string]struct{}{
	"always": {}, "hourly": {}, "daily": {}, "weekly": {},
	"monthly": {}, "yearly": {}, "never": {},
}

// Default returns the built-in configuration used when a field (or the
// whole file) is absent.
func Default() *SeoConfig {
	return &SeoConfig{
		Defaults: Defaults{
			Title:       "Web Application",
			Description: "A web application",
			Keywords:    "web, application",
			Robots:      "index, follow",
			Viewport:    "width=device-width, initial-scale=1.0",
		},
		OpenGraph: OpenGraph{
			Type:        "website",
			SiteName:    "Web Application",
			Locale:      "en_US",
			ImageWidth:  1200,
			ImageHeight: 630,
		},
		Twitter: Twitter{
			Card: "summary_large_image",
		},
		Robots: Robots{
			UserAgent: "*",
			Disallow:  []string{"/admin", "/api"},
			Allow:     []string{"/"},
			Sitemap:   "/sitemap.xml",
		},
		Sitemap: Sitemap{
			Priority:   "0.8",
			ChangeFreq: "weekly",
		},
		Audit: Audit{
			Enabled:              true,
			CheckTitle:           true,
			CheckDescription:     true,
			CheckKeywords:        true,
			CheckOpenGraph:       true,
			CheckTwitter:         true,
			CheckCanonical:       true,
			MinTitleLength:       30,
			MaxTitleLength:       60,
			MinDescriptionLength: 120,
			MaxDescriptionLength: 160,
		},
		Features: Features{
			MetaTags:     true,
			OpenGraph:    true,
			TwitterCards: true,
			JSONLD:       true,
			RobotsTxt:    true,
			SitemapXML:   true,
		},
		Database: Database{
			Driver: "sqlite",
			DSN:    "sqlite://seopro.db",
		},
		Cache: Cache{
			Backend:    "memory",
			TTLSeconds: 3600,
		},
		Server: Server{
			Addr: ":8080",
		},
	}
}

// Load reads a seopro.yaml file and merges it over the defaults.
func Load(path string) (*SeoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading seo config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading seo config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("loading seo config: %w", err)
	}

	return cfg, nil
}

func validate(cfg *SeoConfig) error {
	switch cfg.Database.Driver {
	case "", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	switch cfg.Cache.Backend {
	case "", "memory", "redis":
	default:
		return fmt.Errorf("unsupported cache backend: %s", cfg.Cache.Backend)
	}
	if cfg.Cache.Backend == "redis" && strings.TrimSpace(cfg.Cache.RedisAddr) == "" {
		return fmt.Errorf("cache redis_addr is required for the redis backend")
	}

	if cfg.Audit.MinTitleLength <= 0 || cfg.Audit.MaxTitleLength <= cfg.Audit.MinTitleLength {
		return fmt.Errorf("invalid audit title length bounds: %d..%d",
			cfg.Audit.MinTitleLength, cfg.Audit.MaxTitleLength)
	}
	if cfg.Audit.MinDescriptionLength <= 0 || cfg.Audit.MaxDescriptionLength <= cfg.Audit.MinDescriptionLength {
		return fmt.Errorf("invalid audit description length bounds: %d..%d",
			cfg.Audit.MinDescriptionLength, cfg.Audit.MaxDescriptionLength)
	}

	if cfg.Sitemap.ChangeFreq != "" {
		if _, ok := validChangeFreqs[cfg.Sitemap.ChangeFreq]; !ok {
			return fmt.Errorf("invalid sitemap changefreq: %s", cfg.Sitemap.ChangeFreq)
		}
	}
	for i, u := range cfg.Sitemap.URLs {
		if strings.TrimSpace(u.URL) == "" {
			return fmt.Errorf("sitemap url %d is missing its url", i)
		}
	}

	return nil
}
