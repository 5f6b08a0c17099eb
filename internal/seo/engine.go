package seo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"seopro/internal/analytics"
	"seopro/internal/audit"
	"seopro/internal/cache"
	"seopro/internal/config"
	"seopro/internal/meta"
	"seopro/internal/robots"
	"seopro/internal/sitemap"
	"seopro/internal/store"
)

// Options carries the optional collaborators an Engine can use. Every
// field may be nil; the engine degrades to in-memory behavior.
type Options struct {
	Records store.Store
	Cache   cache.Cache
	Tracker *analytics.Tracker
	Logger  *zap.Logger
}

// Engine drives one request's worth of SEO state: it loads records,
// hydrates the metadata store and produces every rendered artifact.
// An Engine is not safe for concurrent use; construct one per request.
type Engine struct {
	cfg     *config.SeoConfig
	meta    *meta.Store
	records store.Store
	cache   cache.Cache
	tracker *analytics.Tracker
	logger  *zap.Logger
}

func New(cfg *config.SeoConfig, opts Options) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:     cfg,
		meta:    meta.NewStore(cfg),
		records: opts.Records,
		cache:   opts.Cache,
		tracker: opts.Tracker,
		logger:  logger,
	}
}

// Meta exposes the underlying metadata store for direct manipulation.
func (e *Engine) Meta() *meta.Store { return e.meta }

func (e *Engine) Config() *config.SeoConfig { return e.cfg }

// Reset clears the metadata store for reuse across requests.
func (e *Engine) Reset() { e.meta.Reset() }

// LoadEntity hydrates the engine from the entity's stored record,
// creating an empty record on first sight.
func (e *Engine) LoadEntity(ctx context.Context, entity Entity) (*store.Record, error) {
	if e.records == nil {
		Hydrate(e.meta, nil, entity)
		return nil, nil
	}
	rec, created, err := e.records.GetOrCreate(ctx, entity.SeoKey())
	if err != nil {
		return nil, fmt.Errorf("loading seo record: %w", err)
	}
	if created {
		e.logger.Debug("created seo record", zap.String("entity", entity.SeoKey().String()))
	}
	e.tracker.Event(analytics.EventRecordRead)
	Hydrate(e.meta, rec, entity)
	return rec, nil
}

// LoadRecord hydrates the engine from an existing record.
func (e *Engine) LoadRecord(ctx context.Context, ref store.EntityRef) (*store.Record, error) {
	if e.records == nil {
		return nil, store.ErrNotFound
	}
	rec, err := e.records.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	e.tracker.Event(analytics.EventRecordRead)
	Hydrate(e.meta, rec, nil)
	return rec, nil
}

// UpdateEntity applies a patch to the entity's record and invalidates
// its cached render.
func (e *Engine) UpdateEntity(ctx context.Context, ref store.EntityRef, patch store.Patch) (*store.Record, error) {
	if e.records == nil {
		return nil, fmt.Errorf("no record store configured")
	}
	rec, err := e.records.Upsert(ctx, ref, patch)
	if err != nil {
		return nil, err
	}
	e.tracker.Event(analytics.EventRecordWrite)
	if e.cache != nil {
		key := cache.Key{Kind: "meta", ID: ref.String()}
		if err := e.cache.Forget(ctx, key); err != nil {
			e.logger.Warn("cache invalidation failed", zap.String("key", key.String()), zap.Error(err))
		}
	}
	return rec, nil
}

func (e *Engine) Optimize()                 { e.meta.Optimize() }
func (e *Engine) Score() int                { return e.score() }
func (e *Engine) Recommendations() []string { return e.meta.Recommendations() }

func (e *Engine) score() int {
	score := e.meta.Score()
	e.tracker.Score("", score)
	return score
}

// RenderAll produces the full head block for the hydrated metadata.
func (e *Engine) RenderAll() string {
	e.tracker.Event(analytics.EventRender)
	return e.meta.RenderAll()
}

// GenerateRobots renders robots.txt from the configured rules. A
// relative sitemap path is made absolute against the sitemap base URL;
// without a base URL the Sitemap line is omitted, since crawlers
// require an absolute URL there.
func (e *Engine) GenerateRobots() string {
	sitemapURL := e.cfg.Robots.Sitemap
	if strings.HasPrefix(sitemapURL, "/") {
		if e.cfg.Sitemap.BaseURL == "" {
			sitemapURL = ""
		} else {
			sitemapURL = strings.TrimRight(e.cfg.Sitemap.BaseURL, "/") + sitemapURL
		}
	}
	e.tracker.Event(analytics.EventRobotsServed)
	return robots.Render(robots.RuleSet{
		UserAgent:  e.cfg.Robots.UserAgent,
		Disallow:   e.cfg.Robots.Disallow,
		Allow:      e.cfg.Robots.Allow,
		SitemapURL: sitemapURL,
	})
}

// GenerateSitemap renders the standard sitemap from the configured
// static URLs plus every stored record with a canonical URL.
func (e *Engine) GenerateSitemap(ctx context.Context) (string, error) {
	entries, err := e.sitemapEntries(ctx)
	if err != nil {
		return "", err
	}
	e.tracker.Event(analytics.EventSitemapServed)
	return sitemap.Render(entries), nil
}

// GenerateAdvancedSitemap is GenerateSitemap with the image and news
// extensions included for static entries that declare them.
func (e *Engine) GenerateAdvancedSitemap(ctx context.Context) (string, error) {
	entries, err := e.sitemapEntries(ctx)
	if err != nil {
		return "", err
	}
	e.tracker.Event(analytics.EventSitemapServed)
	return sitemap.RenderAdvanced(entries), nil
}

func (e *Engine) sitemapEntries(ctx context.Context) ([]sitemap.Entry, error) {
	var entries []sitemap.Entry

	for _, u := range e.cfg.Sitemap.URLs {
		entries = append(entries, e.staticEntry(u))
	}

	if e.records == nil {
		return entries, nil
	}

	stored, err := e.storedEntries(ctx)
	if err != nil {
		// Static entries still make a valid sitemap; a flaky store
		// should not take the whole document down.
		e.logger.Warn("sitemap store lookup failed", zap.Error(err))
		return entries, nil
	}
	return append(entries, stored...), nil
}

func (e *Engine) storedEntries(ctx context.Context) ([]sitemap.Entry, error) {
	var out []sitemap.Entry

	appendEntry := func(url string, lastMod time.Time) {
		out = append(out, sitemap.Entry{
			Loc:        url,
			LastMod:    lastMod,
			Priority:   e.cfg.Sitemap.Priority,
			ChangeFreq: sitemap.ChangeFreq(e.cfg.Sitemap.ChangeFreq),
		})
	}

	if len(e.cfg.Sitemap.Sources) == 0 {
		stored, err := e.records.ListSitemapEntries(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range stored {
			appendEntry(s.URL, s.LastMod)
		}
		return out, nil
	}

	for _, source := range e.cfg.Sitemap.Sources {
		summaries, err := e.records.List(ctx, source, 0, 0)
		if err != nil {
			return nil, err
		}
		for _, s := range summaries {
			if s.CanonicalURL == "" {
				continue
			}
			appendEntry(s.CanonicalURL, s.UpdatedAt)
		}
	}
	return out, nil
}

func (e *Engine) staticEntry(u config.SitemapURL) sitemap.Entry {
	entry := sitemap.Entry{
		Loc:        u.URL,
		Priority:   u.Priority,
		ChangeFreq: sitemap.ChangeFreq(u.ChangeFreq),
	}
	if entry.Priority == "" {
		entry.Priority = e.cfg.Sitemap.Priority
	}
	if entry.ChangeFreq == "" {
		entry.ChangeFreq = sitemap.ChangeFreq(e.cfg.Sitemap.ChangeFreq)
	}
	if u.LastMod != "" {
		if t, err := time.Parse("2006-01-02", u.LastMod); err == nil {
			entry.LastMod = t
		}
	}
	for _, img := range u.Images {
		entry.Images = append(entry.Images, sitemap.Image{
			Loc:     img.URL,
			Title:   img.Title,
			Caption: img.Caption,
		})
	}
	if u.News != nil {
		news := &sitemap.News{
			PublicationName:     u.News.PublicationName,
			PublicationLanguage: u.News.Language,
			Title:               u.News.Title,
		}
		if u.News.PublicationDate != "" {
			if t, err := time.Parse("2006-01-02", u.News.PublicationDate); err == nil {
				news.PublicationDate = t
			}
		}
		entry.News = news
	}
	return entry
}

// Thresholds maps the audit configuration onto the auditor's bounds.
func (e *Engine) Thresholds() audit.Thresholds {
	a := e.cfg.Audit
	return audit.Thresholds{
		MinTitleLen:      a.MinTitleLength,
		MaxTitleLen:      a.MaxTitleLength,
		MinDescLen:       a.MinDescriptionLength,
		MaxDescLen:       a.MaxDescriptionLength,
		CheckTitle:       a.CheckTitle,
		CheckDescription: a.CheckDescription,
		CheckKeywords:    a.CheckKeywords,
		CheckCanonical:   a.CheckCanonical,
		CheckOpenGraph:   a.CheckOpenGraph,
		CheckTwitter:     a.CheckTwitter,
		CheckJSONLD:      a.Enabled,
		CheckHeadings:    a.Enabled,
		CheckImages:      a.Enabled,
	}
}

// AuditHTML runs the configured checks over a rendered document.
func (e *Engine) AuditHTML(html string) audit.Report {
	report := audit.Audit(html, e.Thresholds())
	e.tracker.AuditIssues(len(report.Issues))
	return report
}
