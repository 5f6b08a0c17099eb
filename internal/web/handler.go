// Package web serves the HTTP surface: crawler artifacts, the record
// API and operational endpoints.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"seopro/internal/analytics"
	"seopro/internal/audit"
	"seopro/internal/cache"
	"seopro/internal/config"
	"seopro/internal/seo"
	"seopro/internal/store"
)

type Handler struct {
	cfg     *config.SeoConfig
	records store.Store
	cache   cache.Cache
	tracker *analytics.Tracker
	logger  *zap.Logger
	monitor *audit.Monitor
}

// Options carries the handler's collaborators. Records may be nil for
// a config-only deployment; Cache and Tracker are optional.
type Options struct {
	Records store.Store
	Cache   cache.Cache
	Tracker *analytics.Tracker
	Logger  *zap.Logger
}

func NewHandler(cfg *config.SeoConfig, opts Options) *Handler {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		cfg:     cfg,
		records: opts.Records,
		cache:   opts.Cache,
		tracker: opts.Tracker,
		logger:  logger,
	}
	h.monitor = audit.NewMonitor(audit.MonitorOptions{
		Cache:  opts.Cache,
		TTL:    h.ttl(),
		Logger: logger,
	})
	return h
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestLogger(h.logger))

	r.Get("/robots.txt", h.robotsTxt)
	r.Get("/sitemap.xml", h.sitemapXML)
	r.Get("/healthz", h.healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/seo/{type}/{id}", h.getRecord)
		r.Get("/seo/{type}/{id}/score", h.getScore)
		r.Post("/audit", h.postAudit)
	})
	return r
}

func (h *Handler) engine() *seo.Engine {
	return seo.New(h.cfg, seo.Options{
		Records: h.records,
		Cache:   h.cache,
		Tracker: h.tracker,
		Logger:  h.logger,
	})
}

func (h *Handler) ttl() time.Duration {
	if h.cfg.Cache.TTLSeconds > 0 {
		return time.Duration(h.cfg.Cache.TTLSeconds) * time.Second
	}
	return time.Hour
}

func (h *Handler) robotsTxt(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.Features.RobotsTxt {
		http.NotFound(w, r)
		return
	}
	body := h.memoized(r, cache.Key{Kind: "robots"}, func() (string, error) {
		return h.engine().GenerateRobots(), nil
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(body))
}

func (h *Handler) sitemapXML(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.Features.SitemapXML {
		http.NotFound(w, r)
		return
	}
	body := h.memoized(r, cache.Key{Kind: "sitemap"}, func() (string, error) {
		return h.engine().GenerateSitemap(r.Context())
	})
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(body))
}

// memoized serves from the cache when possible and regenerates
// otherwise. Generation errors fall back to an empty body rather than
// failing the request; the engine already degrades the same way.
func (h *Handler) memoized(r *http.Request, key cache.Key, generate func() (string, error)) string {
	ctx := r.Context()
	if h.cache != nil {
		if body, ok, err := h.cache.Get(ctx, key); err == nil && ok {
			return body
		}
	}
	body, err := generate()
	if err != nil {
		h.logger.Error("artifact generation failed", zap.String("key", key.String()), zap.Error(err))
		return ""
	}
	if h.cache != nil {
		if err := h.cache.Set(ctx, key, body, h.ttl()); err != nil {
			h.logger.Warn("cache write failed", zap.String("key", key.String()), zap.Error(err))
		}
	}
	return body
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getRecord serves the stored record, or a default-shaped empty one
// when nothing is stored yet. Absence is not an error on this surface;
// nothing is written back.
func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ref := store.EntityRef{Type: chi.URLParam(r, "type"), ID: chi.URLParam(r, "id")}
	rec := defaultRecord(ref)
	if h.records != nil {
		stored, err := h.records.Get(r.Context(), ref)
		switch {
		case err == nil:
			rec = stored
		case !errors.Is(err, store.ErrNotFound):
			h.logger.Error("record lookup failed", zap.String("entity", ref.String()), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "record lookup failed")
			return
		}
	}
	writeJSON(w, http.StatusOK, rec)
}

// getScore scores the stored record, falling back to the config
// defaults when nothing is stored yet.
func (h *Handler) getScore(w http.ResponseWriter, r *http.Request) {
	eng := h.engine()
	ref := store.EntityRef{Type: chi.URLParam(r, "type"), ID: chi.URLParam(r, "id")}
	if _, err := eng.LoadRecord(r.Context(), ref); err != nil && !errors.Is(err, store.ErrNotFound) {
		h.logger.Error("record lookup failed", zap.String("entity", ref.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "record lookup failed")
		return
	}
	eng.Optimize()
	writeJSON(w, http.StatusOK, map[string]any{
		"entity":          ref,
		"score":           eng.Score(),
		"recommendations": eng.Recommendations(),
	})
}

type auditRequest struct {
	HTML string `json:"html,omitempty"`
	URL  string `json:"url,omitempty"`
}

func (h *Handler) postAudit(w http.ResponseWriter, r *http.Request) {
	var req auditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.HTML != "":
		writeJSON(w, http.StatusOK, h.engine().AuditHTML(req.HTML))
	case req.URL != "":
		res, err := h.monitor.Check(r.Context(), req.URL)
		if err != nil {
			h.logger.Error("url audit failed", zap.String("url", req.URL), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "audit failed")
			return
		}
		writeJSON(w, http.StatusOK, res)
	default:
		writeError(w, http.StatusBadRequest, "provide html or url")
	}
}

func defaultRecord(ref store.EntityRef) *store.Record {
	return &store.Record{
		Entity:         ref,
		OpenGraph:      map[string]string{},
		Twitter:        map[string]string{},
		JSONLD:         map[string]any{},
		AdditionalMeta: map[string]string{},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
