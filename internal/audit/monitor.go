package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"seopro/internal/cache"
)

// Result is the outcome of checking one live URL. Fetch failures are
// reported in Status and Error rather than returned as errors.
type Result struct {
	URL             string    `json:"url"`
	Status          string    `json:"status"`
	HTTPStatus      int       `json:"http_status,omitempty"`
	Error           string    `json:"error,omitempty"`
	Report          Report    `json:"report"`
	Score           int       `json:"score"`
	Recommendations []string  `json:"recommendations,omitempty"`
	CheckedAt       time.Time `json:"checked_at"`
}

// Monitor fetches pages over HTTP and audits their markup. Results are
// memoized in the cache when one is configured.
type Monitor struct {
	client     *http.Client
	thresholds Thresholds
	cache      cache.Cache
	ttl        time.Duration
	logger     *zap.Logger
}

// MonitorOptions configures NewMonitor. Zero values fall back to a
// 10 second client timeout, default thresholds, no cache and a no-op
// logger.
type MonitorOptions struct {
	Timeout    time.Duration
	Thresholds *Thresholds
	Cache      cache.Cache
	TTL        time.Duration
	Logger     *zap.Logger
}

func NewMonitor(opts MonitorOptions) *Monitor {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	th := DefaultThresholds()
	if opts.Thresholds != nil {
		th = *opts.Thresholds
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		client:     &http.Client{Timeout: timeout},
		thresholds: th,
		cache:      opts.Cache,
		ttl:        ttl,
		logger:     logger,
	}
}

// Check fetches url and audits the response body. Network and HTTP
// failures produce a Result with Status "error"; the error return is
// reserved for cache faults.
func (m *Monitor) Check(ctx context.Context, url string) (Result, error) {
	key := cache.Key{Kind: "monitor", ID: url}
	if m.cache != nil {
		if raw, ok, err := m.cache.Get(ctx, key); err == nil && ok {
			var cached Result
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	res := m.check(ctx, url)
	if m.cache != nil && res.Status == "success" {
		if raw, err := json.Marshal(res); err == nil {
			if err := m.cache.Set(ctx, key, string(raw), m.ttl); err != nil {
				m.logger.Warn("monitor cache write failed", zap.String("url", url), zap.Error(err))
			}
		}
	}
	return res, nil
}

func (m *Monitor) check(ctx context.Context, url string) Result {
	res := Result{URL: url, CheckedAt: time.Now().UTC()}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		res.Status = "error"
		res.Error = err.Error()
		return res
	}
	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Warn("page fetch failed", zap.String("url", url), zap.Error(err))
		res.Status = "error"
		res.Error = err.Error()
		return res
	}
	defer resp.Body.Close()

	res.HTTPStatus = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		res.Status = "error"
		res.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		return res
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		res.Status = "error"
		res.Error = err.Error()
		return res
	}

	ex := Extract(string(body))
	res.Status = "success"
	res.Report = Evaluate(ex, m.thresholds)
	res.Score = pageScore(ex, m.thresholds)
	res.Recommendations = pageRecommendations(ex, m.thresholds)
	return res
}

// pageScore grades an extracted page out of 100. Unlike record scoring
// it rewards heading structure, since a live page exposes it.
func pageScore(ex Extraction, th Thresholds) int {
	score := 0

	switch n := utf8.RuneCountInString(ex.Title); {
	case ex.Title == "":
	case n >= th.MinTitleLen && n <= th.MaxTitleLen:
		score += 20
	case n > 0 && n < th.MinTitleLen:
		score += 15
	default:
		score += 5
	}

	switch n := utf8.RuneCountInString(ex.Meta["description"]); {
	case ex.Meta["description"] == "":
	case n >= th.MinDescLen && n <= th.MaxDescLen:
		score += 20
	case n > 0 && n < th.MinDescLen:
		score += 15
	default:
		score += 5
	}

	if ex.Canonical != "" {
		score += 10
	}
	if len(missingOf(ex.OpenGraph, "og:title", "og:description", "og:image")) == 0 {
		score += 20
	}
	if ex.Twitter["twitter:card"] != "" {
		score += 10
	}
	if ex.HasJSONLD {
		score += 10
	}
	if ex.H1Count == 1 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func pageRecommendations(ex Extraction, th Thresholds) []string {
	var recs []string
	if ex.Title == "" {
		recs = append(recs, "Add a page title")
	}
	if ex.Meta["description"] == "" {
		recs = append(recs, "Add a meta description")
	}
	if ex.Canonical == "" {
		recs = append(recs, "Add a canonical URL")
	}
	if missing := missingOf(ex.OpenGraph, "og:title", "og:description", "og:image"); len(missing) > 0 {
		recs = append(recs, "Complete Open Graph tags")
	}
	if !ex.HasJSONLD {
		recs = append(recs, "Add structured data (JSON-LD)")
	}
	if ex.H1Count != 1 {
		recs = append(recs, "Use exactly one H1 heading")
	}
	return recs
}
