// Package analytics counts engine activity and exposes it as
// Prometheus metrics.
package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Event names recorded against the events counter.
const (
	EventRecordRead    = "record_read"
	EventRecordWrite   = "record_write"
	EventRecordDelete  = "record_delete"
	EventRender        = "render"
	EventRobotsServed  = "robots_served"
	EventSitemapServed = "sitemap_served"
	EventAudit         = "audit"
)

// Tracker records engine events. A nil Tracker is valid and does
// nothing, so callers never need to guard their calls.
type Tracker struct {
	logger *zap.Logger

	events *prometheus.CounterVec
	issues prometheus.Counter
	scores prometheus.Histogram
}

// New registers the tracker's collectors with reg. Pass
// prometheus.DefaultRegisterer for the usual global registry.
func New(reg prometheus.Registerer, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tracker{
		logger: logger,
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seopro_events_total",
			Help: "Engine events by type.",
		}, []string{"event"}),
		issues: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seopro_audit_issues_total",
			Help: "Audit issues found across all audits.",
		}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "seopro_score",
			Help:    "Distribution of completeness scores.",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
	}
	reg.MustRegister(t.events, t.issues, t.scores)
	return t
}

// Event increments the counter for name.
func (t *Tracker) Event(name string) {
	if t == nil {
		return
	}
	t.events.WithLabelValues(name).Inc()
}

// Score records one computed completeness score.
func (t *Tracker) Score(entityType string, score int) {
	if t == nil {
		return
	}
	t.scores.Observe(float64(score))
	if score < 50 {
		t.logger.Info("low completeness score",
			zap.String("entity_type", entityType),
			zap.Int("score", score))
	}
}

// AuditIssues records the issue count of one audit run.
func (t *Tracker) AuditIssues(n int) {
	if t == nil {
		return
	}
	t.events.WithLabelValues(EventAudit).Inc()
	t.issues.Add(float64(n))
}
