package analytics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTracker(t *testing.T) {
	t.Run("events counted by name", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		tr := New(reg, nil)

		tr.Event(EventRender)
		tr.Event(EventRender)
		tr.Event(EventRobotsServed)

		if got := testutil.ToFloat64(tr.events.WithLabelValues(EventRender)); got != 2 {
			t.Errorf("render count = %v", got)
		}
		if got := testutil.ToFloat64(tr.events.WithLabelValues(EventRobotsServed)); got != 1 {
			t.Errorf("robots count = %v", got)
		}
	})

	t.Run("audit issues accumulate", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		tr := New(reg, nil)

		tr.AuditIssues(2)
		tr.AuditIssues(3)

		if got := testutil.ToFloat64(tr.issues); got != 5 {
			t.Errorf("issues = %v", got)
		}
		if got := testutil.ToFloat64(tr.events.WithLabelValues(EventAudit)); got != 2 {
			t.Errorf("audit events = %v", got)
		}
	})

	t.Run("nil tracker is a no-op", func(t *testing.T) {
		var tr *Tracker
		tr.Event(EventRender)
		tr.Score("post", 90)
		tr.AuditIssues(1)
	})
}
