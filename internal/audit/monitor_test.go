package audit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"seopro/internal/cache"
)

func TestMonitorCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("successful fetch", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(goodPage))
		}))
		defer srv.Close()

		m := NewMonitor(MonitorOptions{})
		res, err := m.Check(ctx, srv.URL)
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != "success" {
			t.Fatalf("status = %q, error = %q", res.Status, res.Error)
		}
		if res.HTTPStatus != http.StatusOK {
			t.Fatalf("http status = %d", res.HTTPStatus)
		}
		if len(res.Report.Issues) != 0 {
			t.Fatalf("issues = %v", res.Report.Issues)
		}
		if res.Score != 100 {
			t.Fatalf("score = %d", res.Score)
		}
		if len(res.Recommendations) != 0 {
			t.Fatalf("recommendations = %v", res.Recommendations)
		}
	})

	t.Run("non-200 is an error result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		m := NewMonitor(MonitorOptions{})
		res, err := m.Check(ctx, srv.URL)
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != "error" || res.HTTPStatus != http.StatusNotFound {
			t.Fatalf("status=%q http=%d", res.Status, res.HTTPStatus)
		}
	})

	t.Run("unreachable host is an error result", func(t *testing.T) {
		m := NewMonitor(MonitorOptions{Timeout: time.Second})
		res, err := m.Check(ctx, "http://127.0.0.1:1")
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != "error" || res.Error == "" {
			t.Fatalf("result = %+v", res)
		}
	})

	t.Run("empty page scores zero with issues", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html><body></body></html>"))
		}))
		defer srv.Close()

		m := NewMonitor(MonitorOptions{})
		res, err := m.Check(ctx, srv.URL)
		if err != nil {
			t.Fatal(err)
		}
		if res.Score != 0 {
			t.Fatalf("score = %d", res.Score)
		}
		if len(res.Report.Issues) != 2 {
			t.Fatalf("issues = %v", res.Report.Issues)
		}
		if !contains(res.Recommendations, "Add a page title") {
			t.Fatalf("recommendations = %v", res.Recommendations)
		}
	})

	t.Run("cached result skips second fetch", func(t *testing.T) {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.Write([]byte(goodPage))
		}))
		defer srv.Close()

		m := NewMonitor(MonitorOptions{Cache: cache.NewMemory()})
		for i := 0; i < 2; i++ {
			if _, err := m.Check(ctx, srv.URL); err != nil {
				t.Fatal(err)
			}
		}
		if hits != 1 {
			t.Fatalf("server hit %d times", hits)
		}
	})

	t.Run("error results are not cached", func(t *testing.T) {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		m := NewMonitor(MonitorOptions{Cache: cache.NewMemory()})
		for i := 0; i < 2; i++ {
			if _, err := m.Check(ctx, srv.URL); err != nil {
				t.Fatal(err)
			}
		}
		if hits != 2 {
			t.Fatalf("server hit %d times", hits)
		}
	})
}

func TestPageScoreBands(t *testing.T) {
	th := DefaultThresholds()

	t.Run("short title partial credit", func(t *testing.T) {
		ex := Extract("<title>Tiny</title>")
		if got := pageScore(ex, th); got != 15 {
			t.Fatalf("score = %d", got)
		}
	})

	t.Run("long title minimal credit", func(t *testing.T) {
		ex := Extract("<title>" + strings.Repeat("x", 80) + "</title>")
		if got := pageScore(ex, th); got != 5 {
			t.Fatalf("score = %d", got)
		}
	})

	t.Run("heading bucket requires exactly one h1", func(t *testing.T) {
		one := Extract("<h1>a</h1>")
		two := Extract("<h1>a</h1><h1>b</h1>")
		if pageScore(one, th) != 10 {
			t.Fatalf("one h1 = %d", pageScore(one, th))
		}
		if pageScore(two, th) != 0 {
			t.Fatalf("two h1 = %d", pageScore(two, th))
		}
	})
}
