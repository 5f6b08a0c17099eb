package mcp

import (
	"context"
	"strings"
	"testing"

	"seopro/internal/store"
)

type mockStore struct {
	getResult    *store.Record
	getErr       error
	upsertResult *store.Record
	upsertErr    error
	listResult   []store.Summary
	listErr      error

	lastGetRef    store.EntityRef
	lastUpsertRef store.EntityRef
	lastPatch     store.Patch
	lastListType  string
}

var _ store.Store = (*mockStore)(nil)

func (m *mockStore) Close(context.Context) error        { return nil }
func (m *mockStore) EnsureSchema(context.Context) error { return nil }

func (m *mockStore) GetOrCreate(ctx context.Context, ref store.EntityRef) (*store.Record, bool, error) {
	rec, err := m.Get(ctx, ref)
	return rec, false, err
}

func (m *mockStore) Get(_ context.Context, ref store.EntityRef) (*store.Record, error) {
	m.lastGetRef = ref
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.getResult == nil {
		return nil, store.ErrNotFound
	}
	return m.getResult, nil
}

func (m *mockStore) Upsert(_ context.Context, ref store.EntityRef, patch store.Patch) (*store.Record, error) {
	m.lastUpsertRef = ref
	m.lastPatch = patch
	return m.upsertResult, m.upsertErr
}

func (m *mockStore) Delete(context.Context, store.EntityRef) error { return nil }

func (m *mockStore) List(_ context.Context, entityType string, limit, offset int) ([]store.Summary, error) {
	m.lastListType = entityType
	return m.listResult, m.listErr
}

func (m *mockStore) ListSitemapEntries(context.Context) ([]store.SitemapEntry, error) {
	return nil, nil
}

func (m *mockStore) AuditSummary(context.Context) (*store.AuditSummary, error) {
	return &store.AuditSummary{}, nil
}

func TestGetRecord(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		server := NewServer(nil, &mockStore{}, "test")
		if _, _, err := server.handleGetRecord(context.Background(), nil, GetRecordInput{Type: "post"}); err == nil {
			t.Fatal("expected error for missing id")
		}
	})

	t.Run("not found", func(t *testing.T) {
		server := NewServer(nil, &mockStore{}, "test")
		if _, _, err := server.handleGetRecord(context.Background(), nil, GetRecordInput{Type: "post", ID: "1"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("found", func(t *testing.T) {
		db := &mockStore{getResult: &store.Record{Title: "Hello"}}
		server := NewServer(nil, db, "test")

		_, out, err := server.handleGetRecord(context.Background(), nil, GetRecordInput{Type: "post", ID: "1"})
		if err != nil {
			t.Fatal(err)
		}
		if out.Record.Title != "Hello" {
			t.Errorf("title = %q", out.Record.Title)
		}
		if db.lastGetRef != (store.EntityRef{Type: "post", ID: "1"}) {
			t.Errorf("ref = %+v", db.lastGetRef)
		}
	})
}

func TestUpdateRecord(t *testing.T) {
	t.Run("empty fields rejected", func(t *testing.T) {
		server := NewServer(nil, &mockStore{}, "test")
		_, _, err := server.handleUpdateRecord(context.Background(), nil, UpdateRecordInput{Type: "post", ID: "1"})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("patch forwarded", func(t *testing.T) {
		db := &mockStore{upsertResult: &store.Record{Title: "New"}}
		server := NewServer(nil, db, "test")

		_, out, err := server.handleUpdateRecord(context.Background(), nil, UpdateRecordInput{
			Type:   "post",
			ID:     "1",
			Fields: map[string]any{"title": "New"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if out.Record.Title != "New" {
			t.Errorf("title = %q", out.Record.Title)
		}
		if db.lastPatch["title"] != "New" {
			t.Errorf("patch = %v", db.lastPatch)
		}
	})
}

func TestScore(t *testing.T) {
	db := &mockStore{getResult: &store.Record{
		Title:        "A Reasonably Long Page Title Goes Here",
		CanonicalURL: "https://x.test/posts/1",
	}}
	server := NewServer(nil, db, "test")

	_, out, err := server.handleScore(context.Background(), nil, ScoreInput{Type: "post", ID: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Score <= 0 {
		t.Errorf("score = %d", out.Score)
	}
	if len(out.Recommendations) == 0 {
		t.Error("expected recommendations for incomplete record")
	}
}

func TestAuditHTML(t *testing.T) {
	server := NewServer(nil, &mockStore{}, "test")

	t.Run("empty html rejected", func(t *testing.T) {
		if _, _, err := server.handleAuditHTML(context.Background(), nil, AuditHTMLInput{}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("issues reported", func(t *testing.T) {
		_, out, err := server.handleAuditHTML(context.Background(), nil, AuditHTMLInput{HTML: "<html></html>"})
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Issues) != 2 {
			t.Errorf("issues = %v", out.Issues)
		}
	})
}

func TestRenderMeta(t *testing.T) {
	db := &mockStore{getResult: &store.Record{Title: "Render Me"}}
	server := NewServer(nil, db, "test")

	_, out, err := server.handleRenderMeta(context.Background(), nil, RenderMetaInput{Type: "post", ID: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.HTML, "<title>Render Me</title>") {
		t.Fatalf("html = %s", out.HTML)
	}
}

func TestListRecords(t *testing.T) {
	db := &mockStore{listResult: []store.Summary{
		{Entity: store.EntityRef{Type: "post", ID: "1"}, Title: "Hello"},
	}}
	server := NewServer(nil, db, "test")

	_, out, err := server.handleListRecords(context.Background(), nil, ListRecordsInput{Type: "post"})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Records) != 1 || out.Records[0].Title != "Hello" {
		t.Errorf("records = %+v", out.Records)
	}
	if db.lastListType != "post" {
		t.Errorf("type filter = %q", db.lastListType)
	}
}
