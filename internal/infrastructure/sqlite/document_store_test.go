package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/atelierhq/atelier/internal/core/domain"
)

func newTestStore(t *testing.T) *DocumentStore {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewDocumentStore(db)
}

func TestDocumentStoreAddAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, "things", map[string]any{"name": "one", "count": 3.0})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}

	doc, err := store.Get(ctx, "things", id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if doc.Fields["name"] != "one" {
		t.Errorf("expected name 'one', got %v", doc.Fields["name"])
	}
	if doc.Fields["count"] != 3.0 {
		t.Errorf("expected count 3, got %v", doc.Fields["count"])
	}
}

func TestDocumentStoreGetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "things", "missing")
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDocumentStoreUpdateMergesFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, "things", map[string]any{"name": "one", "kept": "yes"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := store.Update(ctx, "things", id, map[string]any{"name": "two"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	doc, err := store.Get(ctx, "things", id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if doc.Fields["name"] != "two" {
		t.Errorf("expected name 'two', got %v", doc.Fields["name"])
	}
	// Untouched fields survive a partial update
	if doc.Fields["kept"] != "yes" {
		t.Errorf("expected kept 'yes', got %v", doc.Fields["kept"])
	}
}

func TestDocumentStoreUpdateNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(context.Background(), "things", "missing", map[string]any{"name": "x"})
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDocumentStoreDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, "things", map[string]any{"name": "one"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := store.Delete(ctx, "things", id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	// Deleting again succeeds: the end state already holds
	if err := store.Delete(ctx, "things", id); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}

	if _, err := store.Get(ctx, "things", id); err == nil {
		t.Fatal("expected document to be gone")
	}
}

func TestDocumentStoreQuery(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, owner := range []string{"a", "a", "b"} {
		if _, err := store.Add(ctx, "things", map[string]any{"owner": owner}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	docs, err := store.Query(ctx, "things", "owner", "a")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("expected 2 documents, got %d", len(docs))
	}

	docs, err = store.Query(ctx, "things", "owner", "nobody")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}

func TestDocumentStoreListOrdered(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, rank := range []float64{3, 1, 2} {
		if _, err := store.Add(ctx, "things", map[string]any{"rank": rank}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	docs, err := store.ListOrdered(ctx, "things", "rank")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	for i, want := range []float64{1, 2, 3} {
		if docs[i].Fields["rank"] != want {
			t.Errorf("position %d: expected rank %v, got %v", i, want, docs[i].Fields["rank"])
		}
	}
}

func TestDocumentStoreCollectionsAreIsolated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, "alpha", map[string]any{"name": "one"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := store.Get(ctx, "beta", id); err == nil {
		t.Fatal("expected document to be invisible from another collection")
	}
}
