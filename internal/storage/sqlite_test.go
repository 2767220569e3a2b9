package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "transactions"); err != nil || ok {
		t.Fatalf("missing key should be absent, ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "transactions", `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := store.Get(ctx, "transactions")
	if err != nil || !ok || v != `[{"id":"a"}]` {
		t.Fatalf("Get = %q, %v, %v", v, ok, err)
	}

	// Upsert replaces the previous value
	if err := store.Set(ctx, "transactions", `[]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _, _ := store.Get(ctx, "transactions"); v != `[]` {
		t.Fatalf("upsert failed, got %q", v)
	}

	if err := store.Delete(ctx, "transactions"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "transactions"); ok {
		t.Fatal("key should be gone after delete")
	}
	if err := store.Delete(ctx, "transactions"); err != nil {
		t.Fatalf("Delete of missing key should not error: %v", err)
	}
}

func TestSQLiteStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := store.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "theme")
	if err != nil || !ok || v != "dark" {
		t.Fatalf("value did not survive reopen: %q, %v, %v", v, ok, err)
	}
}
