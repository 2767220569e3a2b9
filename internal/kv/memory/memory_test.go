package memory

import (
	"context"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.Get(ctx, "theme"); err != nil || ok {
		t.Fatalf("missing key should be absent, ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get(ctx, "theme")
	if err != nil || !ok || v != "dark" {
		t.Fatalf("Get = %q, %v, %v, want dark", v, ok, err)
	}

	// Last write wins
	if err := s.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _, _ := s.Get(ctx, "theme"); v != "light" {
		t.Fatalf("overwrite failed, got %q", v)
	}

	if err := s.Delete(ctx, "theme"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "theme"); ok {
		t.Fatal("key should be gone after delete")
	}

	// Deleting a missing key is a no-op
	if err := s.Delete(ctx, "theme"); err != nil {
		t.Fatalf("Delete of missing key should not error: %v", err)
	}
}

func TestNewSeeded(t *testing.T) {
	s := NewSeeded(map[string]string{"transactions": "[]"})
	v, ok, _ := s.Get(context.Background(), "transactions")
	if !ok || v != "[]" {
		t.Fatalf("seeded value missing, got %q ok=%v", v, ok)
	}
}
