package store

import (
	"context"
	"testing"

	"focusfinance/internal/core"
	"focusfinance/internal/kv"
	"focusfinance/internal/kv/memory"
)

func TestProfileDefaultsOnFirstRun(t *testing.T) {
	ctx := context.Background()
	s := NewProfileStore(memory.New())

	p := s.Get(ctx)
	if p.Username != "Alex Johnson" || p.Email != "alex.johnson@example.com" {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestProfileUpdateReplacesWholeRecord(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	s := NewProfileStore(mem)

	next := core.Profile{Username: "Sam", Email: "sam@example.com", ProfilePic: "data:pic"}
	if err := s.Update(ctx, next); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := s.Get(ctx); got != next {
		t.Fatalf("Get = %+v, want %+v", got, next)
	}

	// Clearing the picture falls back to the generated avatar
	if err := s.Update(ctx, core.Profile{Username: "Sam", Email: "sam@example.com"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := s.Get(ctx); got.ProfilePic != "" {
		t.Fatalf("picture should be cleared, got %q", got.ProfilePic)
	}

	if _, ok, _ := mem.Get(ctx, kv.KeyUserProfile); !ok {
		t.Fatal("profile should be persisted")
	}
}

func TestProfileUpdateRejectsEmptyUsername(t *testing.T) {
	ctx := context.Background()
	s := NewProfileStore(memory.New())
	if err := s.Update(ctx, core.Profile{Username: "  "}); err != ErrEmptyUsername {
		t.Fatalf("Update = %v, want ErrEmptyUsername", err)
	}
}

func TestProfileCorruptStorageFallsBack(t *testing.T) {
	ctx := context.Background()
	for _, corrupt := range []string{"{broken", `{"username":""}`} {
		s := NewProfileStore(memory.NewSeeded(map[string]string{kv.KeyUserProfile: corrupt}))
		if p := s.Get(ctx); p.Username != "Alex Johnson" {
			t.Fatalf("corrupt profile %q should fall back to defaults, got %+v", corrupt, p)
		}
	}
}

func TestProfileRoundTripAcrossInstances(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()

	s := NewProfileStore(mem)
	want := core.Profile{Username: "Jo", Email: "jo@example.com"}
	if err := s.Update(ctx, want); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// A fresh store over the same medium sees the persisted record
	if got := NewProfileStore(mem).Get(ctx); got != want {
		t.Fatalf("reloaded profile = %+v, want %+v", got, want)
	}
}

func TestThemeDefaultAndToggle(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	s := NewThemeStore(mem)

	if s.Current(ctx) != core.ThemeLight {
		t.Fatal("default theme should be light")
	}

	var observed []core.Theme
	s.OnChange(func(th core.Theme) { observed = append(observed, th) })

	if got := s.Toggle(ctx); got != core.ThemeDark {
		t.Fatalf("Toggle = %v, want dark", got)
	}
	if v, _, _ := mem.Get(ctx, kv.KeyTheme); v != "dark" {
		t.Fatalf("persisted theme = %q, want dark", v)
	}
	if got := s.Toggle(ctx); got != core.ThemeLight {
		t.Fatalf("Toggle = %v, want light", got)
	}
	if len(observed) != 2 || observed[0] != core.ThemeDark || observed[1] != core.ThemeLight {
		t.Fatalf("subscribers saw %v, want [dark light]", observed)
	}
}

func TestThemeLoadsPersistedValue(t *testing.T) {
	ctx := context.Background()
	s := NewThemeStore(memory.NewSeeded(map[string]string{kv.KeyTheme: "dark"}))
	if s.Current(ctx) != core.ThemeDark {
		t.Fatal("persisted dark theme should be loaded")
	}

	s = NewThemeStore(memory.NewSeeded(map[string]string{kv.KeyTheme: "solarized"}))
	if s.Current(ctx) != core.ThemeLight {
		t.Fatal("invalid persisted theme should fall back to light")
	}
}
