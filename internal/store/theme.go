package store

import (
	"context"
	"log/slog"
	"sync"

	"focusfinance/internal/core"
	"focusfinance/internal/kv"
)

// ThemeStore owns the light/dark preference. Toggling persists the new value
// and notifies subscribers, which is how the process-wide presentation flag
// stays in sync with the stored preference.
type ThemeStore struct {
	mu        sync.Mutex
	kv        kv.Store
	theme     core.Theme
	loaded    bool
	listeners []func(core.Theme)
}

func NewThemeStore(store kv.Store) *ThemeStore {
	return &ThemeStore{kv: store}
}

// Current returns the active theme, defaulting to light when nothing valid
// is persisted.
func (s *ThemeStore) Current(ctx context.Context) core.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.theme
}

// Toggle flips the theme, persists it and notifies subscribers. The new
// theme is returned.
func (s *ThemeStore) Toggle(ctx context.Context) core.Theme {
	s.mu.Lock()
	s.ensureLoaded(ctx)
	s.theme = s.theme.Flip()
	next := s.theme
	if err := s.kv.Set(ctx, kv.KeyTheme, string(next)); err != nil {
		slog.ErrorContext(ctx, "Failed to persist theme", "error", err)
	}
	listeners := append([]func(core.Theme){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}

	slog.InfoContext(ctx, "Theme toggled", "theme", string(next))
	return next
}

// OnChange registers a subscriber invoked after every toggle with the new
// theme. The view layer uses this to mirror the preference into its
// document-wide style flag.
func (s *ThemeStore) OnChange(fn func(core.Theme)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *ThemeStore) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	s.theme = core.ThemeLight

	raw, ok, err := s.kv.Get(ctx, kv.KeyTheme)
	if err != nil {
		slog.WarnContext(ctx, "Failed reading persisted theme, using light", "error", err)
		return
	}
	if !ok {
		return
	}
	if t := core.Theme(raw); t.IsValid() {
		s.theme = t
	} else {
		slog.WarnContext(ctx, "Stored theme is invalid, using light", "value", raw)
	}
}
