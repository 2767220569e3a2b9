package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"focusfinance/internal/core"
	"focusfinance/internal/kv"
)

var ErrEmptyUsername = errors.New("empty username")

// ProfileStore owns the single display-identity record. Updates replace the
// whole record atomically and persist it before returning.
type ProfileStore struct {
	mu      sync.Mutex
	kv      kv.Store
	profile core.Profile
	loaded  bool
}

func NewProfileStore(store kv.Store) *ProfileStore {
	return &ProfileStore{kv: store}
}

// Get returns the current profile, falling back to the first-run default
// when nothing valid is persisted.
func (s *ProfileStore) Get(ctx context.Context) core.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.profile
}

// Update replaces the whole profile record. The username must be non-empty;
// the email is stored as given (no RFC validation here) and the picture may
// be empty to fall back to the generated avatar.
func (s *ProfileStore) Update(ctx context.Context, p core.Profile) error {
	if strings.TrimSpace(p.Username) == "" {
		return ErrEmptyUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	s.profile = p
	s.persist(ctx)

	slog.InfoContext(ctx, "Profile updated", "username", p.Username)
	return nil
}

func (s *ProfileStore) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	s.profile = core.DefaultProfile()

	raw, ok, err := s.kv.Get(ctx, kv.KeyUserProfile)
	if err != nil {
		slog.WarnContext(ctx, "Failed reading persisted profile, using defaults", "error", err)
		return
	}
	if !ok {
		return
	}

	var p core.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		slog.WarnContext(ctx, "Failed to parse stored profile, using defaults", "error", err)
		return
	}
	if strings.TrimSpace(p.Username) == "" {
		slog.WarnContext(ctx, "Stored profile has no username, using defaults")
		return
	}
	s.profile = p
}

func (s *ProfileStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.profile)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to serialize profile", "error", err)
		return
	}
	if err := s.kv.Set(ctx, kv.KeyUserProfile, string(data)); err != nil {
		slog.ErrorContext(ctx, "Failed to persist profile", "error", err)
	}
}
