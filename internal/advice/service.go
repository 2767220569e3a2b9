package advice

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"focusfinance/internal/cache"
	"focusfinance/internal/core"
)

const (
	defaultCacheSize = 32
	defaultCacheTTL  = 10 * time.Minute
)

// Service turns ledger snapshots into advisory text. Refresh calls are
// numbered; when refreshes overlap, only the most recently requested result
// is kept so a slow response can never overwrite a newer one.
type Service struct {
	gen     Generator
	timeout time.Duration
	cache   *cache.LRUCache[string]

	generation atomic.Uint64

	mu     sync.Mutex
	latest string
}

func NewService(gen Generator, timeout time.Duration) *Service {
	return &Service{
		gen:     gen,
		timeout: timeout,
		cache:   cache.NewLRUCache[string](defaultCacheSize, defaultCacheTTL),
		latest:  OnboardingMessage,
	}
}

// Latest returns the most recently produced advice string.
func (s *Service) Latest() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Refresh produces advice for the given ledger snapshot and returns it. An
// empty ledger yields the onboarding message without touching the remote
// service; a remote failure yields the fallback message and a log line. The
// returned string is always usable.
func (s *Service) Refresh(ctx context.Context, ledger []core.Transaction) string {
	gen := s.generation.Add(1)

	if len(ledger) == 0 {
		return s.publish(ctx, gen, OnboardingMessage)
	}

	key := Fingerprint(ledger)
	if cached, ok := s.cache.Get(key); ok {
		return s.publish(ctx, gen, cached)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.gen.Generate(ctx, BuildPrompt(ledger))
	if err != nil {
		slog.WarnContext(ctx, "Advice generation failed, using fallback", "error", err)
		return s.publish(ctx, gen, FallbackMessage)
	}
	if text == "" {
		text = EncouragementMessage
	}

	s.cache.Set(key, text)
	return s.publish(ctx, gen, text)
}

// publish installs text as the latest advice unless a newer refresh has
// started in the meantime, in which case the stale result is returned to the
// caller but not stored.
func (s *Service) publish(ctx context.Context, gen uint64, text string) string {
	if s.generation.Load() != gen {
		slog.DebugContext(ctx, "Discarding superseded advice result")
		return text
	}
	s.mu.Lock()
	s.latest = text
	s.mu.Unlock()
	return text
}
