// Package worker regenerates advisory text in the background. It reacts to
// ledger change events and additionally refreshes on a timer so advice does
// not go stale when the broker is down.
package worker

import (
	"context"
	"log/slog"
	"time"

	"focusfinance/internal/advice"
	"focusfinance/internal/amqp"
	"focusfinance/internal/kv"
	"focusfinance/internal/store"
)

// AdviceWorker recomputes advice from the current ledger and persists the
// result so the web process can serve it without waiting on the remote
// service.
type AdviceWorker struct {
	ledger          *store.Ledger
	svc             *advice.Service
	kv              kv.Store
	refreshInterval time.Duration
}

func NewAdviceWorker(ledger *store.Ledger, svc *advice.Service, store kv.Store, refreshInterval time.Duration) *AdviceWorker {
	return &AdviceWorker{
		ledger:          ledger,
		svc:             svc,
		kv:              store,
		refreshInterval: refreshInterval,
	}
}

// HandleLedgerEvent processes a single ledger change event. Advice
// regeneration never fails; the returned error is always nil so deliveries
// are acked.
func (w *AdviceWorker) HandleLedgerEvent(ctx context.Context, msg *amqp.LedgerEventMessage) error {
	slog.InfoContext(ctx, "Processing ledger event",
		"transaction_id", msg.TransactionID,
		"action", msg.Action)
	w.refresh(ctx)
	return nil
}

// Run refreshes advice on startup and then on every tick until ctx is
// cancelled.
func (w *AdviceWorker) Run(ctx context.Context) error {
	w.refresh(ctx)

	ticker := time.NewTicker(w.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Advice worker stopping", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *AdviceWorker) refresh(ctx context.Context) {
	text := w.svc.Refresh(ctx, w.ledger.List(ctx))
	if err := w.kv.Set(ctx, kv.KeyAdvice, text); err != nil {
		slog.ErrorContext(ctx, "Failed to persist advice", "error", err)
		return
	}
	slog.DebugContext(ctx, "Advice refreshed", "length", len(text))
}
