package worker

import (
	"context"
	"testing"
	"time"

	"focusfinance/internal/advice"
	"focusfinance/internal/amqp"
	"focusfinance/internal/kv"
	"focusfinance/internal/kv/memory"
	"focusfinance/internal/store"

	"focusfinance/internal/core"
)

type staticGenerator struct{ text string }

func (g staticGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.text, nil
}

func TestHandleLedgerEventPersistsAdvice(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	ledger := store.NewLedger(mem)
	ledger.Add(ctx, store.AddParams{
		Type: core.TypeExpense, Amount: 12, Category: "Food", Description: "lunch", Date: "2025-06-01",
	})

	svc := advice.NewService(staticGenerator{text: "watch the food budget"}, time.Second)
	w := NewAdviceWorker(ledger, svc, mem, time.Hour)

	msg := amqp.NewLedgerEventMessage("tx-1", amqp.ActionCreated)
	if err := w.HandleLedgerEvent(ctx, msg); err != nil {
		t.Fatalf("HandleLedgerEvent: %v", err)
	}

	stored, ok, err := mem.Get(ctx, kv.KeyAdvice)
	if err != nil || !ok {
		t.Fatalf("advice not persisted: ok=%v err=%v", ok, err)
	}
	if stored != "watch the food budget" {
		t.Fatalf("persisted advice = %q", stored)
	}
}

func TestHandleLedgerEventEmptyLedger(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	svc := advice.NewService(staticGenerator{text: "unused"}, time.Second)
	w := NewAdviceWorker(store.NewLedger(mem), svc, mem, time.Hour)

	w.HandleLedgerEvent(ctx, amqp.NewLedgerEventMessage("tx-gone", amqp.ActionDeleted))

	stored, _, _ := mem.Get(ctx, kv.KeyAdvice)
	if stored != advice.OnboardingMessage {
		t.Fatalf("empty ledger advice = %q, want onboarding message", stored)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	mem := memory.New()
	svc := advice.NewService(staticGenerator{text: "ok"}, time.Second)
	w := NewAdviceWorker(store.NewLedger(mem), svc, mem, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	// The startup refresh persisted advice before the cancel
	if _, ok, _ := mem.Get(context.Background(), kv.KeyAdvice); !ok {
		t.Fatal("startup refresh should persist advice")
	}
}
