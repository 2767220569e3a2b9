// Package services orchestrates store mutations with the optional event
// broker. Broker outages degrade to log lines; store semantics are never
// affected.
package services

import (
	"context"
	"log/slog"

	"focusfinance/internal/amqp"
	"focusfinance/internal/core"
	"focusfinance/internal/store"
)

// EventPublisher is the broker-facing slice of the AMQP client.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, transactionID, action string) error
}

// LedgerService wraps the ledger store and announces mutations on the event
// bus so workers can refresh derived data.
type LedgerService struct {
	ledger    *store.Ledger
	publisher EventPublisher
}

func NewLedgerService(ledger *store.Ledger, publisher EventPublisher) *LedgerService {
	return &LedgerService{ledger: ledger, publisher: publisher}
}

// List returns the current ledger, newest first.
func (s *LedgerService) List(ctx context.Context) []core.Transaction {
	return s.ledger.List(ctx)
}

// Add records a transaction and publishes a created event. A publish failure
// is logged; the transaction is already persisted locally.
func (s *LedgerService) Add(ctx context.Context, p store.AddParams) (core.Transaction, error) {
	tx, err := s.ledger.Add(ctx, p)
	if err != nil {
		return core.Transaction{}, err
	}

	if err := s.publish(ctx, tx.ID, amqp.ActionCreated); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger created event",
			"id", tx.ID, "error", err)
	}
	return tx, nil
}

// Remove deletes a transaction and publishes a deleted event when anything
// was actually removed.
func (s *LedgerService) Remove(ctx context.Context, id string) bool {
	removed := s.ledger.Remove(ctx, id)
	if !removed {
		return false
	}

	if err := s.publish(ctx, id, amqp.ActionDeleted); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger deleted event",
			"id", id, "error", err)
	}
	return true
}

func (s *LedgerService) publish(ctx context.Context, id, action string) error {
	if s.publisher == nil {
		slog.DebugContext(ctx, "Event publisher not available, skipping ledger event")
		return nil
	}
	return s.publisher.PublishLedgerEvent(ctx, id, action)
}
