// Package store implements the mutable application stores (ledger, profile,
// theme) on top of an injected key-value persistence medium. Every mutation
// re-persists the owning store's whole record synchronously; a corrupt or
// missing persisted value degrades to defaults with a log line, never an
// error.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"focusfinance/internal/core"
	"focusfinance/internal/kv"
)

// Ledger owns the list of transactions. Insertion order is newest-first;
// deletion is the only other mutation. The full list is serialized to the
// kv medium after every mutation.
type Ledger struct {
	mu     sync.Mutex
	kv     kv.Store
	items  []core.Transaction
	loaded bool
}

// AddParams carries an already-validated transaction candidate. Amount
// parsing and description checks happen at the input boundary before the
// store is reached.
type AddParams struct {
	Type        core.TransactionType
	Amount      float64
	Category    string
	Description string
	Date        string
}

func NewLedger(store kv.Store) *Ledger {
	return &Ledger{kv: store}
}

// List returns a snapshot of the current ledger, newest first.
func (l *Ledger) List(ctx context.Context) []core.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureLoaded(ctx)
	out := make([]core.Transaction, len(l.items))
	copy(out, l.items)
	return out
}

// Add constructs a transaction with a freshly generated unique id, prepends
// it to the ledger and persists the updated list before returning. The
// returned error is a validation failure only; a persistence write failure
// is logged and the in-memory mutation stands.
func (l *Ledger) Add(ctx context.Context, p AddParams) (core.Transaction, error) {
	tx := core.Transaction{
		ID:          uuid.NewString(),
		Amount:      p.Amount,
		Category:    p.Category,
		Description: p.Description,
		Date:        p.Date,
		Type:        p.Type,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureLoaded(ctx)
	l.items = append([]core.Transaction{tx}, l.items...)
	l.persist(ctx)

	slog.InfoContext(ctx, "Transaction added",
		"id", tx.ID,
		"type", string(tx.Type),
		"category", tx.Category,
		"date", tx.Date)

	return tx, nil
}

// Remove deletes the transaction with the given id and persists the updated
// list. Removing an id that is not present is a no-op; the return value
// reports whether anything was removed.
func (l *Ledger) Remove(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureLoaded(ctx)

	for i, tx := range l.items {
		if tx.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.persist(ctx)
			slog.InfoContext(ctx, "Transaction removed", "id", id)
			return true
		}
	}
	return false
}

// ensureLoaded reads the persisted list on first access. Callers must hold mu.
func (l *Ledger) ensureLoaded(ctx context.Context) {
	if l.loaded {
		return
	}
	l.loaded = true

	raw, ok, err := l.kv.Get(ctx, kv.KeyTransactions)
	if err != nil {
		slog.WarnContext(ctx, "Failed reading persisted transactions, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}

	var items []core.Transaction
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.WarnContext(ctx, "Failed to parse stored transactions, starting empty", "error", err)
		return
	}
	l.items = items
}

// persist serializes the whole list and writes it in one call. Callers must
// hold mu.
func (l *Ledger) persist(ctx context.Context) {
	data, err := json.Marshal(l.items)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to serialize transactions", "error", err)
		return
	}
	if err := l.kv.Set(ctx, kv.KeyTransactions, string(data)); err != nil {
		slog.ErrorContext(ctx, "Failed to persist transactions", "error", err)
	}
}
