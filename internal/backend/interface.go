// Package backend constructs the persistence medium and event broker from
// configuration.
package backend

import (
	"context"

	"focusfinance/internal/amqp"
	"focusfinance/internal/kv"
)

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result contains the assembled persistence medium, the optional event
// broker client, and a cleanup function.
type Result struct {
	Store   kv.Store
	AMQP    *amqp.Client
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string

	// Event broker (optional, empty URL disables)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// BackendType represents the type of backend.
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid.
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
