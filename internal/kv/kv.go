// Package kv defines the port for the string key-value persistence medium
// backing the ledger, profile and theme stores.
package kv

import "context"

// Well-known store keys.
const (
	KeyTheme        = "theme"
	KeyTransactions = "transactions"
	KeyUserProfile  = "userProfile"
	KeyAdvice       = "advice"
)

// Store is a string-keyed, string-valued storage medium with last-write-wins
// semantics per key. Values are opaque to the medium.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key if present. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
