// Package storage contains the key-value persistence adapters the state
// stores write through. Each backend has its own file with the same contract:
// string blobs addressed by string keys, single-key atomicity, and nothing
// more. No business logic lives here.
package storage

import "context"

// Store is the persistence contract consumed by the state stores.
//
// Load reports absence via the second return value rather than an error, so
// callers can distinguish "no record yet" from a real I/O failure.
type Store interface {
	// Load returns the blob stored under key, or ok=false when no record
	// exists.
	Load(ctx context.Context, key string) (value string, ok bool, err error)

	// Save writes value under key, replacing any existing record.
	Save(ctx context.Context, key, value string) error

	// Remove deletes the record under key. Removing an absent key is not an
	// error.
	Remove(ctx context.Context, key string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}
