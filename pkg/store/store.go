// Package store defines the shared key-value record store boundary.
//
// The store holds JSON-encoded collections under named string keys and is
// shared with other processes (the admin application, other sessions).
// Writes are atomic per key; there is no cross-key transaction and no
// subscribe primitive, so readers must assume any key can change between
// two operations.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Store is the persistence boundary for named string keys.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set atomically replaces the value stored under key.
	Set(ctx context.Context, key string, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the store.
	Close() error
}

// Backend names accepted in configuration.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)
