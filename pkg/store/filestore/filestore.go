// Package filestore implements the record store on a local directory,
// one file per key. This is the default backend and matches the original
// single-device deployment of the shared store.
package filestore

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/hannahbrooks/volunteer-connect/pkg/store"
)

// Store persists each key as a file under dir. Set writes to a temp file
// in the same directory and renames it over the target, so concurrent
// readers always observe a complete value (atomic per key, as the store
// contract requires).
type Store struct {
	dir string
}

var _ store.Store = (*Store)(nil)

// New creates the directory if needed and returns a file-backed store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get returns the value stored under key, or store.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return string(data), nil
}

// Set atomically replaces the value stored under key.
func (s *Store) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for key %q: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for key %q: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace key %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *Store) Close() error {
	return nil
}

// path maps a key to a file name. Keys carry characters like ':' and '@'
// (per-identity save-list keys), so they are escaped before use.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
