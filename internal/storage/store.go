// Package storage provides abstractions for persistent data storage.
//
// Every collection is persisted as one opaque blob under a fixed key: read
// whole at startup, rewritten whole on every mutation. Any backend that can
// get and put a value by key satisfies BlobStore.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written or was deleted.
var ErrNotFound = errors.New("key not found")

// Keys of the persisted slots.
const (
	KeySession    = "school_current_user"
	KeyUsers      = "school_users_db"
	KeyHouses     = "school_houses"
	KeyCategories = "school_scoring_categories"
	KeyEvents     = "school_points_records"
)

// BlobStore defines the interface for whole-blob key-value persistence.
// This abstraction allows swapping storage backends (memory, SQLite, Redis,
// PostgreSQL) without changing the application layer.
type BlobStore interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the blob stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
