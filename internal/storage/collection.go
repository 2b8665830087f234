package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Load decodes the JSON collection stored under key. When the key is absent
// the seed value is returned instead; nothing is written back.
func Load[T any](ctx context.Context, s BlobStore, key string, seed func() T) (T, error) {
	var zero T
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return seed(), nil
	}
	if err != nil {
		return zero, fmt.Errorf("failed to load %s: %w", key, err)
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return v, nil
}

// Save encodes v as JSON and replaces the blob stored under key.
func Save[T any](ctx context.Context, s BlobStore, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
