package main

import (
	"context"
	"fmt"

	"github.com/mmynk/housepoints/internal/config"
	"github.com/mmynk/housepoints/internal/storage"
	"github.com/mmynk/housepoints/internal/storage/memory"
	"github.com/mmynk/housepoints/internal/storage/postgres"
	"github.com/mmynk/housepoints/internal/storage/redisstore"
	"github.com/mmynk/housepoints/internal/storage/sqlite"
)

// openStore connects the blob store backend named in cfg.
func openStore(ctx context.Context, cfg config.Config) (storage.BlobStore, error) {
	switch cfg.Store {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil
	case "redis":
		store, err := redisstore.New(ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return store, nil
	case "postgres":
		store, err := postgres.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
