package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/mmynk/housepoints/internal/storage"
	"github.com/mmynk/housepoints/internal/storage/storagetest"
)

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("HOUSEPOINTS_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("HOUSEPOINTS_TEST_POSTGRES_URL not set")
	}

	ctx := context.Background()
	store, err := New(ctx, url)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer store.Close()

	for _, key := range []string{storage.KeyEvents, storage.KeyHouses, storage.KeyCategories, storage.KeyUsers} {
		if err := store.Delete(ctx, key); err != nil {
			t.Fatalf("failed to clear %s: %v", key, err)
		}
	}

	storagetest.Run(t, store)
}
