package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/housepoints/internal/storage"
	"github.com/mmynk/housepoints/internal/storage/storagetest"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "housepoints-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store, dbPath
}

func TestSQLiteStore(t *testing.T) {
	store, _ := newTestStore(t)
	defer store.Close()

	storagetest.Run(t, store)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	store, dbPath := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, storage.KeySession, []byte(`{"id":"u1"}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, storage.KeySession)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != `{"id":"u1"}` {
		t.Errorf("Get after reopen = %s", got)
	}
}
