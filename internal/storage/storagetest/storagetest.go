// Package storagetest holds the contract every storage.BlobStore must meet.
package storagetest

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mmynk/housepoints/internal/models"
	"github.com/mmynk/housepoints/internal/seed"
	"github.com/mmynk/housepoints/internal/storage"
)

// Run exercises store against the BlobStore contract. The store must start
// without any of the keys used here.
func Run(t *testing.T, store storage.BlobStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get missing key returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "contract-missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Put then Get returns the same bytes", func(t *testing.T) {
		want := []byte(`{"hello":"world"}`)
		if err := store.Put(ctx, "contract-blob", want); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := store.Get(ctx, "contract-blob")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Get = %s, want %s", got, want)
		}
	})

	t.Run("Put overwrites the whole blob", func(t *testing.T) {
		if err := store.Put(ctx, "contract-overwrite", []byte("a much longer first value")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Put(ctx, "contract-overwrite", []byte("short")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := store.Get(ctx, "contract-overwrite")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != "short" {
			t.Errorf("Get = %q, want %q", got, "short")
		}
	})

	t.Run("Delete removes the key and tolerates repeats", func(t *testing.T) {
		if err := store.Put(ctx, "contract-delete", []byte("x")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Delete(ctx, "contract-delete"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Get(ctx, "contract-delete"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := store.Delete(ctx, "contract-delete"); err != nil {
			t.Errorf("second Delete failed: %v", err)
		}
	})

	t.Run("collections round trip", func(t *testing.T) {
		events := []models.PointEvent{
			{ID: "e1", HouseID: "st", StudentName: "João", Points: 10, Reason: "Tarefa Completa",
				TeacherName: "Ms. Talita Costa", TeacherRole: models.RoleCoordinator, Timestamp: 1700000000000},
			{ID: "e2", HouseID: "gone", Points: -5, Reason: "Atraso",
				TeacherName: "Mr. Jota", TeacherRole: models.RoleTeacher, Timestamp: 1700000060000},
		}
		roundTrip(t, store, storage.KeyEvents, events)
		roundTrip(t, store, storage.KeyHouses, seed.Houses())
		roundTrip(t, store, storage.KeyCategories, seed.Categories())
		roundTrip(t, store, storage.KeyUsers, seed.Users())
	})

	t.Run("Load falls back to seed when absent", func(t *testing.T) {
		got, err := storage.Load(ctx, store, "contract-absent-houses", seed.Houses)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !reflect.DeepEqual(got, seed.Houses()) {
			t.Errorf("Load = %+v, want seed houses", got)
		}
	})
}

func roundTrip[T any](t *testing.T, store storage.BlobStore, key string, want T) {
	t.Helper()
	ctx := context.Background()
	if err := storage.Save(ctx, store, key, want); err != nil {
		t.Fatalf("Save(%s) failed: %v", key, err)
	}
	got, err := storage.Load(ctx, store, key, func() T { return *new(T) })
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", key, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip of %s:\n got  %+v\n want %+v", key, got, want)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete(%s) failed: %v", key, err)
	}
}
