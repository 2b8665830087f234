package redisstore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/mmynk/housepoints/internal/storage/storagetest"
)

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("HOUSEPOINTS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("HOUSEPOINTS_TEST_REDIS_ADDR not set")
	}

	store, err := New(context.Background(), Options{
		Addr:   addr,
		Prefix: fmt.Sprintf("housepoints-test-%d:", time.Now().UnixNano()),
	})
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer store.Close()

	storagetest.Run(t, store)
}

func TestNewFailsWithoutServer(t *testing.T) {
	_, err := New(context.Background(), Options{Addr: "127.0.0.1:1"})
	if err == nil {
		t.Fatal("expected ping failure against a closed port")
	}
}
