package redis

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *ImageStore {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewImageStore(client)
}

func TestImageStore_PutGetDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	img := []byte{0xff, 0xd8, 0xff, 0xd9}

	if err := store.Put(ctx, "fz1", img); err != nil {
		t.Fatalf("put: %v", err)
	}

	data, found, err := store.Get(ctx, "fz1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatalf("expected a hit")
	}
	if !bytes.Equal(data, img) {
		t.Fatalf("stored bytes differ: %v", data)
	}

	if err := store.Delete(ctx, "fz1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := store.Get(ctx, "fz1"); found {
		t.Fatalf("image still present after delete")
	}
}

// A miss is reported through the found flag, never as an error.
func TestImageStore_Miss(t *testing.T) {
	store := newTestStore(t)

	data, found, err := store.Get(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("miss must not error: %v", err)
	}
	if found || data != nil {
		t.Fatalf("expected a miss, got %v", data)
	}
}

// Images for different freezers live under distinct keys.
func TestImageStore_KeyIsolation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "fz1", []byte("one")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "fz2", []byte("two")); err != nil {
		t.Fatalf("put: %v", err)
	}

	data, _, err := store.Get(ctx, "fz1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != "one" {
		t.Fatalf("keys collide: %s", data)
	}
}
