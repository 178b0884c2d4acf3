package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close() //nolint:errcheck

	ctx := context.Background()

	if err := store.Set(ctx, "profile:1", []byte(`{"exploration":60}`), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, found, err := store.Get(ctx, "profile:1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if !found {
		t.Fatal("expected key to be found")
	}

	if string(value) != `{"exploration":60}` {
		t.Errorf("unexpected value: %s", value)
	}
}

func TestMemoryStore_MissingKey(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close() //nolint:errcheck

	_, found, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if found {
		t.Error("expected missing key to report found=false")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close() //nolint:errcheck

	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	_, found, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if found {
		t.Error("expected key to expire")
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close() //nolint:errcheck

	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, found, _ := store.Get(ctx, "k")
	if found {
		t.Error("expected deleted key to be gone")
	}
}
