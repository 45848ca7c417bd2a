package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStoreGetSetDelete(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	store.Set(ctx, "k1", "v1")
	value, ok := store.Get(ctx, "k1")
	if !ok || value != "v1" {
		t.Fatalf("expected v1, got %v (hit=%t)", value, ok)
	}

	store.Delete(ctx, "k1")
	if _, ok := store.Get(ctx, "k1"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestStoreTTLExpiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	ctx := t.Context()

	store.Set(ctx, "k1", "v1")
	time.Sleep(20 * time.Millisecond)

	if _, ok := store.Get(ctx, "k1"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewStore(0)
	ctx := t.Context()

	store.Set(ctx, "k1", "v1")
	time.Sleep(5 * time.Millisecond)

	if _, ok := store.Get(ctx, "k1"); !ok {
		t.Fatal("expected entry to survive with zero ttl")
	}
}

func TestStoreDeletePrefix(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	store.Set(ctx, "history::lg-1", 1)
	store.Set(ctx, "history::lg-2", 2)
	store.Set(ctx, "other::lg-1", 3)

	store.DeletePrefix(ctx, "history::")

	if _, ok := store.Get(ctx, "history::lg-1"); ok {
		t.Fatal("expected prefixed entry deleted")
	}
	if _, ok := store.Get(ctx, "history::lg-2"); ok {
		t.Fatal("expected prefixed entry deleted")
	}
	if _, ok := store.Get(ctx, "other::lg-1"); !ok {
		t.Fatal("expected unrelated entry kept")
	}
}

func TestStoreGetOrLoad(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	var loads atomic.Int64
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		value, err := store.GetOrLoad(ctx, "k1", loader)
		if err != nil {
			t.Fatalf("get or load failed: %v", err)
		}
		if value != "loaded" {
			t.Fatalf("expected loaded, got %v", value)
		}
	}

	if loads.Load() != 1 {
		t.Fatalf("expected a single load, got %d", loads.Load())
	}
}

func TestStoreGetOrLoadError(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	wantErr := errors.New("load failed")
	if _, err := store.GetOrLoad(ctx, "k1", func(context.Context) (any, error) {
		return nil, wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("expected load error, got %v", err)
	}

	// A failed load must not poison the key.
	value, err := store.GetOrLoad(ctx, "k1", func(context.Context) (any, error) {
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("get or load failed: %v", err)
	}
	if value != "recovered" {
		t.Fatalf("expected recovered, got %v", value)
	}
}

func TestStoreGetOrLoadConcurrent(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	var loads atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := store.GetOrLoad(ctx, "k1", func(context.Context) (any, error) {
				loads.Add(1)
				time.Sleep(5 * time.Millisecond)
				return fmt.Sprintf("v-%d", loads.Load()), nil
			})
			if err != nil {
				t.Errorf("get or load failed: %v", err)
				return
			}
			if value != "v-1" {
				t.Errorf("expected shared v-1, got %v", value)
			}
		}()
	}
	wg.Wait()

	if loads.Load() != 1 {
		t.Fatalf("expected a single load under contention, got %d", loads.Load())
	}
}
