package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGet(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "teams:list", []string{"Miami United"})
	value, ok := store.Get(ctx, "teams:list")
	if !ok {
		t.Fatal("expected a hit")
	}
	if teams := value.([]string); len(teams) != 1 || teams[0] != "Miami United" {
		t.Fatalf("unexpected value: %v", value)
	}

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatal("missing key must be a miss")
	}
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "k", 1)
	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("entry must expire after the ttl")
	}
}

func TestStore_NoExpiryWhenTTLZero(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	store.Set(ctx, "k", 1)
	time.Sleep(5 * time.Millisecond)
	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatal("zero ttl must mean no expiry")
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "k", 1)
	store.Delete(ctx, "k")
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("deleted key must be a miss")
	}
}

func TestStore_GetOrLoad(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	var calls atomic.Int64
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		value, err := store.GetOrLoad(ctx, "k", loader)
		if err != nil {
			t.Fatalf("GetOrLoad failed: %v", err)
		}
		if value != "loaded" {
			t.Fatalf("unexpected value: %v", value)
		}
	}

	if calls.Load() != 1 {
		t.Fatalf("loader must run once, ran %d times", calls.Load())
	}
}

func TestStore_GetOrLoad_ErrorNotCached(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	var calls atomic.Int64
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return nil, fmt.Errorf("boom")
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrLoad(ctx, "k", loader); err == nil {
			t.Fatal("expected an error")
		}
	}
	if calls.Load() != 2 {
		t.Fatalf("errors must not be cached, loader ran %d times", calls.Load())
	}
}

func TestStore_GetOrLoad_Concurrent(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	var calls atomic.Int64
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond)
		return "loaded", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := store.GetOrLoad(ctx, "k", loader)
			if err != nil || value != "loaded" {
				t.Errorf("GetOrLoad = %v, %v", value, err)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("concurrent loads must collapse to one, ran %d times", calls.Load())
	}
}
