// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *MemoryCache {
	t.Helper()
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := newTestCache(t)

	if _, err := c.Get(context.Background(), "absent"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("err = %v, want ErrCacheMiss after expiry", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("err = %v, want ErrCacheMiss after delete", err)
	}
}

func TestMemoryCache_MaxSizeEviction(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute, MaxSize: 2})
	defer c.Close()

	if err := c.Set(ctx, "a", []byte("1"), time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, "b", []byte("2"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, "c", []byte("3"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// "a" expires soonest and should have been evicted
	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("a should be evicted, got err = %v", err)
	}
	if _, err := c.Get(ctx, "c"); err != nil {
		t.Errorf("c should remain, got err = %v", err)
	}
}

func TestMemoryCache_Closed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	c.Close()

	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Get after Close = %v, want ErrCacheClosed", err)
	}
	if err := c.Set(ctx, "k", nil, 0); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Set after Close = %v, want ErrCacheClosed", err)
	}
}

func TestTypedRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	type item struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	want := []item{{1, "a"}, {2, "b"}}
	if err := SetTyped(ctx, c, "items", want, 0); err != nil {
		t.Fatalf("SetTyped: %v", err)
	}

	got, err := GetTyped[[]item](ctx, c, "items")
	if err != nil {
		t.Fatalf("GetTyped: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("GetTyped = %+v, want %+v", got, want)
	}
}

func TestNew_MemoryFallback(t *testing.T) {
	// Unreachable Redis must fall back to the memory backend
	c := New(Config{
		RedisURL:   "redis://127.0.0.1:1/0",
		DefaultTTL: time.Minute,
	})
	defer c.Close()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("New with unreachable redis = %T, want *MemoryCache", c)
	}
}
