package caching

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	key := "abc123"
	if _, ok := cache.Get(key); ok {
		t.Error("Get() on empty cache = hit, want miss")
	}

	if err := cache.Set(key, []byte(`{"foo": 1}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, ok := cache.Get(key)
	if !ok {
		t.Fatal("Get() after Set() = miss, want hit")
	}
	if string(data) != `{"foo": 1}` {
		t.Errorf("Get() = %q", string(data))
	}
}

func TestCache_Expiry(t *testing.T) {
	cache, err := NewCache(t.TempDir(), -time.Second)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := cache.Set("key", []byte("data")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// TTL already elapsed, every lookup is a miss.
	if _, ok := cache.Get("key"); ok {
		t.Error("Get() on expired entry = hit, want miss")
	}
}
