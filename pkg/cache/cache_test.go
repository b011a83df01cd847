package cache

import (
	"testing"
	"time"
)

func TestMemoryCacheSetGetDelete(t *testing.T) {
	c := NewMemoryCache()

	if v, err := c.Get("missing"); err != nil || v != "" {
		t.Fatalf("missing key should be empty without error, got %q, %v", v, err)
	}

	if err := c.Set("k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := c.Get("k"); v != "v" {
		t.Fatalf("Get = %q, want %q", v, "v")
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if v, _ := c.Get("k"); v != "" {
		t.Fatalf("deleted key should be empty, got %q", v)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	if err := c.Set("k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := c.Get("k"); v != "v" {
		t.Fatalf("entry should still be live, got %q", v)
	}
	time.Sleep(20 * time.Millisecond)
	if v, _ := c.Get("k"); v != "" {
		t.Fatalf("expired entry should read as empty, got %q", v)
	}
}

func TestMemoryCacheAcceptsBytes(t *testing.T) {
	c := NewMemoryCache()
	if err := c.Set("k", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := c.Get("k"); v != "payload" {
		t.Fatalf("Get = %q, want %q", v, "payload")
	}
}
