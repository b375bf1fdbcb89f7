package catalog

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	c := NewCache(5 * time.Minute)
	c.Put("k", 42)

	v, ok := c.Get("k")
	if !ok || v.(int) != 42 {
		t.Fatalf("Get = %v, %v; want 42, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("missing key must not hit")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(5 * time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }
	c.Put("k", "v")

	c.now = func() time.Time { return base.Add(4 * time.Minute) }
	if _, ok := c.Get("k"); !ok {
		t.Error("entry must still be fresh inside the TTL")
	}

	c.now = func() time.Time { return base.Add(6 * time.Minute) }
	if _, ok := c.Get("k"); ok {
		t.Error("entry must expire after the TTL")
	}
	// Expired entries are evicted, not just hidden.
	c.now = func() time.Time { return base }
	if _, ok := c.Get("k"); ok {
		t.Error("expired entry must be gone")
	}
}

func TestCacheDisabled(t *testing.T) {
	c := NewCache(0)
	c.Put("k", "v")
	if _, ok := c.Get("k"); ok {
		t.Error("a non-positive TTL must disable caching")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache(time.Minute)
	c.Put("k", "v")
	c.Invalidate("k")
	if _, ok := c.Get("k"); ok {
		t.Error("invalidated key must miss")
	}
}

func TestCacheKeyOrderIndependent(t *testing.T) {
	a := CacheKey("t@x.hu", []string{"Festés", "Burkolás"})
	b := CacheKey("t@x.hu", []string{"Burkolás", "Festés"})
	if a != b {
		t.Errorf("keys differ for the same category set: %q vs %q", a, b)
	}
	if CacheKey("t@x.hu", nil) == a {
		t.Error("empty category set must not collide with a non-empty one")
	}
}
