package cache

import (
	"strings"
	"testing"
)

func TestDeriveKey_OrderIndependent(t *testing.T) {
	a := DeriveKey("jobs", map[string]any{"a": 1, "b": 2})
	b := DeriveKey("jobs", map[string]any{"b": 2, "a": 1})
	if a != b {
		t.Errorf("expected identical keys, got %s and %s", a, b)
	}
}

func TestDeriveKey_DistinguishesParams(t *testing.T) {
	a := DeriveKey("jobs", map[string]any{"category": "tech"})
	b := DeriveKey("jobs", map[string]any{"category": "finance"})
	if a == b {
		t.Error("expected different params to derive different keys")
	}
}

func TestDeriveKey_Shape(t *testing.T) {
	key := DeriveKey("analytics_demand", map[string]any{"category": "all"})
	if !strings.HasPrefix(key, "cache:analytics_demand:") {
		t.Errorf("unexpected key shape: %s", key)
	}
	digest := strings.TrimPrefix(key, "cache:analytics_demand:")
	if len(digest) != 16 {
		t.Errorf("expected 16-hex digest, got %q", digest)
	}
}

func TestDeriveKey_NilParams(t *testing.T) {
	if DeriveKey("scraped_jobs", nil) != DeriveKey("scraped_jobs", map[string]any{}) {
		t.Error("expected nil and empty params to derive the same key")
	}
}
