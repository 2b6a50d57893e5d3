// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"testing"
	"time"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{SubdomainKey("riverside"), "tenant:subdomain:riverside"},
		{DomainKey("riverside.org"), "tenant:domain:riverside.org"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			if got := test.key.String(); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestMemoryCache_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	key := SubdomainKey("riverside")

	if _, found, err := c.Get(ctx, key); found || err != nil {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}

	if err := c.Set(ctx, key, []byte("value"), time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, found, err := c.Get(ctx, key)
	if err != nil || !found || string(val) != "value" {
		t.Fatalf("expected hit with value, got %q found=%v err=%v", val, found, err)
	}

	// returned slices must not alias the stored value
	val[0] = 'X'
	val, _, _ = c.Get(ctx, key)
	if string(val) != "value" {
		t.Errorf("stored value was mutated through a returned slice: %q", val)
	}

	if err := c.Delete(ctx, key, DomainKey("unknown.org")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, found, _ := c.Get(ctx, key); found {
		t.Error("expected miss after delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	key := DomainKey("riverside.org")
	_ = c.Set(ctx, key, []byte("value"), time.Hour)

	now = now.Add(59 * time.Minute)
	if _, found, _ := c.Get(ctx, key); !found {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(time.Minute)
	if _, found, _ := c.Get(ctx, key); found {
		t.Fatal("expected miss once the ttl elapsed")
	}
}

func TestMemoryCache_KeysAreTagged(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_ = c.Set(ctx, SubdomainKey("riverside"), []byte("sub"), time.Hour)

	if _, found, _ := c.Get(ctx, DomainKey("riverside")); found {
		t.Error("a subdomain entry must not satisfy a custom domain lookup")
	}
}
