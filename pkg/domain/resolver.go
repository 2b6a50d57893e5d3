// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/smartvillage/village-gateway/internal/cache"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/internal/types"
)

const DefaultCacheTTL = time.Hour

// cacheEntry is the cached form of a lookup, a nil Village is a tombstone
type cacheEntry struct {
	Village *types.Village `json:"village"`
}

type villageFetcher func(context.Context, string) (*types.Village, error)

type Resolver struct {
	baseDomain string
	ttl        time.Duration

	store VillageStoreInterface
	cache CacheInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NormalizeHost strips the port and any trailing dot, then lower-cases the host
func NormalizeHost(host string) string {
	h := strings.TrimSpace(host)

	if hh, _, err := net.SplitHostPort(h); err == nil {
		h = hh
	}

	return strings.ToLower(strings.TrimSuffix(h, "."))
}

// Classify maps a host onto the tenant space, returning the kind and the lookup value
// (the slug for subdomains, the host itself for custom domains)
func Classify(host, baseDomain string) (Kind, string) {
	h := NormalizeHost(host)
	base := NormalizeHost(baseDomain)

	if base != "" {
		if h == base {
			return Main, ""
		}

		if suffix := "." + base; strings.HasSuffix(h, suffix) {
			return Subdomain, strings.TrimSuffix(h, suffix)
		}
	}

	return CustomDomain, h
}

// Resolve never fails: lookup errors produce a nil village, which every consumer treats as deny
func (r *Resolver) Resolve(ctx context.Context, host string) Result {
	ctx, span := r.tracer.Start(ctx, "domain.Resolver.Resolve")
	defer span.End()

	kind, value := Classify(host, r.baseDomain)

	switch kind {
	case Main:
		return Result{Kind: Main}
	case Subdomain:
		return Result{Kind: Subdomain, Village: r.lookup(ctx, cache.SubdomainKey(value), r.store.GetVillageBySlug)}
	default:
		return Result{Kind: CustomDomain, Village: r.lookup(ctx, cache.DomainKey(value), r.store.GetVillageByDomain)}
	}
}

func (r *Resolver) lookup(ctx context.Context, key cache.Key, fetch villageFetcher) *types.Village {
	if key.Value == "" {
		return nil
	}

	if v, found := r.cached(ctx, key); found {
		return activeOnly(v)
	}

	v, err := fetch(ctx, key.Value)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		// not cached, the next request retries the store
		r.logger.Errorf("failed to look up village for %s: %v", key, err)
		return nil
	}

	v = activeOnly(v)
	r.remember(ctx, key, v)

	return v
}

func (r *Resolver) cached(ctx context.Context, key cache.Key) (*types.Village, bool) {
	data, found, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warnf("village cache read failed for %s, falling back to storage: %v", key, err)
		r.recordLookup(key, "error")
		return nil, false
	}

	if !found {
		r.recordLookup(key, "miss")
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		r.logger.Warnf("discarding undecodable village cache entry %s: %v", key, err)
		r.recordLookup(key, "miss")
		return nil, false
	}

	r.recordLookup(key, "hit")
	return entry.Village, true
}

func (r *Resolver) remember(ctx context.Context, key cache.Key, v *types.Village) {
	data, err := json.Marshal(cacheEntry{Village: v})
	if err != nil {
		r.logger.Errorf("failed to encode village cache entry %s: %v", key, err)
		return
	}

	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		r.logger.Warnf("failed to write village cache entry %s: %v", key, err)
	}
}

func (r *Resolver) recordLookup(key cache.Key, result string) {
	tags := map[string]string{"kind": string(key.Kind), "result": result}
	if err := r.monitor.SetCacheLookupMetric(tags, 1); err != nil {
		r.logger.Debugf("failed to record cache lookup: %v", err)
	}
}

// Invalidate drops every cache entry that could resolve to one of the given villages.
// Pass both the previous and the updated record when a slug or domain changes.
func (r *Resolver) Invalidate(ctx context.Context, villages ...*types.Village) error {
	ctx, span := r.tracer.Start(ctx, "domain.Resolver.Invalidate")
	defer span.End()

	keys := InvalidationKeys(villages...)
	if len(keys) == 0 {
		return nil
	}

	if err := r.cache.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to invalidate village cache: %w", err)
	}

	return nil
}

// InvalidationKeys lists the distinct cache keys a set of village records can occupy
func InvalidationKeys(villages ...*types.Village) []cache.Key {
	seen := make(map[cache.Key]struct{})
	keys := make([]cache.Key, 0, 2*len(villages))

	add := func(k cache.Key) {
		if k.Value == "" {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	for _, v := range villages {
		if v == nil {
			continue
		}
		add(cache.SubdomainKey(strings.ToLower(v.Slug)))
		add(cache.DomainKey(NormalizeHost(v.CustomDomain())))
	}

	return keys
}

func activeOnly(v *types.Village) *types.Village {
	if v == nil || !v.IsActive {
		return nil
	}
	return v
}

func NewResolver(
	baseDomain string,
	store VillageStoreInterface,
	c CacheInterface,
	ttl time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	r := new(Resolver)

	r.baseDomain = NormalizeHost(baseDomain)
	r.ttl = ttl
	if r.ttl <= 0 {
		r.ttl = DefaultCacheTTL
	}

	r.store = store
	r.cache = c

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
