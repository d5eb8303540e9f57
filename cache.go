package seokit

import (
	"context"
	"sync"
	"time"

	"github.com/eringen/seokit/sitemap"
)

// SitemapCache is an in-memory cache of the last sitemap generation with TTL.
type SitemapCache struct {
	mu      sync.RWMutex
	result  *sitemap.Result
	fetched time.Time
	ttl     time.Duration
	gen     *sitemap.Generator
	routes  func() []sitemap.Route
}

// NewSitemapCache creates a SitemapCache that regenerates from routes with
// gen once ttl has elapsed.
func NewSitemapCache(gen *sitemap.Generator, routes func() []sitemap.Route, ttl time.Duration) *SitemapCache {
	return &SitemapCache{gen: gen, routes: routes, ttl: ttl}
}

func (c *SitemapCache) valid() bool {
	return c.result != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh generation.
func (c *SitemapCache) Invalidate() {
	c.mu.Lock()
	c.result = nil
	c.mu.Unlock()
}

// Get returns the cached result, generating it when stale.
// It tries a read lock first; only takes a write lock if a reload is needed.
// Generation outlives a cancelled ctx, and a result with failed routes is
// returned but not cached, so the next call retries.
func (c *SitemapCache) Get(ctx context.Context) (*sitemap.Result, error) {
	c.mu.RLock()
	if c.valid() {
		res := c.result
		c.mu.RUnlock()
		return res, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.result, nil
	}
	res, err := c.gen.Generate(context.WithoutCancel(ctx), c.routes())
	if err != nil {
		return nil, err
	}
	if len(res.Failed) > 0 {
		return res, nil
	}
	c.result = res
	c.fetched = time.Now()
	return res, nil
}
