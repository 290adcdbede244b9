// internal/tenant/cache.go
//
// Read cache for resolved tenants.
//
// Context
//   The domain-preview and later onboarding steps resolve tenants by
//   slug on nearly every request.  The cache lazily loads records
//   through the repository, collapses concurrent loads for the same
//   slug with singleflight, and evicts entries on idle TTL or LRU
//   pressure from a background loop.

package tenant

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/MS250871/my-saas-demo/internal/metrics"
)

// Static defaults.  Override through the onboarding config if desired.
const (
	IdleTTL       = 30 * time.Minute
	MaxEntries    = 1000
	EvictInterval = 5 * time.Minute
)

type cacheEntry struct {
	tenant   *Tenant
	lastSeen int64 // UnixNano
}

// Cache lazily loads tenants by slug, stores them in a sync.Map, and
// evicts them on idle TTL or LRU pressure.
type Cache struct {
	repo        *Repository
	sfg         singleflight.Group
	m           sync.Map
	evictTicker *time.Ticker
	idleTTL     time.Duration
	maxEntries  int
	log         *zap.SugaredLogger
}

// NewCache constructs a Cache and starts the background evictor.
func NewCache(repo *Repository, idleTTL time.Duration, maxEntries int, log *zap.SugaredLogger) *Cache {
	c := &Cache{
		repo:       repo,
		idleTTL:    idleTTL,
		maxEntries: maxEntries,
		log:        log,
	}
	c.evictTicker = time.NewTicker(EvictInterval)
	go c.evictLoop()
	return c
}

// Get returns the Tenant for slug, loading it on demand.
func (c *Cache) Get(ctx context.Context, slug string) (*Tenant, error) {
	if v, ok := c.m.Load(slug); ok {
		ent := v.(*cacheEntry)
		atomic.StoreInt64(&ent.lastSeen, time.Now().UnixNano())
		return ent.tenant, nil
	}

	v, err, _ := c.sfg.Do(slug, func() (interface{}, error) {
		// Double-check after singleflight barrier.
		if v, ok := c.m.Load(slug); ok {
			ent := v.(*cacheEntry)
			atomic.StoreInt64(&ent.lastSeen, time.Now().UnixNano())
			return ent.tenant, nil
		}
		ten, err := c.repo.BySlug(ctx, slug)
		if err != nil {
			metrics.TenantLoadErrorsTotal.Inc()
			return nil, err
		}
		c.m.Store(slug, &cacheEntry{
			tenant:   ten,
			lastSeen: time.Now().UnixNano(),
		})
		metrics.TenantLoadTotal.Inc()
		metrics.ActiveTenants.Inc()
		return ten, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tenant), nil
}

// Invalidate drops slug from the cache; the next Get reloads it.
func (c *Cache) Invalidate(slug string) {
	if _, ok := c.m.LoadAndDelete(slug); ok {
		metrics.ActiveTenants.Dec()
	}
}

// Close stops the background evictor.
func (c *Cache) Close() { c.evictTicker.Stop() }
