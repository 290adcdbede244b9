// internal/location/cache.go
//
// Memoizing wrapper for location searches.
//
// Country and state lists barely change, so repeated keystroke queries
// are served from a small in-process LRU with a TTL instead of hitting
// the database on every debounce tick.

package location

import (
	"context"
	"fmt"
	"time"

	"github.com/MS250871/my-saas-demo/internal/cache"
	"github.com/MS250871/my-saas-demo/internal/options"
)

// DefaultCacheTTL is how long a search result stays fresh.
const DefaultCacheTTL = 10 * time.Minute

type cachedResult struct {
	opts    []options.Option
	fetched time.Time
}

// CachedSearcher wraps another Searcher with an LRU + TTL layer.
type CachedSearcher struct {
	next options.Searcher
	ttl  time.Duration
	lru  *cache.LRU[string, cachedResult]
}

// NewCachedSearcher wraps next.  capacity bounds distinct cached
// queries; ttl <= 0 falls back to DefaultCacheTTL.
func NewCachedSearcher(next options.Searcher, capacity int, ttl time.Duration) *CachedSearcher {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSearcher{
		next: next,
		ttl:  ttl,
		lru:  cache.New[string, cachedResult](capacity),
	}
}

// Countries implements options.Searcher.
func (c *CachedSearcher) Countries(ctx context.Context, query string) ([]options.Option, error) {
	return c.lookup(fmt.Sprintf("c|%s", query), func() ([]options.Option, error) {
		return c.next.Countries(ctx, query)
	})
}

// States implements options.Searcher.
func (c *CachedSearcher) States(ctx context.Context, countryID int64, query string) ([]options.Option, error) {
	return c.lookup(fmt.Sprintf("s|%d|%s", countryID, query), func() ([]options.Option, error) {
		return c.next.States(ctx, countryID, query)
	})
}

// Cities implements options.Searcher.
func (c *CachedSearcher) Cities(ctx context.Context, stateID int64, query string) ([]options.Option, error) {
	return c.lookup(fmt.Sprintf("ci|%d|%s", stateID, query), func() ([]options.Option, error) {
		return c.next.Cities(ctx, stateID, query)
	})
}

func (c *CachedSearcher) lookup(key string, fetch func() ([]options.Option, error)) ([]options.Option, error) {
	if hit, ok := c.lru.Get(key); ok && time.Since(hit.fetched) < c.ttl {
		out := make([]options.Option, len(hit.opts))
		copy(out, hit.opts)
		return out, nil
	}
	opts, err := fetch()
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, cachedResult{opts: opts, fetched: time.Now()})
	out := make([]options.Option, len(opts))
	copy(out, opts)
	return out, nil
}
