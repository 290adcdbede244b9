// internal/options/resolver.go
//
// Async option resolver for search-as-you-type fields.
//
// Context
//   Combobox-style fields (country, state, city pickers) re-query their
//   option source on every keystroke and whenever a parent selection
//   changes.  Requests overlap freely, so ordering is enforced here:
//   each trigger takes the next sequence number, and a response is
//   applied only while its number is still the newest issued.  A result
//   that arrives late is dropped, never aborted at the transport layer.
//   Last request wins; first response does not.
//
// Workflow
//   •  SetQuery(q)  – keystroke; records q and launches a fetch.
//   •  Invalidate() – dependency change; re-fetches with the CURRENT q.
//   •  Options()    – snapshot of the most recently applied result.
//   •  Quiesce()    – blocks until no fetch is in flight (tests, shutdown).
//
// Notes
//   •  A failed fetch degrades to an empty option list for that trigger.
//      The field stays usable; nothing propagates to the caller.

package options

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/MS250871/my-saas-demo/internal/metrics"
)

// Option is one selectable {id, name} row.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FetchFunc maps a free-text query to a ranked option list.
type FetchFunc func(ctx context.Context, query string) ([]Option, error)

// Resolver owns the option state for exactly one field.
type Resolver struct {
	fetch FetchFunc

	mu      sync.Mutex
	seq     uint64
	query   string
	options []Option

	wg sync.WaitGroup
}

// NewResolver builds a Resolver around fetch.  The option list starts
// empty; callers usually issue SetQuery("") to load the unfiltered set.
func NewResolver(fetch FetchFunc) *Resolver {
	return &Resolver{fetch: fetch, options: []Option{}}
}

// SetQuery records the field's text query and launches a fetch for it.
func (r *Resolver) SetQuery(q string) {
	r.mu.Lock()
	r.query = q
	r.launchLocked()
	r.mu.Unlock()
}

// Invalidate re-fetches using the current query.  Called when a
// dependency (a parent selection) changes under the field.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.launchLocked()
	r.mu.Unlock()
}

// Query returns the current text query.
func (r *Resolver) Query() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.query
}

// Options returns a copy of the most recently applied option list.
func (r *Resolver) Options() []Option {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Option, len(r.options))
	copy(out, r.options)
	return out
}

// Quiesce waits for all in-flight fetches to settle.  Callers must not
// trigger new fetches concurrently with Quiesce.
func (r *Resolver) Quiesce() { r.wg.Wait() }

// launchLocked stamps the next sequence number and runs the fetch on a
// fresh goroutine.  Caller holds r.mu.
func (r *Resolver) launchLocked() {
	r.seq++
	seq := r.seq
	query := r.query

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		metrics.OptionFetchTotal.Inc()

		opts, err := r.fetch(context.Background(), query)
		if err != nil {
			// Degrade to an empty list; the field stays usable.
			metrics.OptionFetchErrorsTotal.Inc()
			zap.S().Debugw("option fetch failed", "query", query, "err", err)
			opts = nil
		}
		if opts == nil {
			opts = []Option{}
		}

		r.mu.Lock()
		defer r.mu.Unlock()
		if seq != r.seq {
			// A newer request was issued while this one was in flight.
			metrics.OptionFetchStaleTotal.Inc()
			return
		}
		r.options = opts
	}()
}
