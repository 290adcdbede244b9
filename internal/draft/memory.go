// internal/draft/memory.go
//
// In-process draft store for tests and single-node development.

package draft

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	draft   Draft
	expires time.Time
}

// MemoryStore keeps drafts in a map with lazy expiry.
type MemoryStore struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]memEntry
	now func() time.Time
}

// NewMemoryStore builds a MemoryStore.  ttl <= 0 falls back to
// DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl: ttl,
		m:   make(map[string]memEntry),
		now: time.Now,
	}
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.UpdatedAt = s.now().UTC()
	s.m[d.TenantID] = memEntry{draft: d, expires: s.now().Add(s.ttl)}
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, tenantID string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.m[tenantID]
	if !ok || s.now().After(ent.expires) {
		delete(s.m, tenantID)
		return Draft{}, ErrNotFound
	}
	return ent.draft, nil
}

// Touch implements Store.
func (s *MemoryStore) Touch(_ context.Context, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.m[tenantID]
	if !ok || s.now().After(ent.expires) {
		delete(s.m, tenantID)
		return ErrNotFound
	}
	ent.expires = s.now().Add(s.ttl)
	s.m[tenantID] = ent
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, tenantID)
	return nil
}
