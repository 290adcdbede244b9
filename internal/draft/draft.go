// internal/draft/draft.go
//
// Server-side onboarding draft session.
//
// Context
//   Each onboarding run is keyed by the tenant id minted at the
//   organization step.  Later steps look the draft up before rendering
//   or accepting a submit; an unknown id is an error, never a silent
//   fallback to some placeholder tenant.  Drafts expire on a TTL so
//   abandoned runs clean themselves up.

package draft

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is how long an idle draft survives.
const DefaultTTL = 24 * time.Hour

// ErrNotFound is returned for unknown or expired tenant ids.
var ErrNotFound = errors.New("onboarding draft not found")

// Draft is one onboarding run's progress record.
type Draft struct {
	TenantID  string    `json:"tenant_id"`
	Slug      string    `json:"slug"`
	Step      string    `json:"step"`
	PlanID    string    `json:"plan_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists drafts with a TTL.
type Store interface {
	// Put writes the draft and refreshes its TTL.
	Put(ctx context.Context, d Draft) error
	// Get returns the draft for tenantID, or ErrNotFound.
	Get(ctx context.Context, tenantID string) (Draft, error)
	// Touch refreshes the TTL without rewriting the payload.
	Touch(ctx context.Context, tenantID string) error
	// Delete drops the draft; deleting an absent draft is not an error.
	Delete(ctx context.Context, tenantID string) error
}
