// internal/draft/memory_test.go

package draft

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	if _, err := s.Get(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id: err = %v, want ErrNotFound", err)
	}

	d := Draft{TenantID: "t-1", Slug: "acme-corp", Step: "plan"}
	if err := s.Put(ctx, d); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, "t-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Slug != "acme-corp" || got.Step != "plan" || got.UpdatedAt.IsZero() {
		t.Fatalf("got %+v", got)
	}

	if err := s.Delete(ctx, "t-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, "t-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted id: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	clock := time.Now()
	s.now = func() time.Time { return clock }

	if err := s.Put(ctx, Draft{TenantID: "t-1", Step: "branding"}); err != nil {
		t.Fatal(err)
	}

	clock = clock.Add(30 * time.Minute)
	if err := s.Touch(ctx, "t-1"); err != nil {
		t.Fatal(err)
	}

	// Touch pushed the deadline out; 50 more minutes is still alive.
	clock = clock.Add(50 * time.Minute)
	if _, err := s.Get(ctx, "t-1"); err != nil {
		t.Fatal(err)
	}

	clock = clock.Add(time.Hour)
	if _, err := s.Get(ctx, "t-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired draft still readable: %v", err)
	}
	if err := s.Touch(ctx, "t-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("touch on expired draft: %v", err)
	}
}
