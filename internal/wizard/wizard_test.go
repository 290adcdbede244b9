// internal/wizard/wizard_test.go

package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MS250871/my-saas-demo/internal/draft"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	return NewController(draft.NewMemoryStore(time.Hour), zap.NewNop().Sugar())
}

func TestBegin_LandsOnPlanStep(t *testing.T) {
	c := newController(t)

	d, err := c.Begin(context.Background(), "t-1", "acme-corp")
	if err != nil {
		t.Fatal(err)
	}
	if d.Step != StepPlan || d.Slug != "acme-corp" {
		t.Fatalf("draft = %+v", d)
	}
	if Progress(d.Step) != 20 {
		t.Fatalf("progress = %d, want 20", Progress(d.Step))
	}
}

func TestAdvance_WalksTheFullSequence(t *testing.T) {
	c := newController(t)
	ctx := context.Background()

	if _, err := c.Begin(ctx, "t-1", "acme-corp"); err != nil {
		t.Fatal(err)
	}

	sequence := []struct {
		submit   string
		next     string
		progress int
	}{
		{StepPlan, StepBranding, 40},
		{StepBranding, StepTemplate, 60},
		{StepTemplate, StepDomain, 80},
		{StepDomain, StepComplete, 100},
	}
	for _, s := range sequence {
		d, err := c.Advance(ctx, "t-1", s.submit)
		if err != nil {
			t.Fatalf("advance via %s: %v", s.submit, err)
		}
		if d.Step != s.next {
			t.Fatalf("after %s: step = %s, want %s", s.submit, d.Step, s.next)
		}
		if Progress(d.Step) != s.progress {
			t.Fatalf("after %s: progress = %d, want %d", s.submit, Progress(d.Step), s.progress)
		}
	}
}

func TestAdvance_RejectsOutOfOrderSubmit(t *testing.T) {
	c := newController(t)
	ctx := context.Background()

	if _, err := c.Begin(ctx, "t-1", "acme-corp"); err != nil {
		t.Fatal(err)
	}

	// The draft sits at plan; a domain submit must not move it.
	if _, err := c.Advance(ctx, "t-1", StepDomain); err == nil {
		t.Fatal("out-of-order submit accepted")
	}
	d, _, err := c.Resume(ctx, "t-1")
	if err != nil {
		t.Fatal(err)
	}
	if d.Step != StepPlan {
		t.Fatalf("step drifted to %s", d.Step)
	}
}

func TestResume_UnknownTenantIsAnError(t *testing.T) {
	c := newController(t)

	if _, _, err := c.Resume(context.Background(), "ghost"); !errors.Is(err, draft.ErrNotFound) {
		t.Fatalf("err = %v, want draft.ErrNotFound", err)
	}
}

func TestSetPlan_DoesNotAdvance(t *testing.T) {
	c := newController(t)
	ctx := context.Background()

	if _, err := c.Begin(ctx, "t-1", "acme-corp"); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPlan(ctx, "t-1", "tier-pro"); err != nil {
		t.Fatal(err)
	}

	d, meta, err := c.Resume(ctx, "t-1")
	if err != nil {
		t.Fatal(err)
	}
	if d.PlanID != "tier-pro" || d.Step != StepPlan {
		t.Fatalf("draft = %+v", d)
	}
	if meta.Title != "Buy Plan" {
		t.Fatalf("meta = %+v", meta)
	}
}
