// internal/wizard/wizard.go
//
// Onboarding step controller.
//
// Context
//   One linear machine per onboarding run: organization → plan →
//   branding → template → domain → complete.  A step advances only on
//   its own successful submit, and every transition carries the tenant
//   id forward through the draft store.  Rendering or submitting a
//   later step with an unknown tenant id fails with
//   draft.ErrNotFound — there is no placeholder fallback.

package wizard

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/MS250871/my-saas-demo/internal/draft"
	"github.com/MS250871/my-saas-demo/internal/metrics"
)

// Step names, in order.
const (
	StepOrganization = "organization"
	StepPlan         = "plan"
	StepBranding     = "branding"
	StepTemplate     = "template"
	StepDomain       = "domain"
	StepComplete     = "complete"
)

// Meta describes one step for the progress UI.
type Meta struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

// StepsMeta lists the five visible steps with their fixed progress
// percentages; StepComplete reports 100.
var StepsMeta = []Meta{
	{StepOrganization, "Create Organization", "Please give details about your organization.", 0},
	{StepPlan, "Buy Plan", "Please choose and buy your plan.", 20},
	{StepBranding, "Provide Branding Inputs", "Please provide your branding information.", 40},
	{StepTemplate, "Choose frontend template", "Choose the marketing pages template that best fits your organization.", 60},
	{StepDomain, "Configure Domain", "Configure your whitelabel domain.", 80},
}

// Progress returns the fixed percentage for step.
func Progress(step string) int {
	if step == StepComplete {
		return 100
	}
	for _, m := range StepsMeta {
		if m.Name == step {
			return m.Progress
		}
	}
	return 0
}

// MetaFor returns the display metadata for step.
func MetaFor(step string) (Meta, bool) {
	for _, m := range StepsMeta {
		if m.Name == step {
			return m, true
		}
	}
	if step == StepComplete {
		return Meta{Name: StepComplete, Title: "Done", Progress: 100}, true
	}
	return Meta{}, false
}

func advanceEvent(step string) string { return "submit_" + step }

func newMachine(current string) *fsm.FSM {
	return fsm.NewFSM(
		current,
		fsm.Events{
			{Name: advanceEvent(StepOrganization), Src: []string{StepOrganization}, Dst: StepPlan},
			{Name: advanceEvent(StepPlan), Src: []string{StepPlan}, Dst: StepBranding},
			{Name: advanceEvent(StepBranding), Src: []string{StepBranding}, Dst: StepTemplate},
			{Name: advanceEvent(StepTemplate), Src: []string{StepTemplate}, Dst: StepDomain},
			{Name: advanceEvent(StepDomain), Src: []string{StepDomain}, Dst: StepComplete},
		},
		fsm.Callbacks{},
	)
}

// Controller drives onboarding runs over the draft store.
type Controller struct {
	drafts draft.Store
	log    *zap.SugaredLogger
}

// NewController wires the draft store.
func NewController(drafts draft.Store, log *zap.SugaredLogger) *Controller {
	return &Controller{drafts: drafts, log: log}
}

// Begin starts a run for a freshly created tenant.  The returned draft
// sits at the plan step: the organization submit is what minted the
// tenant.
func (c *Controller) Begin(ctx context.Context, tenantID, slug string) (draft.Draft, error) {
	m := newMachine(StepOrganization)
	if err := m.Event(ctx, advanceEvent(StepOrganization)); err != nil {
		return draft.Draft{}, fmt.Errorf("begin onboarding %s: %w", tenantID, err)
	}
	d := draft.Draft{TenantID: tenantID, Slug: slug, Step: m.Current()}
	if err := c.drafts.Put(ctx, d); err != nil {
		return draft.Draft{}, err
	}
	metrics.StepAdvanceTotal.WithLabelValues(StepOrganization).Inc()
	c.log.Infow("onboarding started", "tenant", tenantID, "slug", slug)
	return d, nil
}

// Resume validates that tenantID has a live draft and returns it along
// with its step metadata.  Unknown ids surface draft.ErrNotFound.
func (c *Controller) Resume(ctx context.Context, tenantID string) (draft.Draft, Meta, error) {
	d, err := c.drafts.Get(ctx, tenantID)
	if err != nil {
		return draft.Draft{}, Meta{}, err
	}
	meta, ok := MetaFor(d.Step)
	if !ok {
		return draft.Draft{}, Meta{}, fmt.Errorf("draft %s holds unknown step %q", tenantID, d.Step)
	}
	if err := c.drafts.Touch(ctx, tenantID); err != nil {
		return draft.Draft{}, Meta{}, err
	}
	return d, meta, nil
}

// Advance moves tenantID's draft out of step after that step's submit
// succeeded.  Submitting the wrong step for the draft's current state
// is rejected.
func (c *Controller) Advance(ctx context.Context, tenantID, step string) (draft.Draft, error) {
	d, err := c.drafts.Get(ctx, tenantID)
	if err != nil {
		return draft.Draft{}, err
	}

	m := newMachine(d.Step)
	if err := m.Event(ctx, advanceEvent(step)); err != nil {
		return draft.Draft{}, fmt.Errorf("advance %s from %s via %s: %w", tenantID, d.Step, step, err)
	}

	d.Step = m.Current()
	if err := c.drafts.Put(ctx, d); err != nil {
		return draft.Draft{}, err
	}
	metrics.StepAdvanceTotal.WithLabelValues(step).Inc()
	c.log.Infow("onboarding advanced", "tenant", tenantID, "from", step, "to", d.Step)
	return d, nil
}

// SetPlan records the chosen plan on the draft without advancing it.
func (c *Controller) SetPlan(ctx context.Context, tenantID, planID string) error {
	d, err := c.drafts.Get(ctx, tenantID)
	if err != nil {
		return err
	}
	d.PlanID = planID
	return c.drafts.Put(ctx, d)
}
