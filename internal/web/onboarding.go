// internal/web/onboarding.go
//
// Step submits for plan, branding, template, and domain, plus the
// progress endpoint.
//
// Every handler resolves the draft session by tenant_id first; an
// unknown or expired id is a 404, never a placeholder tenant.

package web

import (
	"errors"
	"net/http"

	"github.com/MS250871/my-saas-demo/internal/branding"
	"github.com/MS250871/my-saas-demo/internal/domain"
	"github.com/MS250871/my-saas-demo/internal/draft"
	"github.com/MS250871/my-saas-demo/internal/plan"
	"github.com/MS250871/my-saas-demo/internal/sortable"
	"github.com/MS250871/my-saas-demo/internal/wizard"
)

// steps handles GET /api/onboarding/steps?tenant_id=.
func (s *Server) steps(w http.ResponseWriter, r *http.Request) {
	tenantID := r.URL.Query().Get("tenant_id")
	if tenantID == "" {
		writeError(w, http.StatusBadRequest, "tenant_id is required")
		return
	}

	d, meta, err := s.wizard.Resume(r.Context(), tenantID)
	if errors.Is(err, draft.ErrNotFound) {
		writeError(w, http.StatusNotFound, "unknown onboarding session")
		return
	}
	if err != nil {
		s.log.Errorw("resume failed", "tenant", tenantID, "err", err)
		writeError(w, http.StatusInternalServerError, "could not resume onboarding")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"draft":    d,
		"current":  meta,
		"progress": wizard.Progress(d.Step),
		"steps":    wizard.StepsMeta,
	})
}

// submitPlan handles POST /api/onboarding/plan.
func (s *Server) submitPlan(w http.ResponseWriter, r *http.Request) {
	var sel plan.Selection
	if !decode(w, r, &sel) {
		return
	}
	if errs := sel.Check(); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}
	if err := s.wizard.SetPlan(r.Context(), sel.TenantID, sel.PlanID); err != nil {
		s.stepError(w, sel.TenantID, "plan", err)
		return
	}
	s.advance(w, r, sel.TenantID, wizard.StepPlan)
}

// submitBranding handles POST /api/onboarding/branding.  The ramps are
// re-derived from their 500 anchors server-side, so a tampered or
// half-edited ramp can never be committed.
func (s *Server) submitBranding(w http.ResponseWriter, r *http.Request) {
	var d branding.Draft
	if !decode(w, r, &d) {
		return
	}

	if d.Primary == nil {
		d.Primary = branding.NewRamp(branding.DefaultPrimaryAnchor)
	}
	if d.Secondary == nil {
		d.Secondary = branding.NewRamp(branding.DefaultSecondaryAnchor)
	}
	d.SetPrimaryAnchor(d.Primary.Anchor())
	d.SetSecondaryAnchor(d.Secondary.Anchor())

	if errs := d.Check(); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}
	if err := s.branding.Save(r.Context(), d); err != nil {
		s.stepError(w, d.TenantID, "branding", err)
		return
	}
	s.advance(w, r, d.TenantID, wizard.StepBranding)
}

type templateSubmit struct {
	TenantID string          `json:"tenant_id"`
	Sections []sortable.Item `json:"sections"`
}

// submitTemplate handles POST /api/onboarding/template.  The payload is
// the editor's full ordered snapshot; it is validated as a whole, never
// merged partially, and persisted as positioned rows.
func (s *Server) submitTemplate(w http.ResponseWriter, r *http.Request) {
	var sub templateSubmit
	if !decode(w, r, &sub) {
		return
	}
	if sub.TenantID == "" {
		writeFieldErrors(w, map[string]string{"tenant_id": "Tenant is required"})
		return
	}
	list, err := sortable.NewList(sub.Sections, sortable.EmptyState{})
	if err != nil {
		writeFieldErrors(w, map[string]string{"sections": err.Error()})
		return
	}
	if err := s.sections.Save(r.Context(), sub.TenantID, list.Snapshot()); err != nil {
		s.stepError(w, sub.TenantID, "template", err)
		return
	}
	s.log.Infow("template sections submitted",
		"tenant", sub.TenantID, "sections", len(sub.Sections))
	s.advance(w, r, sub.TenantID, wizard.StepTemplate)
}

// submitDomain handles POST /api/onboarding/domain.
func (s *Server) submitDomain(w http.ResponseWriter, r *http.Request) {
	var sel domain.Selection
	if !decode(w, r, &sel) {
		return
	}
	if sel.TenantID == "" {
		writeFieldErrors(w, map[string]string{"tenant_id": "Tenant is required"})
		return
	}

	dr, err := s.drafts.Get(r.Context(), sel.TenantID)
	if errors.Is(err, draft.ErrNotFound) {
		writeError(w, http.StatusNotFound, "unknown onboarding session")
		return
	}
	if err != nil {
		s.stepError(w, sel.TenantID, "domain", err)
		return
	}

	if errs := sel.Check(dr.Slug, s.baseDomain); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}
	s.log.Infow("domain selected",
		"tenant", sel.TenantID, "strategy", sel.Strategy, "value", sel.Value)
	s.advance(w, r, sel.TenantID, wizard.StepDomain)
}

// domainOptions handles GET /api/onboarding/domain/options?tenant_id=.
// Each strategy is returned with its derived display value for the
// tenant's slug.
func (s *Server) domainOptions(w http.ResponseWriter, r *http.Request) {
	tenantID := r.URL.Query().Get("tenant_id")
	dr, err := s.drafts.Get(r.Context(), tenantID)
	if errors.Is(err, draft.ErrNotFound) {
		writeError(w, http.StatusNotFound, "unknown onboarding session")
		return
	}
	if err != nil {
		s.stepError(w, tenantID, "domain", err)
		return
	}

	type choice struct {
		domain.Option
		Value string `json:"value"`
	}
	choices := make([]choice, 0, len(domain.Options))
	for _, opt := range domain.Options {
		choices = append(choices, choice{
			Option: opt,
			Value:  domain.Display(opt.Strategy, dr.Slug, s.baseDomain),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"options": choices})
}

// plans handles GET /api/onboarding/plans.
func (s *Server) plans(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tiers": plan.Tiers})
}

// advance moves the draft forward after a successful step submit and
// writes the common success body.
func (s *Server) advance(w http.ResponseWriter, r *http.Request, tenantID, step string) {
	d, err := s.wizard.Advance(r.Context(), tenantID, step)
	if errors.Is(err, draft.ErrNotFound) {
		writeError(w, http.StatusNotFound, "unknown onboarding session")
		return
	}
	if err != nil {
		// Wrong step for the draft's current state.
		writeError(w, http.StatusConflict, "step out of order")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"step":     d.Step,
		"progress": wizard.Progress(d.Step),
	})
}

func (s *Server) stepError(w http.ResponseWriter, tenantID, step string, err error) {
	if errors.Is(err, draft.ErrNotFound) {
		writeError(w, http.StatusNotFound, "unknown onboarding session")
		return
	}
	s.log.Errorw("step submit failed", "tenant", tenantID, "step", step, "err", err)
	writeError(w, http.StatusInternalServerError, "could not save step")
}
