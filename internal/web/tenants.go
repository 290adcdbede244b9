// internal/web/tenants.go
//
// Organization step: tenant creation.

package web

import (
	"errors"
	"net/http"

	"github.com/MS250871/my-saas-demo/internal/tenant"
	"github.com/MS250871/my-saas-demo/internal/wizard"
)

// createTenant handles POST /api/tenants/new.  A valid draft mints the
// tenant, opens the onboarding draft session, and hands back the
// next-step URL carrying the new id.
func (s *Server) createTenant(w http.ResponseWriter, r *http.Request) {
	var d tenant.Draft
	if !decode(w, r, &d) {
		return
	}

	ten, err := s.tenants.Create(r.Context(), d)
	var verr *tenant.ValidationError
	if errors.As(err, &verr) {
		writeFieldErrors(w, verr.Fields)
		return
	}
	if err != nil {
		s.log.Errorw("tenant create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "could not create tenant")
		return
	}

	dr, err := s.wizard.Begin(r.Context(), ten.ID, ten.Slug)
	if err != nil {
		s.log.Errorw("onboarding begin failed", "tenant", ten.ID, "err", err)
		writeError(w, http.StatusInternalServerError, "could not start onboarding")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"tenant":   ten,
		"step":     dr.Step,
		"progress": wizard.Progress(dr.Step),
		"next":     "/onboarding/plan?tenant_id=" + ten.ID,
	})
}
