// internal/web/router.go
//
// HTTP wiring for the onboarding service.
//
// Route map
// ---------
//   public:    /healthz, /metrics, /api/locations/*, /login, /logout
//   protected: /api/tenants/*, /api/onboarding/*, /api/uploads/*
//
// The protected group sits behind the session gate; everything passes
// through the security-header middleware and a per-IP rate limit.

package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/MS250871/my-saas-demo/internal/auth"
	"github.com/MS250871/my-saas-demo/internal/branding"
	"github.com/MS250871/my-saas-demo/internal/draft"
	"github.com/MS250871/my-saas-demo/internal/location"
	"github.com/MS250871/my-saas-demo/internal/middleware"
	"github.com/MS250871/my-saas-demo/internal/session"
	"github.com/MS250871/my-saas-demo/internal/sortable"
	"github.com/MS250871/my-saas-demo/internal/tenant"
	"github.com/MS250871/my-saas-demo/internal/upload"
	"github.com/MS250871/my-saas-demo/internal/wizard"
)

// Server aggregates the handlers' collaborators.
type Server struct {
	log        *zap.SugaredLogger
	tenants    *tenant.Service
	tenantRead *tenant.Cache
	wizard     *wizard.Controller
	drafts     draft.Store
	branding   *branding.Repository
	sections   *sortable.Repository
	locations  *location.Handler
	uploads    *upload.Fields
	baseDomain string
}

// Options collects the dependencies for NewServer.
type Options struct {
	Log        *zap.SugaredLogger
	Tenants    *tenant.Service
	TenantRead *tenant.Cache
	Wizard     *wizard.Controller
	Drafts     draft.Store
	Branding   *branding.Repository
	Sections   *sortable.Repository
	Locations  *location.Handler
	Uploads    *upload.Fields
	BaseDomain string
}

// NewServer builds the handler aggregate.
func NewServer(opts Options) *Server {
	return &Server{
		log:        opts.Log,
		tenants:    opts.Tenants,
		tenantRead: opts.TenantRead,
		wizard:     opts.Wizard,
		drafts:     opts.Drafts,
		branding:   opts.Branding,
		sections:   opts.Sections,
		locations:  opts.Locations,
		uploads:    opts.Uploads,
		baseDomain: opts.BaseDomain,
	}
}

// Router assembles the chi mux.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Security)
	r.Use(httprate.LimitByIP(120, time.Minute))

	// Public surface.
	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	s.locations.Mount(r)
	r.Post("/login", s.login)
	r.Post("/logout", s.logout)

	// Protected surface.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireSession)

		pr.Get("/api/me", s.me)
		pr.Post("/api/tenants/new", s.createTenant)
		pr.Get("/api/tenants/{slug}", s.tenantBySlug)

		pr.Get("/api/onboarding/steps", s.steps)
		pr.Get("/api/onboarding/plans", s.plans)
		pr.Post("/api/onboarding/plan", s.submitPlan)
		pr.Post("/api/onboarding/branding", s.submitBranding)
		pr.Post("/api/onboarding/template", s.submitTemplate)
		pr.Get("/api/onboarding/domain/options", s.domainOptions)
		pr.Post("/api/onboarding/domain", s.submitDomain)

		pr.Post("/api/uploads/{field}", s.stageUploads)
		pr.Get("/api/uploads/{field}", s.listUploads)
		pr.Delete("/api/uploads/{field}/{id}", s.removeUpload)
	})

	return r
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// me returns the greeting identity, if any.
func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.Email(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}

// tenantBySlug serves the cached tenant record.
func (s *Server) tenantBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	ten, err := s.tenantRead.Get(r.Context(), slug)
	if err == tenant.ErrNotFound {
		writeError(w, http.StatusNotFound, "unknown tenant")
		return
	}
	if err != nil {
		s.log.Errorw("tenant lookup failed", "slug", slug, "err", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tenant": ten})
}

type loginRequest struct {
	Email string `json:"email"`
}

// login is the session stub's entry point: any non-empty email signs
// in.  Real credential checks belong to the identity provider.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" {
		writeFieldErrors(w, map[string]string{"email": "Email is required"})
		return
	}
	session.LoginUser(w, r, req.Email)
	writeJSON(w, http.StatusOK, map[string]string{"email": req.Email})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	session.LogoutUser(w, r)
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}
