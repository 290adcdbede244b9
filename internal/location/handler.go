// internal/location/handler.go
//
// HTTP surface for the location hierarchy.
//
// Three read-only search endpoints feed the cascading country/state/
// city pickers.  Responses are plain JSON arrays of {id, name}.

package location

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/MS250871/my-saas-demo/internal/options"
)

// Handler serves /api/locations/*.
type Handler struct {
	search options.Searcher
	log    *zap.SugaredLogger
}

// NewHandler builds a Handler over search.
func NewHandler(search options.Searcher, log *zap.SugaredLogger) *Handler {
	return &Handler{search: search, log: log}
}

// Mount attaches the search routes to r.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/api/locations/countries", h.countries)
	r.Get("/api/locations/states", h.states)
	r.Get("/api/locations/cities", h.cities)
}

func (h *Handler) countries(w http.ResponseWriter, r *http.Request) {
	opts, err := h.search.Countries(r.Context(), r.URL.Query().Get("q"))
	h.respond(w, r, opts, err)
}

func (h *Handler) states(w http.ResponseWriter, r *http.Request) {
	countryID, ok := parseID(r, "country_id")
	if !ok {
		http.Error(w, `{"error":"country_id is required"}`, http.StatusBadRequest)
		return
	}
	opts, err := h.search.States(r.Context(), countryID, r.URL.Query().Get("q"))
	h.respond(w, r, opts, err)
}

func (h *Handler) cities(w http.ResponseWriter, r *http.Request) {
	stateID, ok := parseID(r, "state_id")
	if !ok {
		http.Error(w, `{"error":"state_id is required"}`, http.StatusBadRequest)
		return
	}
	opts, err := h.search.Cities(r.Context(), stateID, r.URL.Query().Get("q"))
	h.respond(w, r, opts, err)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, opts []options.Option, err error) {
	if err != nil {
		h.log.Errorw("location search failed", "path", r.URL.Path, "err", err)
		http.Error(w, `{"error":"lookup failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(opts); err != nil {
		h.log.Errorw("location response encode failed", "err", err)
	}
}

func parseID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
