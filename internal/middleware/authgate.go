// internal/middleware/authgate.go
//
// Route gate for protected paths.
//
// Browser requests without a session are redirected to /login; API
// requests get a 401 JSON body instead, since redirecting an XHR is
// useless.  Authenticated requests continue with the user's email on
// the context for greeting text.

package middleware

import (
	"net/http"
	"strings"

	"github.com/MS250871/my-saas-demo/internal/auth"
	"github.com/MS250871/my-saas-demo/internal/session"
)

// RequireSession wraps next with the login gate.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := session.CurrentEmail(r)
		if !ok {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"login required"}`))
				return
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithEmail(r.Context(), email)))
	})
}
