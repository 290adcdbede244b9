// internal/middleware/security.go
//
// Security-header middleware for the onboarding API.
//
// Every response gets:
//
//   • Strict-Transport-Security  –  forces HTTPS (2 years + preload)
//   • Content-Security-Policy   –  deny-all; this service renders no HTML
//   • X-Frame-Options           –  click-jacking defence
//   • X-Content-Type-Options    –  MIME-sniffing defence
//   • Referrer-Policy           –  drops path/query from Referer
//   • Cache-Control (API only)  –  wizard state and staged uploads are
//                                  per-session, never cacheable
//
// Notes
// -----
// • Headers are added *after* next.ServeHTTP so handlers may set
//   Content-Type first; the middleware never overwrites an existing value.
// • If the service runs behind a TLS-terminating proxy, HSTS is still
//   useful because browsers see the tenant's domain as HTTPS.

package middleware

import (
	"net/http"
	"strings"
)

// Security sets security headers for every response.
func Security(next http.Handler) http.Handler {
	const (
		hsts = "max-age=63072000; includeSubDomains; preload"
		csp  = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
		xfo  = "DENY"
		nosn = "nosniff"
		refr = "strict-origin-when-cross-origin"
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		setIfUnset := func(key, val string) {
			if w.Header().Get(key) == "" {
				w.Header().Add(key, val)
			}
		}

		setIfUnset("Strict-Transport-Security", hsts)
		setIfUnset("Content-Security-Policy", csp)
		setIfUnset("X-Frame-Options", xfo)
		setIfUnset("X-Content-Type-Options", nosn)
		setIfUnset("Referrer-Policy", refr)
		if strings.HasPrefix(r.URL.Path, "/api/") {
			setIfUnset("Cache-Control", "no-store")
		}
	})
}
