package middleware

import "net/http"

// NoCache marks every API response as uncacheable. Record payloads are
// per-user and change on every write, so intermediaries must not serve
// them stale.
func NoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
