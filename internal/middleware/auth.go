package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storyloom/internal/auth"
	"storyloom/internal/httputil"
)

// Auth resolves the owning-user id for the request and stores it in the
// request context. A valid bearer token wins; when header auth is
// enabled, a bare X-User-Id header is accepted as a fallback. Requests
// with no resolvable identity pass through with an empty user id, and
// the handlers reject them.
func Auth(verifier auth.JWTVerifier, allowHeaderAuth bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearerToken(r); ok {
				claims, err := verifier.VerifyToken(token)
				if err == nil {
					next.ServeHTTP(w, httputil.WithUserID(r, claims.GetUserID()))
					return
				}
				logger.Debug("bearer token rejected", "path", r.URL.Path)
			}

			if allowHeaderAuth {
				if userID := strings.TrimSpace(r.Header.Get("X-User-Id")); userID != "" {
					next.ServeHTTP(w, httputil.WithUserID(r, userID))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
