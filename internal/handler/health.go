package handler

import (
	"net/http"

	"storyloom/internal/httputil"
)

// Health reports liveness
// GET /api/health
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
