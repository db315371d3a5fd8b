package handler

import (
	"net/http"

	"storyloom/internal/catalog"
	"storyloom/internal/httputil"
)

// CatalogHandler serves the shared vocabulary the editor UI renders:
// importance levels and genres. The payload is static per process.
type CatalogHandler struct {
	registry *catalog.Registry
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(registry *catalog.Registry) *CatalogHandler {
	return &CatalogHandler{registry: registry}
}

// Get returns the full catalog
// GET /api/catalog
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"importance_levels": h.registry.ImportanceLevels(),
		"genres":            h.registry.Genres(),
	})
}
