package handler

import (
	"log/slog"
	"net/http"

	"storyloom/internal/domain/services"
	"storyloom/internal/httputil"
)

// AnalyticsHandler serves the derived-metrics endpoints
type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
	logger           *slog.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// StoryAnalytics returns writing stats and target progress for one story
// GET /api/stories/{id}/analytics
func (h *AnalyticsHandler) StoryAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	result, err := h.analyticsService.StoryAnalytics(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// Dashboard returns the cross-story summary for the caller
// GET /api/dashboard
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	dashboard, err := h.analyticsService.Dashboard(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, dashboard)
}
