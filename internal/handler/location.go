package handler

import (
	"log/slog"
	"net/http"

	"storyloom/internal/domain/services"
	"storyloom/internal/httputil"
)

// LocationHandler handles location HTTP requests
type LocationHandler struct {
	locationService services.LocationService
	logger          *slog.Logger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService services.LocationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		logger:          logger,
	}
}

// List returns all of the caller's locations
// GET /api/locations
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	locations, err := h.locationService.ListLocations(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, locations)
}

// Create creates a new location
// POST /api/locations
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateLocationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	req.UserID = userID

	location, err := h.locationService.CreateLocation(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, location)
}

// Get retrieves a location by ID
// GET /api/locations/{id}
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	location, err := h.locationService.GetLocation(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, location)
}

// Update applies a partial patch to a location
// PUT /api/locations/{id}
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	var req services.UpdateLocationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	location, err := h.locationService.UpdateLocation(r.Context(), id, userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, location)
}

// Delete deletes a location; objects that referenced it keep existing
// with location_id cleared
// DELETE /api/locations/{id}
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	if err := h.locationService.DeleteLocation(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
