package handler

import (
	"log/slog"
	"net/http"

	"storyloom/internal/domain/services"
	"storyloom/internal/httputil"
)

// ObjectHandler handles story-object HTTP requests
type ObjectHandler struct {
	objectService services.ObjectService
	logger        *slog.Logger
}

// NewObjectHandler creates a new object handler
func NewObjectHandler(objectService services.ObjectService, logger *slog.Logger) *ObjectHandler {
	return &ObjectHandler{
		objectService: objectService,
		logger:        logger,
	}
}

// List returns all of the caller's objects with locations joined
// GET /api/objects
func (h *ObjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	objects, err := h.objectService.ListObjects(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, objects)
}

// Create creates a new object
// POST /api/objects
func (h *ObjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateObjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	req.UserID = userID

	object, err := h.objectService.CreateObject(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, object)
}

// Get retrieves an object by ID with its location joined
// GET /api/objects/{id}
func (h *ObjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	object, err := h.objectService.GetObject(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, object)
}

// Update applies a partial patch; explicit null location_id detaches
// PUT /api/objects/{id}
func (h *ObjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	var req services.UpdateObjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	object, err := h.objectService.UpdateObject(r.Context(), id, userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, object)
}

// Delete deletes an object
// DELETE /api/objects/{id}
func (h *ObjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	if err := h.objectService.DeleteObject(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
