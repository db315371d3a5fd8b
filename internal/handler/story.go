package handler

import (
	"log/slog"
	"net/http"

	"storyloom/internal/domain/services"
	"storyloom/internal/httputil"
)

// StoryHandler handles story HTTP requests
type StoryHandler struct {
	storyService services.StoryService
	logger       *slog.Logger
}

// NewStoryHandler creates a new story handler
func NewStoryHandler(storyService services.StoryService, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
		logger:       logger,
	}
}

// List returns all of the caller's stories, newest-updated first
// GET /api/stories
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	stories, err := h.storyService.ListStories(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stories)
}

// Create creates a new story
// POST /api/stories
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateStoryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	req.UserID = userID

	story, err := h.storyService.CreateStory(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, story)
}

// Get retrieves one story with derived status and aggregates
// GET /api/stories/{id}
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	story, err := h.storyService.GetStory(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, story)
}

// Update applies a partial patch to a story
// PUT /api/stories/{id}
func (h *StoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	var req services.UpdateStoryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	story, err := h.storyService.UpdateStory(r.Context(), id, userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, story)
}

// Delete deletes a story; its chapters survive with story_id cleared
// DELETE /api/stories/{id}
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	if err := h.storyService.DeleteStory(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
