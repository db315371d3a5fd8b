package handler

import (
	"log/slog"
	"net/http"

	"storyloom/internal/domain/services"
	"storyloom/internal/httputil"
)

// ChapterHandler handles chapter HTTP requests
type ChapterHandler struct {
	chapterService services.ChapterService
	logger         *slog.Logger
}

// NewChapterHandler creates a new chapter handler
func NewChapterHandler(chapterService services.ChapterService, logger *slog.Logger) *ChapterHandler {
	return &ChapterHandler{
		chapterService: chapterService,
		logger:         logger,
	}
}

// List returns the caller's chapters, optionally filtered by story
// GET /api/chapters?story_id={id}
func (h *ChapterHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var storyID *string
	if v := r.URL.Query().Get("story_id"); v != "" {
		storyID = &v
	}

	chapters, err := h.chapterService.ListChapters(r.Context(), userID, storyID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chapters)
}

// Create creates a new chapter
// POST /api/chapters
func (h *ChapterHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateChapterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	req.UserID = userID

	chapter, err := h.chapterService.CreateChapter(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, chapter)
}

// Get retrieves a chapter by ID
// GET /api/chapters/{id}
func (h *ChapterHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	chapter, err := h.chapterService.GetChapter(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chapter)
}

// Update applies a partial patch; a content change recomputes word_count
// PUT /api/chapters/{id}
func (h *ChapterHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	var req services.UpdateChapterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	chapter, err := h.chapterService.UpdateChapter(r.Context(), id, userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chapter)
}

// Delete deletes a chapter. The editor UI keys its list updates on the
// returned id, so this responds with a body instead of 204.
// DELETE /api/chapters/{id}
func (h *ChapterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	if err := h.chapterService.DeleteChapter(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"id":      id,
	})
}
