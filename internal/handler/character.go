package handler

import (
	"log/slog"
	"net/http"

	"storyloom/internal/domain/services"
	"storyloom/internal/httputil"
)

// CharacterHandler handles character HTTP requests
type CharacterHandler struct {
	characterService services.CharacterService
	logger           *slog.Logger
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(characterService services.CharacterService, logger *slog.Logger) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
		logger:           logger,
	}
}

// List returns all of the caller's characters
// GET /api/characters
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	characters, err := h.characterService.ListCharacters(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, characters)
}

// Create creates a new character
// POST /api/characters
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateCharacterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	req.UserID = userID

	character, err := h.characterService.CreateCharacter(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, character)
}

// Get retrieves a character by ID
// GET /api/characters/{id}
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	character, err := h.characterService.GetCharacter(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, character)
}

// Update applies a partial patch to a character
// PUT /api/characters/{id}
func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	var req services.UpdateCharacterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	character, err := h.characterService.UpdateCharacter(r.Context(), id, userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, character)
}

// Delete deletes a character
// DELETE /api/characters/{id}
func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := requirePathID(w, r)
	if !ok {
		return
	}

	if err := h.characterService.DeleteCharacter(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
