package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/services"
	"storyloom/internal/httputil"
	"storyloom/internal/utils"
)

// fakeChapterService implements enough of the chapter semantics for the
// HTTP mapping tests: word-count recompute and owner scoping.
type fakeChapterService struct {
	chapters map[string]*models.Chapter
}

func (f *fakeChapterService) CreateChapter(ctx context.Context, req *services.CreateChapterRequest) (*models.Chapter, error) {
	ch := &models.Chapter{
		ID:           "ch-1",
		UserID:       req.UserID,
		StoryID:      req.StoryID,
		Title:        req.Title,
		Content:      req.Content,
		WordCount:    utils.CountWords(req.Content),
		LastModified: time.Now(),
	}
	if ch.Title == "" {
		ch.Title = "Untitled"
	}
	f.chapters[ch.ID] = ch
	return ch, nil
}

func (f *fakeChapterService) GetChapter(ctx context.Context, id, userID string) (*models.Chapter, error) {
	ch, ok := f.chapters[id]
	if !ok || ch.UserID != userID {
		return nil, &domain.NotFoundError{Message: "chapter not found"}
	}
	return ch, nil
}

func (f *fakeChapterService) ListChapters(ctx context.Context, userID string, storyID *string) ([]models.Chapter, error) {
	result := []models.Chapter{}
	for _, ch := range f.chapters {
		if ch.UserID != userID {
			continue
		}
		if storyID != nil && (ch.StoryID == nil || *ch.StoryID != *storyID) {
			continue
		}
		result = append(result, *ch)
	}
	return result, nil
}

func (f *fakeChapterService) UpdateChapter(ctx context.Context, id, userID string, req *services.UpdateChapterRequest) (*models.Chapter, error) {
	ch, err := f.GetChapter(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		ch.Title = *req.Title
	}
	if req.Content != nil {
		ch.Content = *req.Content
		ch.WordCount = utils.CountWords(*req.Content)
	}
	ch.LastModified = time.Now()
	return ch, nil
}

func (f *fakeChapterService) DeleteChapter(ctx context.Context, id, userID string) error {
	if _, err := f.GetChapter(ctx, id, userID); err != nil {
		return err
	}
	delete(f.chapters, id)
	return nil
}

func newChapterTestMux(svc services.ChapterService) http.Handler {
	h := NewChapterHandler(svc, slog.New(slog.DiscardHandler))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/chapters", h.List)
	mux.HandleFunc("POST /api/chapters", h.Create)
	mux.HandleFunc("GET /api/chapters/{id}", h.Get)
	mux.HandleFunc("PUT /api/chapters/{id}", h.Update)
	mux.HandleFunc("DELETE /api/chapters/{id}", h.Delete)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get("X-User-Id"); userID != "" {
			r = httputil.WithUserID(r, userID)
		}
		mux.ServeHTTP(w, r)
	})
}

func TestChapterCreateThenUpdateRecomputesWordCount(t *testing.T) {
	svc := &fakeChapterService{chapters: map[string]*models.Chapter{}}
	mux := newChapterTestMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/chapters", strings.NewReader(`{"content":"one two three"}`))
	req.Header.Set("X-User-Id", "user-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Chapter
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 3, created.WordCount)
	before := created.LastModified

	req = httptest.NewRequest(http.MethodPut, "/api/chapters/"+created.ID, strings.NewReader(`{"content":"one two"}`))
	req.Header.Set("X-User-Id", "user-1")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Chapter
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 2, updated.WordCount)
	assert.False(t, updated.LastModified.Before(before))
}

func TestChapterDeleteReturnsSuccessBody(t *testing.T) {
	svc := &fakeChapterService{chapters: map[string]*models.Chapter{
		"ch-1": {ID: "ch-1", UserID: "user-1"},
	}}
	mux := newChapterTestMux(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/chapters/ch-1", nil)
	req.Header.Set("X-User-Id", "user-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ch-1", resp.ID)
}

func TestChapterListPassesStoryFilter(t *testing.T) {
	storyID := "story-1"
	svc := &fakeChapterService{chapters: map[string]*models.Chapter{
		"ch-1": {ID: "ch-1", UserID: "user-1", StoryID: &storyID},
		"ch-2": {ID: "ch-2", UserID: "user-1"},
	}}
	mux := newChapterTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/chapters?story_id=story-1", nil)
	req.Header.Set("X-User-Id", "user-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var chapters []models.Chapter
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chapters))
	require.Len(t, chapters, 1)
	assert.Equal(t, "ch-1", chapters[0].ID)
}

func TestChapterCrossUserDeleteIsNotFound(t *testing.T) {
	svc := &fakeChapterService{chapters: map[string]*models.Chapter{
		"ch-1": {ID: "ch-1", UserID: "user-a"},
	}}
	mux := newChapterTestMux(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/chapters/ch-1", nil)
	req.Header.Set("X-User-Id", "user-b")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	// The record is still there for its owner.
	_, err := svc.GetChapter(context.Background(), "ch-1", "user-a")
	assert.NoError(t, err)
}
