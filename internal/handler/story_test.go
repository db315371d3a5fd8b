package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/services"
	"storyloom/internal/httputil"
)

// fakeStoryService returns canned results; handler tests only exercise
// the HTTP mapping.
type fakeStoryService struct {
	stories map[string]*models.Story
}

func (f *fakeStoryService) CreateStory(ctx context.Context, req *services.CreateStoryRequest) (*models.Story, error) {
	if req.UserID == "" {
		return nil, domain.ErrMissingIdentity
	}
	title := req.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}
	return &models.Story{ID: "st-1", UserID: req.UserID, Title: title, Status: models.StoryStatusDraft}, nil
}

func (f *fakeStoryService) GetStory(ctx context.Context, id, userID string) (*models.Story, error) {
	st, ok := f.stories[id]
	if !ok || st.UserID != userID {
		return nil, &domain.NotFoundError{Message: "story not found"}
	}
	return st, nil
}

func (f *fakeStoryService) ListStories(ctx context.Context, userID string) ([]models.Story, error) {
	result := []models.Story{}
	for _, st := range f.stories {
		if st.UserID == userID {
			result = append(result, *st)
		}
	}
	return result, nil
}

func (f *fakeStoryService) UpdateStory(ctx context.Context, id, userID string, req *services.UpdateStoryRequest) (*models.Story, error) {
	return f.GetStory(ctx, id, userID)
}

func (f *fakeStoryService) DeleteStory(ctx context.Context, id, userID string) error {
	_, err := f.GetStory(ctx, id, userID)
	return err
}

// newTestMux registers the story routes behind a header-identity shim
// standing in for the auth middleware.
func newStoryTestMux(svc services.StoryService) http.Handler {
	h := NewStoryHandler(svc, slog.New(slog.DiscardHandler))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stories", h.List)
	mux.HandleFunc("POST /api/stories", h.Create)
	mux.HandleFunc("GET /api/stories/{id}", h.Get)
	mux.HandleFunc("PUT /api/stories/{id}", h.Update)
	mux.HandleFunc("DELETE /api/stories/{id}", h.Delete)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get("X-User-Id"); userID != "" {
			r = httputil.WithUserID(r, userID)
		}
		mux.ServeHTTP(w, r)
	})
}

func TestStoryRoutesRequireIdentity(t *testing.T) {
	mux := newStoryTestMux(&fakeStoryService{stories: map[string]*models.Story{}})

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/stories"},
		{http.MethodPost, "/api/stories"},
		{http.MethodGet, "/api/stories/st-1"},
		{http.MethodDelete, "/api/stories/st-1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s %s", tc.method, tc.path)

		var resp httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "User ID is required", resp.Message)
	}
}

func TestStoryGetScopedToOwner(t *testing.T) {
	svc := &fakeStoryService{stories: map[string]*models.Story{
		"st-1": {ID: "st-1", UserID: "user-a", Title: "Private"},
	}}
	mux := newStoryTestMux(svc)

	// The owner sees the story.
	req := httptest.NewRequest(http.MethodGet, "/api/stories/st-1", nil)
	req.Header.Set("X-User-Id", "user-a")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Another identity reads it as not-found, never forbidden.
	req = httptest.NewRequest(http.MethodGet, "/api/stories/st-1", nil)
	req.Header.Set("X-User-Id", "user-b")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Record not found", resp.Message)
}

func TestStoryCreateReturns201(t *testing.T) {
	mux := newStoryTestMux(&fakeStoryService{stories: map[string]*models.Story{}})

	req := httptest.NewRequest(http.MethodPost, "/api/stories", strings.NewReader(`{"title":""}`))
	req.Header.Set("X-User-Id", "user-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var story models.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &story))
	assert.Equal(t, "Untitled", story.Title)
	assert.Equal(t, models.StoryStatusDraft, story.Status)
}

func TestStoryCreateRejectsMalformedJSON(t *testing.T) {
	mux := newStoryTestMux(&fakeStoryService{stories: map[string]*models.Story{}})

	req := httptest.NewRequest(http.MethodPost, "/api/stories", strings.NewReader("{not json"))
	req.Header.Set("X-User-Id", "user-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
