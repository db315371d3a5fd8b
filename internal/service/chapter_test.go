package service

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/services"
	"storyloom/internal/httputil"
)

// fakeChapterRepo is an in-memory ChapterRepository for service tests.
type fakeChapterRepo struct {
	chapters map[string]*models.Chapter
	nextID   int
}

func newFakeChapterRepo() *fakeChapterRepo {
	return &fakeChapterRepo{chapters: make(map[string]*models.Chapter)}
}

func (r *fakeChapterRepo) Create(ctx context.Context, chapter *models.Chapter) error {
	r.nextID++
	chapter.ID = fmt.Sprintf("ch-%d", r.nextID)
	stored := *chapter
	r.chapters[chapter.ID] = &stored
	return nil
}

func (r *fakeChapterRepo) GetByID(ctx context.Context, id, userID string) (*models.Chapter, error) {
	ch, ok := r.chapters[id]
	if !ok || ch.UserID != userID {
		return nil, &domain.NotFoundError{Message: "chapter not found"}
	}
	out := *ch
	return &out, nil
}

func (r *fakeChapterRepo) List(ctx context.Context, userID string, storyID *string) ([]models.Chapter, error) {
	result := []models.Chapter{}
	for _, ch := range r.chapters {
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

func (r *fakeChapterRepo) Update(ctx context.Context, chapter *models.Chapter) error {
	existing, ok := r.chapters[chapter.ID]
	if !ok || existing.UserID != chapter.UserID {
		return &domain.NotFoundError{Message: "chapter not found"}
	}
	stored := *chapter
	r.chapters[chapter.ID] = &stored
	return nil
}

func (r *fakeChapterRepo) Delete(ctx context.Context, id, userID string) error {
	existing, ok := r.chapters[id]
	if !ok || existing.UserID != userID {
		return &domain.NotFoundError{Message: "chapter not found"}
	}
	delete(r.chapters, id)
	return nil
}

func newTestChapterService(repo *fakeChapterRepo, stories *fakeStoryRepo) services.ChapterService {
	return NewChapterService(repo, stories, slog.New(slog.DiscardHandler))
}

// seedStory creates a story owned by userID and returns its id.
func seedStory(t *testing.T, stories *fakeStoryRepo, userID string) string {
	t.Helper()
	story := &models.Story{UserID: userID, Title: "Host"}
	require.NoError(t, stories.Create(context.Background(), story))
	return story.ID
}

func TestCreateChapterComputesWordCount(t *testing.T) {
	svc := newTestChapterService(newFakeChapterRepo(), newFakeStoryRepo())

	chapter, err := svc.CreateChapter(context.Background(), &services.CreateChapterRequest{
		UserID:  "user-1",
		Content: "one two three",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, chapter.WordCount)
	assert.Equal(t, "Untitled", chapter.Title)
	assert.False(t, chapter.LastModified.IsZero())
}

func TestUpdateChapterRecomputesWordCountAndStampsLastModified(t *testing.T) {
	repo := newFakeChapterRepo()
	svc := newTestChapterService(repo, newFakeStoryRepo())

	chapter, err := svc.CreateChapter(context.Background(), &services.CreateChapterRequest{
		UserID:  "user-1",
		Title:   "Chapter One",
		Content: "one two three",
	})
	require.NoError(t, err)
	before := chapter.LastModified

	time.Sleep(time.Millisecond)
	content := "one two"
	updated, err := svc.UpdateChapter(context.Background(), chapter.ID, "user-1", &services.UpdateChapterRequest{
		Content: &content,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.WordCount)
	assert.True(t, updated.LastModified.After(before))
	assert.Equal(t, "Chapter One", updated.Title)
}

func TestUpdateChapterIdempotentPatch(t *testing.T) {
	repo := newFakeChapterRepo()
	svc := newTestChapterService(repo, newFakeStoryRepo())

	chapter, err := svc.CreateChapter(context.Background(), &services.CreateChapterRequest{
		UserID:  "user-1",
		Content: "draft words here",
	})
	require.NoError(t, err)

	content := "final words"
	patch := &services.UpdateChapterRequest{Content: &content}

	first, err := svc.UpdateChapter(context.Background(), chapter.ID, "user-1", patch)
	require.NoError(t, err)
	second, err := svc.UpdateChapter(context.Background(), chapter.ID, "user-1", patch)
	require.NoError(t, err)

	assert.Equal(t, first.WordCount, second.WordCount)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Title, second.Title)
}

func TestUpdateChapterDetachesStory(t *testing.T) {
	repo := newFakeChapterRepo()
	stories := newFakeStoryRepo()
	svc := newTestChapterService(repo, stories)

	storyID := seedStory(t, stories, "user-1")
	chapter, err := svc.CreateChapter(context.Background(), &services.CreateChapterRequest{
		UserID:  "user-1",
		StoryID: &storyID,
		Content: "words",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateChapter(context.Background(), chapter.ID, "user-1", &services.UpdateChapterRequest{
		StoryID: httputil.OptionalString{Present: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.StoryID)
}

func TestChapterCrossUserAccessReadsAsNotFound(t *testing.T) {
	repo := newFakeChapterRepo()
	svc := newTestChapterService(repo, newFakeStoryRepo())

	chapter, err := svc.CreateChapter(context.Background(), &services.CreateChapterRequest{
		UserID:  "user-a",
		Content: "private words",
	})
	require.NoError(t, err)

	_, err = svc.GetChapter(context.Background(), chapter.ID, "user-b")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	title := "hijack"
	_, err = svc.UpdateChapter(context.Background(), chapter.ID, "user-b", &services.UpdateChapterRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.DeleteChapter(context.Background(), chapter.ID, "user-b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListChaptersFiltersByStory(t *testing.T) {
	repo := newFakeChapterRepo()
	stories := newFakeStoryRepo()
	svc := newTestChapterService(repo, stories)

	storyID := seedStory(t, stories, "user-1")
	_, err := svc.CreateChapter(context.Background(), &services.CreateChapterRequest{
		UserID: "user-1", StoryID: &storyID, Content: "in story",
	})
	require.NoError(t, err)
	_, err = svc.CreateChapter(context.Background(), &services.CreateChapterRequest{
		UserID: "user-1", Content: "loose scene",
	})
	require.NoError(t, err)

	all, err := svc.ListChapters(context.Background(), "user-1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListChapters(context.Background(), "user-1", &storyID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "in story", filtered[0].Content)
}

func TestCreateChapterRejectsForeignStory(t *testing.T) {
	repo := newFakeChapterRepo()
	stories := newFakeStoryRepo()
	svc := newTestChapterService(repo, stories)

	foreignStory := seedStory(t, stories, "user-a")
	_, err := svc.CreateChapter(context.Background(), &services.CreateChapterRequest{
		UserID:  "user-b",
		StoryID: &foreignStory,
		Content: "squatting words",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.chapters)
}

func TestUpdateChapterRejectsForeignStoryAttach(t *testing.T) {
	repo := newFakeChapterRepo()
	stories := newFakeStoryRepo()
	svc := newTestChapterService(repo, stories)

	chapter, err := svc.CreateChapter(context.Background(), &services.CreateChapterRequest{
		UserID:  "user-b",
		Content: "loose scene",
	})
	require.NoError(t, err)

	foreignStory := seedStory(t, stories, "user-a")
	_, err = svc.UpdateChapter(context.Background(), chapter.ID, "user-b", &services.UpdateChapterRequest{
		StoryID: httputil.OptionalString{Present: true, Value: &foreignStory},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The chapter stays unattached.
	got, err := svc.GetChapter(context.Background(), chapter.ID, "user-b")
	require.NoError(t, err)
	assert.Nil(t, got.StoryID)
}

func TestChapterStoryIDMustBeUUID(t *testing.T) {
	svc := newTestChapterService(newFakeChapterRepo(), newFakeStoryRepo())

	malformed := "not-a-uuid"

	_, err := svc.ListChapters(context.Background(), "user-1", &malformed)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateChapter(context.Background(), &services.CreateChapterRequest{
		UserID:  "user-1",
		StoryID: &malformed,
		Content: "words",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
