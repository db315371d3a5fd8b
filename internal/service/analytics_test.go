package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/services"
)

func TestStoryAnalyticsComputesStatsAndProgress(t *testing.T) {
	storyRepo := newFakeStoryRepo()
	chapterRepo := newFakeChapterRepo()
	svc := &analyticsService{
		storyRepo:   storyRepo,
		chapterRepo: chapterRepo,
		logger:      slog.New(slog.DiscardHandler),
		now:         func() time.Time { return time.Date(2026, 8, 28, 15, 0, 0, 0, time.Local) },
	}

	target := 1000
	story := &models.Story{UserID: "user-1", Title: "Novel", TargetWords: &target}
	require.NoError(t, storyRepo.Create(context.Background(), story))

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	seeds := []struct {
		words    int
		modified time.Time
	}{
		{100, now},                    // today
		{200, now.AddDate(0, 0, -1)},  // yesterday
		{300, now.AddDate(0, 0, -40)}, // outside the month window
	}
	for i, seed := range seeds {
		ch := &models.Chapter{
			UserID:       "user-1",
			StoryID:      &story.ID,
			Title:        "Chapter",
			WordCount:    seed.words,
			LastModified: seed.modified,
		}
		require.NoError(t, chapterRepo.Create(context.Background(), ch), "chapter %d", i)
	}

	result, err := svc.StoryAnalytics(context.Background(), story.ID, "user-1")
	require.NoError(t, err)

	assert.Equal(t, story.ID, result.StoryID)
	assert.Equal(t, "Novel", result.StoryTitle)
	assert.Equal(t, 3, result.ChapterCount)
	assert.Equal(t, 600, result.WritingStats.TotalWords)
	assert.Equal(t, 100, result.WritingStats.WordsToday)
	assert.Equal(t, 300, result.WritingStats.WordsThisWeek)
	assert.Equal(t, 2, result.WritingStats.WritingStreak)

	assert.True(t, result.Progress.HasTarget)
	assert.Equal(t, 60, result.Progress.Percentage)
	assert.Equal(t, 400, result.Progress.Remaining)
	assert.False(t, result.Progress.IsComplete)
}

func TestStoryAnalyticsScopedToOwner(t *testing.T) {
	storyRepo := newFakeStoryRepo()
	svc := NewAnalyticsService(storyRepo, newFakeChapterRepo(), slog.New(slog.DiscardHandler))

	story := &models.Story{UserID: "user-a", Title: "Private"}
	require.NoError(t, storyRepo.Create(context.Background(), story))

	_, err := svc.StoryAnalytics(context.Background(), story.ID, "user-b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboardAggregatesStories(t *testing.T) {
	storyRepo := newFakeStoryRepo()
	svc := NewAnalyticsService(storyRepo, newFakeChapterRepo(), slog.New(slog.DiscardHandler))

	big := &models.Story{UserID: "user-1", Title: "Big"}
	require.NoError(t, storyRepo.Create(context.Background(), big))
	storyRepo.stories[big.ID].TotalWords = 900
	storyRepo.stories[big.ID].ChapterCount = 3

	idle := &models.Story{UserID: "user-1", Title: "Idle"}
	require.NoError(t, storyRepo.Create(context.Background(), idle))

	dashboard, err := svc.Dashboard(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Len(t, dashboard.Stories, 2)
	assert.Equal(t, 2, dashboard.Stats.TotalStories)
	assert.Equal(t, 900, dashboard.Stats.TotalWords)
	assert.Equal(t, 3, dashboard.Stats.TotalChapters)
	assert.Equal(t, 1, dashboard.Stats.ActiveStories)
	assert.Equal(t, 450, dashboard.Stats.AverageWordsPerStory)
	require.NotNil(t, dashboard.Stats.MostActiveStory)
	assert.Equal(t, "Big", dashboard.Stats.MostActiveStory.Title)

	// Derived story fields come decorated.
	for _, s := range dashboard.Stories {
		assert.NotEmpty(t, s.Status)
	}
}

var _ services.AnalyticsService = (*analyticsService)(nil)
