package service

import (
	"context"
	"log/slog"
	"time"

	"storyloom/internal/analytics"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/repositories"
	"storyloom/internal/domain/services"
)

// analyticsService fetches chapter snapshots and delegates every
// computation to the analytics package.
type analyticsService struct {
	storyRepo   repositories.StoryRepository
	chapterRepo repositories.ChapterRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(storyRepo repositories.StoryRepository, chapterRepo repositories.ChapterRepository, logger *slog.Logger) services.AnalyticsService {
	return &analyticsService{
		storyRepo:   storyRepo,
		chapterRepo: chapterRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// StoryAnalytics computes writing stats and target progress for one story
func (s *analyticsService) StoryAnalytics(ctx context.Context, storyID, userID string) (*models.StoryAnalytics, error) {
	story, err := s.storyRepo.GetByID(ctx, storyID, userID)
	if err != nil {
		return nil, err
	}

	chapters, err := s.chapterRepo.List(ctx, userID, &storyID)
	if err != nil {
		return nil, err
	}

	stats := analytics.Stats(chapters, s.now())

	return &models.StoryAnalytics{
		StoryID:      story.ID,
		StoryTitle:   story.Title,
		ChapterCount: len(chapters),
		WritingStats: stats,
		Progress:     analytics.ComputeProgress(stats.TotalWords, story.Target()),
	}, nil
}

// Dashboard aggregates stats across all of a user's stories
func (s *analyticsService) Dashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	stories, err := s.storyRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range stories {
		decorate(&stories[i])
	}

	return &models.Dashboard{
		Stories: stories,
		Stats:   analytics.DashboardStats(stories),
	}, nil
}
