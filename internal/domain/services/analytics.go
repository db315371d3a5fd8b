package services

import (
	"context"

	"storyloom/internal/domain/models"
)

// AnalyticsService computes derived writing metrics. The computations
// are pure functions over a chapter snapshot; this service only fetches
// the snapshot and delegates.
type AnalyticsService interface {
	// StoryAnalytics computes writing stats and target progress for one story
	StoryAnalytics(ctx context.Context, storyID, userID string) (*models.StoryAnalytics, error)

	// Dashboard aggregates stats across all of a user's stories
	Dashboard(ctx context.Context, userID string) (*models.Dashboard, error)
}
