package repositories

import (
	"context"

	"storyloom/internal/domain/models"
)

// ChapterRepository defines data access operations for chapters.
type ChapterRepository interface {
	// Create inserts a chapter and fills in its generated ID and timestamps
	Create(ctx context.Context, chapter *models.Chapter) error

	// GetByID retrieves a chapter by ID
	GetByID(ctx context.Context, id, userID string) (*models.Chapter, error)

	// List retrieves all chapters for a user, newest-created first.
	// A non-nil storyID filters to chapters of that story.
	List(ctx context.Context, userID string, storyID *string) ([]models.Chapter, error)

	// Update persists all mutable fields including the recomputed
	// word_count and last_modified
	Update(ctx context.Context, chapter *models.Chapter) error

	// Delete removes a chapter scoped by (id, user_id)
	Delete(ctx context.Context, id, userID string) error
}
