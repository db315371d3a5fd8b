package repositories

import (
	"context"

	"storyloom/internal/domain/models"
)

// StoryRepository defines data access operations for stories.
// Every operation is scoped by the owning-user id.
type StoryRepository interface {
	// Create inserts a story and fills in its generated ID and timestamps
	Create(ctx context.Context, story *models.Story) error

	// GetByID retrieves a story with chapter aggregates (total words,
	// chapter count) joined in
	GetByID(ctx context.Context, id, userID string) (*models.Story, error)

	// List retrieves all stories for a user with chapter aggregates,
	// ordered by updated_at DESC
	List(ctx context.Context, userID string) ([]models.Story, error)

	// Update persists title/description/synopsis/genre/target_words
	// and stamps updated_at
	Update(ctx context.Context, story *models.Story) error

	// Delete removes a story; the store clears story_id on its chapters
	Delete(ctx context.Context, id, userID string) error
}
