package services

import (
	"context"

	"storyloom/internal/domain/models"
	"storyloom/internal/httputil"
)

// StoryService handles story business logic
type StoryService interface {
	// CreateStory creates a new story
	CreateStory(ctx context.Context, req *CreateStoryRequest) (*models.Story, error)

	// GetStory retrieves a story with derived status and aggregates
	GetStory(ctx context.Context, id, userID string) (*models.Story, error)

	// ListStories retrieves all stories for a user with derived status
	ListStories(ctx context.Context, userID string) ([]models.Story, error)

	// UpdateStory applies a partial patch to a story
	UpdateStory(ctx context.Context, id, userID string, req *UpdateStoryRequest) (*models.Story, error)

	// DeleteStory deletes a story
	DeleteStory(ctx context.Context, id, userID string) error
}

// CreateStoryRequest represents a story creation request
type CreateStoryRequest struct {
	UserID      string  `json:"-"` // Set by handler from auth context
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Synopsis    *string `json:"synopsis,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	TargetWords *int    `json:"target_words,omitempty"`
}

// UpdateStoryRequest represents a partial story patch.
// Absent fields are left unchanged; target_words supports explicit null
// to clear the target.
type UpdateStoryRequest struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Synopsis    *string              `json:"synopsis,omitempty"`
	Genre       *string              `json:"genre,omitempty"`
	TargetWords httputil.OptionalInt `json:"target_words"`
}
