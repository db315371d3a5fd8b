package services

import (
	"context"

	"storyloom/internal/domain/models"
	"storyloom/internal/httputil"
)

// ChapterService handles chapter business logic. Word counts are always
// recomputed from content on write; the client value is ignored.
type ChapterService interface {
	// CreateChapter creates a new chapter, defaulting title to
	// "Untitled" and content to ""
	CreateChapter(ctx context.Context, req *CreateChapterRequest) (*models.Chapter, error)

	// GetChapter retrieves a chapter by ID
	GetChapter(ctx context.Context, id, userID string) (*models.Chapter, error)

	// ListChapters retrieves chapters for a user, optionally filtered
	// by story, newest-created first
	ListChapters(ctx context.Context, userID string, storyID *string) ([]models.Chapter, error)

	// UpdateChapter applies a partial patch; a content change recomputes
	// word_count, and every update stamps last_modified
	UpdateChapter(ctx context.Context, id, userID string, req *UpdateChapterRequest) (*models.Chapter, error)

	// DeleteChapter deletes a chapter
	DeleteChapter(ctx context.Context, id, userID string) error
}

// CreateChapterRequest represents a chapter creation request
type CreateChapterRequest struct {
	UserID  string  `json:"-"` // Set by handler from auth context
	StoryID *string `json:"story_id,omitempty"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
}

// UpdateChapterRequest represents a partial chapter patch.
// story_id supports explicit null to detach the chapter from its story.
type UpdateChapterRequest struct {
	Title   *string                 `json:"title,omitempty"`
	Content *string                 `json:"content,omitempty"`
	StoryID httputil.OptionalString `json:"story_id"`
}
