package models

import (
	"time"
)

// Story statuses derived from word totals. Status is never stored;
// it is computed on read from total words vs. target.
const (
	StoryStatusDraft      = "draft"
	StoryStatusInProgress = "in_progress"
	StoryStatusCompleted  = "completed"
)

type Story struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	Synopsis    *string   `json:"synopsis,omitempty" db:"synopsis"`
	Genre       *string   `json:"genre,omitempty" db:"genre"`
	TargetWords *int      `json:"target_words,omitempty" db:"target_words"`
	Status      string    `json:"status"` // Derived, not stored in DB
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Aggregates over the story's chapters, computed by the repository
	TotalWords         int `json:"total_words"`
	ChapterCount       int `json:"chapter_count"`
	ProgressPercentage int `json:"progress_percentage"`
}

// Target returns the target word count, treating nil as "no target".
func (s *Story) Target() int {
	if s.TargetWords == nil {
		return 0
	}
	return *s.TargetWords
}
