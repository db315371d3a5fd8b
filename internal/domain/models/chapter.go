package models

import (
	"time"
)

type Chapter struct {
	ID      string  `json:"id" db:"id"`
	UserID  string  `json:"user_id" db:"user_id"`
	StoryID *string `json:"story_id" db:"story_id"` // NULL = not attached to a story
	Title   string  `json:"title" db:"title"`
	Content string  `json:"content" db:"content"`
	// WordCount is recomputed from Content on every write; the value a
	// client sends is never trusted.
	WordCount    int       `json:"word_count" db:"word_count"`
	LastModified time.Time `json:"last_modified" db:"last_modified"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
