package models

import (
	"time"
)

// WritingStats is the per-story bundle of derived writing metrics.
// All values are computed from a chapter snapshot; nothing here is stored.
type WritingStats struct {
	TotalWords         int        `json:"total_words"`
	WordsToday         int        `json:"words_today"`
	WordsThisWeek      int        `json:"words_this_week"`
	WordsThisMonth     int        `json:"words_this_month"`
	AverageWordsPerDay int        `json:"average_words_per_day"`
	WritingStreak      int        `json:"writing_streak"`
	LastWritingDate    *time.Time `json:"last_writing_date"`
}

// Progress describes how far a story is toward its target word count.
type Progress struct {
	CurrentWords int  `json:"current_words"`
	TargetWords  int  `json:"target_words"`
	Percentage   int  `json:"percentage"`
	Remaining    int  `json:"remaining"`
	HasTarget    bool `json:"has_target"`
	IsComplete   bool `json:"is_complete"`
}

// StoryAnalytics is the response for GET /api/stories/{id}/analytics.
type StoryAnalytics struct {
	StoryID      string       `json:"story_id"`
	StoryTitle   string       `json:"story_title"`
	ChapterCount int          `json:"chapter_count"`
	WritingStats WritingStats `json:"writing_stats"`
	Progress     Progress     `json:"progress"`
}

// DashboardStats aggregates across all of a user's stories.
type DashboardStats struct {
	TotalStories         int    `json:"total_stories"`
	TotalWords           int    `json:"total_words"`
	TotalChapters        int    `json:"total_chapters"`
	ActiveStories        int    `json:"active_stories"`
	AverageWordsPerStory int    `json:"average_words_per_story"`
	MostActiveStory      *Story `json:"most_active_story"`
}

// Dashboard is the response for GET /api/dashboard.
type Dashboard struct {
	Stories []Story        `json:"stories"`
	Stats   DashboardStats `json:"stats"`
}
