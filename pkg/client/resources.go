package client

import (
	"context"
	"time"
)

// Wire types mirror the server's JSON. They are defined here rather
// than shared with the server so the package stays importable outside
// this module.

type Story struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Title              string    `json:"title"`
	Description        *string   `json:"description,omitempty"`
	Synopsis           *string   `json:"synopsis,omitempty"`
	Genre              *string   `json:"genre,omitempty"`
	TargetWords        *int      `json:"target_words,omitempty"`
	Status             string    `json:"status"`
	TotalWords         int       `json:"total_words"`
	ChapterCount       int       `json:"chapter_count"`
	ProgressPercentage int       `json:"progress_percentage"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Chapter struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	StoryID      *string   `json:"story_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	WordCount    int       `json:"word_count"`
	LastModified time.Time `json:"last_modified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Character struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Age         *int      `json:"age,omitempty"`
	Appearance  *string   `json:"appearance,omitempty"`
	Personality *string   `json:"personality,omitempty"`
	Background  *string   `json:"background,omitempty"`
	Goals       *string   `json:"goals,omitempty"`
	Conflicts   *string   `json:"conflicts,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Location struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description,omitempty"`
	Type             *string   `json:"type,omitempty"`
	Atmosphere       *string   `json:"atmosphere,omitempty"`
	ImportantDetails *string   `json:"important_details,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type LocationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Object struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Type        *string      `json:"type,omitempty"`
	Importance  *string      `json:"importance,omitempty"`
	LocationID  *string      `json:"location_id"`
	Location    *LocationRef `json:"location"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type WritingStats struct {
	TotalWords         int        `json:"total_words"`
	WordsToday         int        `json:"words_today"`
	WordsThisWeek      int        `json:"words_this_week"`
	WordsThisMonth     int        `json:"words_this_month"`
	AverageWordsPerDay int        `json:"average_words_per_day"`
	WritingStreak      int        `json:"writing_streak"`
	LastWritingDate    *time.Time `json:"last_writing_date"`
}

type Progress struct {
	CurrentWords int  `json:"current_words"`
	TargetWords  int  `json:"target_words"`
	Percentage   int  `json:"percentage"`
	Remaining    int  `json:"remaining"`
	HasTarget    bool `json:"has_target"`
	IsComplete   bool `json:"is_complete"`
}

type StoryAnalytics struct {
	StoryID      string       `json:"story_id"`
	StoryTitle   string       `json:"story_title"`
	ChapterCount int          `json:"chapter_count"`
	WritingStats WritingStats `json:"writing_stats"`
	Progress     Progress     `json:"progress"`
}

type DashboardStats struct {
	TotalStories         int    `json:"total_stories"`
	TotalWords           int    `json:"total_words"`
	TotalChapters        int    `json:"total_chapters"`
	ActiveStories        int    `json:"active_stories"`
	AverageWordsPerStory int    `json:"average_words_per_story"`
	MostActiveStory      *Story `json:"most_active_story"`
}

type Dashboard struct {
	Stories []Story        `json:"stories"`
	Stats   DashboardStats `json:"stats"`
}

// NewStoryStore creates a store over /api/stories.
func NewStoryStore(c *Client) *Store[Story] {
	return NewStore(c, "/api/stories", func(s *Story) string { return s.ID })
}

// NewChapterStore creates a store over /api/chapters.
func NewChapterStore(c *Client) *Store[Chapter] {
	return NewStore(c, "/api/chapters", func(ch *Chapter) string { return ch.ID })
}

// NewCharacterStore creates a store over /api/characters.
func NewCharacterStore(c *Client) *Store[Character] {
	return NewStore(c, "/api/characters", func(ch *Character) string { return ch.ID })
}

// NewLocationStore creates a store over /api/locations.
func NewLocationStore(c *Client) *Store[Location] {
	return NewStore(c, "/api/locations", func(l *Location) string { return l.ID })
}

// NewObjectStore creates a store over /api/objects.
func NewObjectStore(c *Client) *Store[Object] {
	return NewStore(c, "/api/objects", func(o *Object) string { return o.ID })
}

// StoryAnalytics fetches writing stats and progress for one story.
func (c *Client) StoryAnalytics(ctx context.Context, storyID string) (*StoryAnalytics, error) {
	var out StoryAnalytics
	if err := c.Get(ctx, "/api/stories/"+storyID+"/analytics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard fetches the cross-story summary.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var out Dashboard
	if err := c.Get(ctx, "/api/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
