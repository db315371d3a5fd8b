// Package analytics holds the derived-metrics computations: word totals,
// date-bucketed sums, writing streaks, and target progress. Everything
// here is a pure function over an already-fetched chapter snapshot, so
// results are deterministic and idempotent for a given snapshot.
package analytics

import (
	"math"
	"time"

	"storyloom/internal/domain/models"
)

// startOfDay truncates t to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WordsSince sums the word counts of chapters last modified at or after cutoff.
func WordsSince(chapters []models.Chapter, cutoff time.Time) int {
	sum := 0
	for _, ch := range chapters {
		if !ch.LastModified.Before(cutoff) {
			sum += ch.WordCount
		}
	}
	return sum
}

// Streak counts consecutive calendar days with at least one chapter
// modification, scanning backward from today and stopping at the first gap.
// A streak that ended yesterday or earlier counts as 0.
func Streak(chapters []models.Chapter, now time.Time) int {
	days := make(map[time.Time]bool, len(chapters))
	for _, ch := range chapters {
		days[startOfDay(ch.LastModified.In(now.Location()))] = true
	}

	streak := 0
	for day := startOfDay(now); days[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// Stats computes the full writing-stats bundle for a chapter snapshot.
func Stats(chapters []models.Chapter, now time.Time) models.WritingStats {
	today := startOfDay(now)
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, 0, -30)

	total := 0
	var last *time.Time
	for i := range chapters {
		total += chapters[i].WordCount
		if last == nil || chapters[i].LastModified.After(*last) {
			last = &chapters[i].LastModified
		}
	}

	wordsThisMonth := WordsSince(chapters, monthAgo)

	return models.WritingStats{
		TotalWords:         total,
		WordsToday:         WordsSince(chapters, today),
		WordsThisWeek:      WordsSince(chapters, weekAgo),
		WordsThisMonth:     wordsThisMonth,
		AverageWordsPerDay: int(math.Round(float64(wordsThisMonth) / 30)),
		WritingStreak:      Streak(chapters, now),
		LastWritingDate:    last,
	}
}

// ComputeProgress derives target progress from a word total. A target of
// zero (or negative) means "no target": 0%, never a division error.
func ComputeProgress(totalWords, targetWords int) models.Progress {
	if targetWords <= 0 {
		return models.Progress{CurrentWords: totalWords}
	}

	pct := int(math.Round(float64(totalWords) / float64(targetWords) * 100))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	remaining := targetWords - totalWords
	if remaining < 0 {
		remaining = 0
	}

	return models.Progress{
		CurrentWords: totalWords,
		TargetWords:  targetWords,
		Percentage:   pct,
		Remaining:    remaining,
		HasTarget:    true,
		IsComplete:   totalWords >= targetWords,
	}
}

// StoryStatus derives a story's status from its word total and target:
// draft when nothing has been written, completed when the target is met,
// in_progress otherwise.
func StoryStatus(totalWords, targetWords int) string {
	switch {
	case totalWords <= 0:
		return models.StoryStatusDraft
	case targetWords > 0 && totalWords >= targetWords:
		return models.StoryStatusCompleted
	default:
		return models.StoryStatusInProgress
	}
}

// DashboardStats aggregates per-story totals into the dashboard summary.
// Stories must already carry their chapter aggregates.
func DashboardStats(stories []models.Story) models.DashboardStats {
	if len(stories) == 0 {
		return models.DashboardStats{}
	}

	stats := models.DashboardStats{TotalStories: len(stories)}
	var mostActive *models.Story
	for i := range stories {
		s := &stories[i]
		stats.TotalWords += s.TotalWords
		stats.TotalChapters += s.ChapterCount
		if s.TotalWords > 0 {
			stats.ActiveStories++
		}
		if mostActive == nil || s.TotalWords > mostActive.TotalWords {
			mostActive = s
		}
	}
	stats.AverageWordsPerStory = int(math.Round(float64(stats.TotalWords) / float64(len(stories))))
	stats.MostActiveStory = mostActive

	return stats
}
