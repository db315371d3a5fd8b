package editor

import (
	"context"

	"storyloom/internal/domain/services"
)

// ChapterSaver adapts the chapter service to the Saver interface,
// binding the session to one owning user. Only content flows through
// auto-save; title changes go through the normal update path.
type ChapterSaver struct {
	Chapters services.ChapterService
	UserID   string
}

func (c *ChapterSaver) SaveContent(ctx context.Context, chapterID, content string) error {
	_, err := c.Chapters.UpdateChapter(ctx, chapterID, c.UserID, &services.UpdateChapterRequest{
		Content: &content,
	})
	return err
}
