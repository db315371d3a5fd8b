package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"storyloom/internal/config"
	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/repositories"
	"storyloom/internal/domain/services"
	"storyloom/internal/utils"
)

// chapterService implements the ChapterService interface
type chapterService struct {
	chapterRepo repositories.ChapterRepository
	storyRepo   repositories.StoryRepository
	logger      *slog.Logger
}

// NewChapterService creates a new chapter service
func NewChapterService(chapterRepo repositories.ChapterRepository, storyRepo repositories.StoryRepository, logger *slog.Logger) services.ChapterService {
	return &chapterService{
		chapterRepo: chapterRepo,
		storyRepo:   storyRepo,
		logger:      logger,
	}
}

// CreateChapter creates a new chapter. The stored word count comes from
// counting the submitted content, never from the client.
func (s *chapterService) CreateChapter(ctx context.Context, req *services.CreateChapterRequest) (*models.Chapter, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Attaching to a story requires owning it; someone else's story
	// reads as not-found, same as every other cross-user access.
	if req.StoryID != nil {
		if _, err := s.storyRepo.GetByID(ctx, *req.StoryID, req.UserID); err != nil {
			return nil, err
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Untitled"
	}

	now := time.Now()
	chapter := &models.Chapter{
		UserID:       req.UserID,
		StoryID:      req.StoryID,
		Title:        title,
		Content:      req.Content,
		WordCount:    utils.CountWords(req.Content),
		LastModified: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.chapterRepo.Create(ctx, chapter); err != nil {
		return nil, err
	}

	s.logger.Info("chapter created",
		"id", chapter.ID,
		"title", chapter.Title,
		"word_count", chapter.WordCount,
		"user_id", req.UserID,
	)

	return chapter, nil
}

// GetChapter retrieves a chapter by ID
func (s *chapterService) GetChapter(ctx context.Context, id, userID string) (*models.Chapter, error) {
	return s.chapterRepo.GetByID(ctx, id, userID)
}

// ListChapters retrieves chapters for a user, optionally filtered by story.
// The filter value is validated here so a malformed id never reaches the
// uuid cast in SQL.
func (s *chapterService) ListChapters(ctx context.Context, userID string, storyID *string) ([]models.Chapter, error) {
	if storyID != nil {
		if err := validation.Validate(*storyID, is.UUID); err != nil {
			return nil, fmt.Errorf("%w: story_id: %v", domain.ErrValidation, err)
		}
	}
	return s.chapterRepo.List(ctx, userID, storyID)
}

// UpdateChapter applies a partial patch. A content change recomputes the
// word count; every update stamps last_modified. Applying the same patch
// twice yields the same record.
func (s *chapterService) UpdateChapter(ctx context.Context, id, userID string, req *services.UpdateChapterRequest) (*models.Chapter, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	chapter, err := s.chapterRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		chapter.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		chapter.Content = *req.Content
		chapter.WordCount = utils.CountWords(*req.Content)
	}
	if req.StoryID.Present {
		if req.StoryID.Value != nil {
			if err := validation.Validate(*req.StoryID.Value, is.UUID); err != nil {
				return nil, fmt.Errorf("%w: story_id: %v", domain.ErrValidation, err)
			}
			if _, err := s.storyRepo.GetByID(ctx, *req.StoryID.Value, userID); err != nil {
				return nil, err
			}
		}
		chapter.StoryID = req.StoryID.Value
	}
	now := time.Now()
	chapter.LastModified = now
	chapter.UpdatedAt = now

	if err := s.chapterRepo.Update(ctx, chapter); err != nil {
		return nil, err
	}

	s.logger.Info("chapter updated",
		"id", chapter.ID,
		"word_count", chapter.WordCount,
		"user_id", userID,
	)

	return chapter, nil
}

// DeleteChapter deletes a chapter
func (s *chapterService) DeleteChapter(ctx context.Context, id, userID string) error {
	if err := s.chapterRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("chapter deleted",
		"id", id,
		"user_id", userID,
	)

	return nil
}

func (s *chapterService) validateCreateRequest(req *services.CreateChapterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&req.StoryID, is.UUID),
	)
}

func (s *chapterService) validateUpdateRequest(req *services.UpdateChapterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Length(1, config.MaxTitleLength)),
	)
}
