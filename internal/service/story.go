package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"storyloom/internal/analytics"
	"storyloom/internal/config"
	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/repositories"
	"storyloom/internal/domain/services"
	"storyloom/internal/httputil"
)

// storyService implements the StoryService interface
type storyService struct {
	storyRepo repositories.StoryRepository
	logger    *slog.Logger
}

// NewStoryService creates a new story service
func NewStoryService(storyRepo repositories.StoryRepository, logger *slog.Logger) services.StoryService {
	return &storyService{
		storyRepo: storyRepo,
		logger:    logger,
	}
}

// decorate fills in the derived fields a story carries on every read:
// status and progress percentage, both computed from the chapter
// aggregates the repository joined in.
func decorate(story *models.Story) {
	story.Status = analytics.StoryStatus(story.TotalWords, story.Target())
	story.ProgressPercentage = analytics.ComputeProgress(story.TotalWords, story.Target()).Percentage
}

// CreateStory creates a new story
func (s *storyService) CreateStory(ctx context.Context, req *services.CreateStoryRequest) (*models.Story, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Untitled"
	}

	now := time.Now()
	story := &models.Story{
		UserID:      req.UserID,
		Title:       title,
		Description: req.Description,
		Synopsis:    req.Synopsis,
		Genre:       req.Genre,
		TargetWords: req.TargetWords,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	decorate(story)

	s.logger.Info("story created",
		"id", story.ID,
		"title", story.Title,
		"user_id", req.UserID,
	)

	return story, nil
}

// GetStory retrieves a story with derived status and aggregates
func (s *storyService) GetStory(ctx context.Context, id, userID string) (*models.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	decorate(story)

	return story, nil
}

// ListStories retrieves all stories for a user with derived status
func (s *storyService) ListStories(ctx context.Context, userID string) ([]models.Story, error) {
	stories, err := s.storyRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range stories {
		decorate(&stories[i])
	}

	return stories, nil
}

// UpdateStory applies a partial patch to a story
func (s *storyService) UpdateStory(ctx context.Context, id, userID string, req *services.UpdateStoryRequest) (*models.Story, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	story, err := s.storyRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		story.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		story.Description = req.Description
	}
	if req.Synopsis != nil {
		story.Synopsis = req.Synopsis
	}
	if req.Genre != nil {
		story.Genre = req.Genre
	}
	if req.TargetWords.Present {
		story.TargetWords = req.TargetWords.Value
	}
	story.UpdatedAt = time.Now()

	if err := s.storyRepo.Update(ctx, story); err != nil {
		return nil, err
	}
	decorate(story)

	s.logger.Info("story updated",
		"id", story.ID,
		"user_id", userID,
	)

	return story, nil
}

// DeleteStory deletes a story
func (s *storyService) DeleteStory(ctx context.Context, id, userID string) error {
	if err := s.storyRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("story deleted",
		"id", id,
		"user_id", userID,
	)

	return nil
}

func (s *storyService) validateCreateRequest(req *services.CreateStoryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&req.TargetWords, validation.Min(0)),
	)
}

func (s *storyService) validateUpdateRequest(req *services.UpdateStoryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Length(1, config.MaxTitleLength)),
		validation.Field(&req.TargetWords, validation.By(validateOptionalTarget)),
	)
}

// validateOptionalTarget rejects a present, non-null negative target.
func validateOptionalTarget(value interface{}) error {
	opt, ok := value.(httputil.OptionalInt)
	if !ok {
		return fmt.Errorf("target_words must be a number")
	}
	if opt.Present && opt.Value != nil && *opt.Value < 0 {
		return fmt.Errorf("target_words cannot be negative")
	}
	return nil
}
