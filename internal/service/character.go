package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"storyloom/internal/config"
	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/repositories"
	"storyloom/internal/domain/services"
)

// characterService implements the CharacterService interface
type characterService struct {
	characterRepo repositories.CharacterRepository
	logger        *slog.Logger
}

// NewCharacterService creates a new character service
func NewCharacterService(characterRepo repositories.CharacterRepository, logger *slog.Logger) services.CharacterService {
	return &characterService{
		characterRepo: characterRepo,
		logger:        logger,
	}
}

// CreateCharacter creates a new character
func (s *characterService) CreateCharacter(ctx context.Context, req *services.CreateCharacterRequest) (*models.Character, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	character := &models.Character{
		UserID:      req.UserID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Age:         req.Age,
		Appearance:  req.Appearance,
		Personality: req.Personality,
		Background:  req.Background,
		Goals:       req.Goals,
		Conflicts:   req.Conflicts,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, err
	}

	s.logger.Info("character created",
		"id", character.ID,
		"name", character.Name,
		"user_id", req.UserID,
	)

	return character, nil
}

// GetCharacter retrieves a character by ID
func (s *characterService) GetCharacter(ctx context.Context, id, userID string) (*models.Character, error) {
	return s.characterRepo.GetByID(ctx, id, userID)
}

// ListCharacters retrieves all characters for a user
func (s *characterService) ListCharacters(ctx context.Context, userID string) ([]models.Character, error) {
	return s.characterRepo.List(ctx, userID)
}

// UpdateCharacter applies a partial patch to a character
func (s *characterService) UpdateCharacter(ctx context.Context, id, userID string, req *services.UpdateCharacterRequest) (*models.Character, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	character, err := s.characterRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		character.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		character.Description = req.Description
	}
	if req.Age != nil {
		character.Age = req.Age
	}
	if req.Appearance != nil {
		character.Appearance = req.Appearance
	}
	if req.Personality != nil {
		character.Personality = req.Personality
	}
	if req.Background != nil {
		character.Background = req.Background
	}
	if req.Goals != nil {
		character.Goals = req.Goals
	}
	if req.Conflicts != nil {
		character.Conflicts = req.Conflicts
	}
	character.UpdatedAt = time.Now()

	if err := s.characterRepo.Update(ctx, character); err != nil {
		return nil, err
	}

	s.logger.Info("character updated",
		"id", character.ID,
		"user_id", userID,
	)

	return character, nil
}

// DeleteCharacter deletes a character
func (s *characterService) DeleteCharacter(ctx context.Context, id, userID string) error {
	if err := s.characterRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("character deleted",
		"id", id,
		"user_id", userID,
	)

	return nil
}

func (s *characterService) validateCreateRequest(req *services.CreateCharacterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Age, validation.Min(0), validation.Max(config.MaxCharacterAge)),
	)
}

func (s *characterService) validateUpdateRequest(req *services.UpdateCharacterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Age, validation.Min(0), validation.Max(config.MaxCharacterAge)),
	)
}
