package services

import (
	"context"

	"storyloom/internal/domain/models"
)

// CharacterService handles character business logic
type CharacterService interface {
	CreateCharacter(ctx context.Context, req *CreateCharacterRequest) (*models.Character, error)
	GetCharacter(ctx context.Context, id, userID string) (*models.Character, error)
	ListCharacters(ctx context.Context, userID string) ([]models.Character, error)
	UpdateCharacter(ctx context.Context, id, userID string, req *UpdateCharacterRequest) (*models.Character, error)
	DeleteCharacter(ctx context.Context, id, userID string) error
}

// CreateCharacterRequest represents a character creation request
type CreateCharacterRequest struct {
	UserID      string  `json:"-"` // Set by handler from auth context
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Appearance  *string `json:"appearance,omitempty"`
	Personality *string `json:"personality,omitempty"`
	Background  *string `json:"background,omitempty"`
	Goals       *string `json:"goals,omitempty"`
	Conflicts   *string `json:"conflicts,omitempty"`
}

// UpdateCharacterRequest represents a partial character patch
type UpdateCharacterRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Appearance  *string `json:"appearance,omitempty"`
	Personality *string `json:"personality,omitempty"`
	Background  *string `json:"background,omitempty"`
	Goals       *string `json:"goals,omitempty"`
	Conflicts   *string `json:"conflicts,omitempty"`
}
