package repositories

import (
	"context"

	"storyloom/internal/domain/models"
)

// CharacterRepository defines data access operations for characters.
type CharacterRepository interface {
	Create(ctx context.Context, character *models.Character) error
	GetByID(ctx context.Context, id, userID string) (*models.Character, error)

	// List retrieves all characters for a user, newest-created first
	List(ctx context.Context, userID string) ([]models.Character, error)

	Update(ctx context.Context, character *models.Character) error
	Delete(ctx context.Context, id, userID string) error
}
