package repositories

import (
	"context"

	"storyloom/internal/domain/models"
)

// LocationRepository defines data access operations for locations.
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id, userID string) (*models.Location, error)

	// List retrieves all locations for a user, newest-created first
	List(ctx context.Context, userID string) ([]models.Location, error)

	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id, userID string) error
}
