package repositories

import (
	"context"

	"storyloom/internal/domain/models"
)

// ObjectRepository defines data access operations for story objects.
// Every read resolves the weak location reference into an embedded
// {id, name} pair; a dangling location_id yields a nil embed.
type ObjectRepository interface {
	// Create inserts an object and re-reads it with the location joined
	Create(ctx context.Context, object *models.Object) error

	GetByID(ctx context.Context, id, userID string) (*models.Object, error)

	// List retrieves all objects for a user with locations joined,
	// newest-created first
	List(ctx context.Context, userID string) ([]models.Object, error)

	// Update persists mutable fields and re-reads the location join
	Update(ctx context.Context, object *models.Object) error

	Delete(ctx context.Context, id, userID string) error
}
