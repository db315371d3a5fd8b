package services

import (
	"context"

	"storyloom/internal/domain/models"
	"storyloom/internal/httputil"
)

// ObjectService handles story-object business logic
type ObjectService interface {
	// CreateObject creates an object; location_id is accepted without
	// an existence check (weak reference)
	CreateObject(ctx context.Context, req *CreateObjectRequest) (*models.Object, error)

	// GetObject retrieves an object with its location joined
	GetObject(ctx context.Context, id, userID string) (*models.Object, error)

	// ListObjects retrieves all objects for a user with locations joined
	ListObjects(ctx context.Context, userID string) ([]models.Object, error)

	// UpdateObject applies a partial patch; location_id supports
	// explicit null to detach
	UpdateObject(ctx context.Context, id, userID string, req *UpdateObjectRequest) (*models.Object, error)

	// DeleteObject deletes an object
	DeleteObject(ctx context.Context, id, userID string) error
}

// CreateObjectRequest represents an object creation request
type CreateObjectRequest struct {
	UserID      string  `json:"-"` // Set by handler from auth context
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	Importance  *string `json:"importance,omitempty"`
	LocationID  *string `json:"location_id,omitempty"`
}

// UpdateObjectRequest represents a partial object patch
type UpdateObjectRequest struct {
	Name        *string                 `json:"name,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Type        *string                 `json:"type,omitempty"`
	Importance  *string                 `json:"importance,omitempty"`
	LocationID  httputil.OptionalString `json:"location_id"`
}
