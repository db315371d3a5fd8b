package services

import (
	"context"

	"storyloom/internal/domain/models"
)

// LocationService handles location business logic
type LocationService interface {
	CreateLocation(ctx context.Context, req *CreateLocationRequest) (*models.Location, error)
	GetLocation(ctx context.Context, id, userID string) (*models.Location, error)
	ListLocations(ctx context.Context, userID string) ([]models.Location, error)
	UpdateLocation(ctx context.Context, id, userID string, req *UpdateLocationRequest) (*models.Location, error)
	DeleteLocation(ctx context.Context, id, userID string) error
}

// CreateLocationRequest represents a location creation request
type CreateLocationRequest struct {
	UserID           string  `json:"-"` // Set by handler from auth context
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	Type             *string `json:"type,omitempty"`
	Atmosphere       *string `json:"atmosphere,omitempty"`
	ImportantDetails *string `json:"important_details,omitempty"`
}

// UpdateLocationRequest represents a partial location patch
type UpdateLocationRequest struct {
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	Type             *string `json:"type,omitempty"`
	Atmosphere       *string `json:"atmosphere,omitempty"`
	ImportantDetails *string `json:"important_details,omitempty"`
}
