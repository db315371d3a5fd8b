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

// locationService implements the LocationService interface
type locationService struct {
	locationRepo repositories.LocationRepository
	logger       *slog.Logger
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo repositories.LocationRepository, logger *slog.Logger) services.LocationService {
	return &locationService{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// CreateLocation creates a new location
func (s *locationService) CreateLocation(ctx context.Context, req *services.CreateLocationRequest) (*models.Location, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	location := &models.Location{
		UserID:           req.UserID,
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		Type:             req.Type,
		Atmosphere:       req.Atmosphere,
		ImportantDetails: req.ImportantDetails,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}

	s.logger.Info("location created",
		"id", location.ID,
		"name", location.Name,
		"user_id", req.UserID,
	)

	return location, nil
}

// GetLocation retrieves a location by ID
func (s *locationService) GetLocation(ctx context.Context, id, userID string) (*models.Location, error) {
	return s.locationRepo.GetByID(ctx, id, userID)
}

// ListLocations retrieves all locations for a user
func (s *locationService) ListLocations(ctx context.Context, userID string) ([]models.Location, error) {
	return s.locationRepo.List(ctx, userID)
}

// UpdateLocation applies a partial patch to a location
func (s *locationService) UpdateLocation(ctx context.Context, id, userID string, req *services.UpdateLocationRequest) (*models.Location, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	location, err := s.locationRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		location.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		location.Description = req.Description
	}
	if req.Type != nil {
		location.Type = req.Type
	}
	if req.Atmosphere != nil {
		location.Atmosphere = req.Atmosphere
	}
	if req.ImportantDetails != nil {
		location.ImportantDetails = req.ImportantDetails
	}
	location.UpdatedAt = time.Now()

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}

	s.logger.Info("location updated",
		"id", location.ID,
		"user_id", userID,
	)

	return location, nil
}

// DeleteLocation deletes a location
func (s *locationService) DeleteLocation(ctx context.Context, id, userID string) error {
	if err := s.locationRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("location deleted",
		"id", id,
		"user_id", userID,
	)

	return nil
}

func (s *locationService) validateCreateRequest(req *services.CreateLocationRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
	)
}

func (s *locationService) validateUpdateRequest(req *services.UpdateLocationRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Length(1, config.MaxNameLength)),
	)
}
