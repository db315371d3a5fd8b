package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"storyloom/internal/catalog"
	"storyloom/internal/config"
	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/repositories"
	"storyloom/internal/domain/services"
)

// objectService implements the ObjectService interface
type objectService struct {
	objectRepo repositories.ObjectRepository
	registry   *catalog.Registry
	logger     *slog.Logger
}

// NewObjectService creates a new object service
func NewObjectService(objectRepo repositories.ObjectRepository, registry *catalog.Registry, logger *slog.Logger) services.ObjectService {
	return &objectService{
		objectRepo: objectRepo,
		registry:   registry,
		logger:     logger,
	}
}

// CreateObject creates a new object. The location reference is stored
// as-is; no existence check is performed.
func (s *objectService) CreateObject(ctx context.Context, req *services.CreateObjectRequest) (*models.Object, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	object := &models.Object{
		UserID:      req.UserID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        req.Type,
		Importance:  req.Importance,
		LocationID:  req.LocationID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.objectRepo.Create(ctx, object); err != nil {
		return nil, err
	}

	s.logger.Info("object created",
		"id", object.ID,
		"name", object.Name,
		"user_id", req.UserID,
	)

	return object, nil
}

// GetObject retrieves an object by ID with its location joined
func (s *objectService) GetObject(ctx context.Context, id, userID string) (*models.Object, error) {
	return s.objectRepo.GetByID(ctx, id, userID)
}

// ListObjects retrieves all objects for a user with locations joined
func (s *objectService) ListObjects(ctx context.Context, userID string) ([]models.Object, error) {
	return s.objectRepo.List(ctx, userID)
}

// UpdateObject applies a partial patch. An explicit null location_id
// detaches the object from its location.
func (s *objectService) UpdateObject(ctx context.Context, id, userID string, req *services.UpdateObjectRequest) (*models.Object, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	object, err := s.objectRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		object.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		object.Description = req.Description
	}
	if req.Type != nil {
		object.Type = req.Type
	}
	if req.Importance != nil {
		object.Importance = req.Importance
	}
	if req.LocationID.Present {
		object.LocationID = req.LocationID.Value
	}
	object.UpdatedAt = time.Now()

	if err := s.objectRepo.Update(ctx, object); err != nil {
		return nil, err
	}

	s.logger.Info("object updated",
		"id", object.ID,
		"user_id", userID,
	)

	return object, nil
}

// DeleteObject deletes an object
func (s *objectService) DeleteObject(ctx context.Context, id, userID string) error {
	if err := s.objectRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("object deleted",
		"id", id,
		"user_id", userID,
	)

	return nil
}

func (s *objectService) validateCreateRequest(req *services.CreateObjectRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
	); err != nil {
		return err
	}
	return s.validateImportance(req.Importance)
}

func (s *objectService) validateUpdateRequest(req *services.UpdateObjectRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Length(1, config.MaxNameLength)),
	); err != nil {
		return err
	}
	return s.validateImportance(req.Importance)
}

func (s *objectService) validateImportance(importance *string) error {
	if importance == nil || *importance == "" {
		return nil
	}
	if !s.registry.IsValidImportance(*importance) {
		return fmt.Errorf("unknown importance level %q", *importance)
	}
	return nil
}
