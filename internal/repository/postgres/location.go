package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/repositories"
)

// PostgresLocationRepository implements the LocationRepository interface
type PostgresLocationRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(config *RepositoryConfig) repositories.LocationRepository {
	return &PostgresLocationRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const locationColumns = `id, user_id, name, description, type, atmosphere, important_details, created_at, updated_at`

func scanLocation(row interface{ Scan(...any) error }) (*models.Location, error) {
	var location models.Location
	err := row.Scan(
		&location.ID,
		&location.UserID,
		&location.Name,
		&location.Description,
		&location.Type,
		&location.Atmosphere,
		&location.ImportantDetails,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// Create creates a new location
func (r *PostgresLocationRepository) Create(ctx context.Context, location *models.Location) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, description, type, atmosphere, important_details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, r.tables.Locations)

	err := r.pool.QueryRow(ctx, query,
		location.UserID,
		location.Name,
		location.Description,
		location.Type,
		location.Atmosphere,
		location.ImportantDetails,
		location.CreatedAt,
		location.UpdatedAt,
	).Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create location: %w", err)
	}

	return nil
}

// GetByID retrieves a location by ID
func (r *PostgresLocationRepository) GetByID(ctx context.Context, id, userID string) (*models.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, locationColumns, r.tables.Locations)

	location, err := scanLocation(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("location %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get location: %w", err)
	}

	return location, nil
}

// List retrieves all locations for a user, newest-created first
func (r *PostgresLocationRepository) List(ctx context.Context, userID string) ([]models.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, locationColumns, r.tables.Locations)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, *location)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}

	if locations == nil {
		locations = []models.Location{}
	}

	return locations, nil
}

// Update persists a location's mutable fields and stamps updated_at
func (r *PostgresLocationRepository) Update(ctx context.Context, location *models.Location) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, type = $3, atmosphere = $4,
		    important_details = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`, r.tables.Locations)

	result, err := r.pool.Exec(ctx, query,
		location.Name,
		location.Description,
		location.Type,
		location.Atmosphere,
		location.ImportantDetails,
		location.UpdatedAt,
		location.ID,
		location.UserID,
	)

	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("location %s: %w", location.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a location scoped by (id, user_id). Objects pointing at
// it get their location_id cleared by the store.
func (r *PostgresLocationRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Locations)

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("location %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
