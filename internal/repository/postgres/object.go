package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/repositories"
)

// PostgresObjectRepository implements the ObjectRepository interface.
// Reads LEFT JOIN the locations table so every returned object carries
// the {id, name} of its location, or a nil embed when the reference is
// unset or dangling.
type PostgresObjectRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewObjectRepository creates a new object repository
func NewObjectRepository(config *RepositoryConfig) repositories.ObjectRepository {
	return &PostgresObjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// objectColumns is the joined projection shared by all reads.
func (r *PostgresObjectRepository) objectColumns() string {
	return fmt.Sprintf(`
		o.id, o.user_id, o.name, o.description, o.type, o.importance,
		o.location_id, o.created_at, o.updated_at,
		l.id, l.name
		FROM %s o
		LEFT JOIN %s l ON l.id = o.location_id
	`, r.tables.Objects, r.tables.Locations)
}

func scanObject(row interface{ Scan(...any) error }) (*models.Object, error) {
	var object models.Object
	var locID, locName *string
	err := row.Scan(
		&object.ID,
		&object.UserID,
		&object.Name,
		&object.Description,
		&object.Type,
		&object.Importance,
		&object.LocationID,
		&object.CreatedAt,
		&object.UpdatedAt,
		&locID,
		&locName,
	)
	if err != nil {
		return nil, err
	}
	if locID != nil && locName != nil {
		object.Location = &models.LocationRef{ID: *locID, Name: *locName}
	}
	return &object, nil
}

// Create inserts an object and re-reads it with the location joined
func (r *PostgresObjectRepository) Create(ctx context.Context, object *models.Object) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, description, type, importance, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, r.tables.Objects)

	err := r.pool.QueryRow(ctx, query,
		object.UserID,
		object.Name,
		object.Description,
		object.Type,
		object.Importance,
		object.LocationID,
		object.CreatedAt,
		object.UpdatedAt,
	).Scan(&object.ID)

	if err != nil {
		// The location reference is unchecked at write time, so a bad id
		// surfaces here as a constraint violation.
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("create object: location %v does not exist", object.LocationID)
		}
		return fmt.Errorf("create object: %w", err)
	}

	created, err := r.GetByID(ctx, object.ID, object.UserID)
	if err != nil {
		return err
	}
	*object = *created

	return nil
}

// GetByID retrieves an object with its location joined
func (r *PostgresObjectRepository) GetByID(ctx context.Context, id, userID string) (*models.Object, error) {
	query := fmt.Sprintf(`
		SELECT %s
		WHERE o.id = $1 AND o.user_id = $2
	`, r.objectColumns())

	object, err := scanObject(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("object %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get object: %w", err)
	}

	return object, nil
}

// List retrieves all objects for a user with locations joined,
// newest-created first
func (r *PostgresObjectRepository) List(ctx context.Context, userID string) ([]models.Object, error) {
	query := fmt.Sprintf(`
		SELECT %s
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC
	`, r.objectColumns())

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}
	defer rows.Close()

	var objects []models.Object
	for rows.Next() {
		object, err := scanObject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan object: %w", err)
		}
		objects = append(objects, *object)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate objects: %w", err)
	}

	if objects == nil {
		objects = []models.Object{}
	}

	return objects, nil
}

// Update persists an object's mutable fields and re-reads the join
func (r *PostgresObjectRepository) Update(ctx context.Context, object *models.Object) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, type = $3, importance = $4,
		    location_id = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`, r.tables.Objects)

	result, err := r.pool.Exec(ctx, query,
		object.Name,
		object.Description,
		object.Type,
		object.Importance,
		object.LocationID,
		object.UpdatedAt,
		object.ID,
		object.UserID,
	)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("update object: location %v does not exist", object.LocationID)
		}
		return fmt.Errorf("update object: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("object %s: %w", object.ID, domain.ErrNotFound)
	}

	updated, err := r.GetByID(ctx, object.ID, object.UserID)
	if err != nil {
		return err
	}
	*object = *updated

	return nil
}

// Delete removes an object scoped by (id, user_id)
func (r *PostgresObjectRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Objects)

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("object %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
