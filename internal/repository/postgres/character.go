package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/repositories"
)

// PostgresCharacterRepository implements the CharacterRepository interface
type PostgresCharacterRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCharacterRepository creates a new character repository
func NewCharacterRepository(config *RepositoryConfig) repositories.CharacterRepository {
	return &PostgresCharacterRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const characterColumns = `id, user_id, name, description, age, appearance, personality, background, goals, conflicts, created_at, updated_at`

func scanCharacter(row interface{ Scan(...any) error }) (*models.Character, error) {
	var character models.Character
	err := row.Scan(
		&character.ID,
		&character.UserID,
		&character.Name,
		&character.Description,
		&character.Age,
		&character.Appearance,
		&character.Personality,
		&character.Background,
		&character.Goals,
		&character.Conflicts,
		&character.CreatedAt,
		&character.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &character, nil
}

// Create creates a new character
func (r *PostgresCharacterRepository) Create(ctx context.Context, character *models.Character) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, description, age, appearance, personality, background, goals, conflicts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, r.tables.Characters)

	err := r.pool.QueryRow(ctx, query,
		character.UserID,
		character.Name,
		character.Description,
		character.Age,
		character.Appearance,
		character.Personality,
		character.Background,
		character.Goals,
		character.Conflicts,
		character.CreatedAt,
		character.UpdatedAt,
	).Scan(&character.ID, &character.CreatedAt, &character.UpdatedAt)

	if err != nil {
		if IsPgNotNullError(err) {
			return fmt.Errorf("%w: missing required field", domain.ErrValidation)
		}
		return fmt.Errorf("create character: %w", err)
	}

	return nil
}

// GetByID retrieves a character by ID
func (r *PostgresCharacterRepository) GetByID(ctx context.Context, id, userID string) (*models.Character, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, characterColumns, r.tables.Characters)

	character, err := scanCharacter(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("character %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get character: %w", err)
	}

	return character, nil
}

// List retrieves all characters for a user, newest-created first
func (r *PostgresCharacterRepository) List(ctx context.Context, userID string) ([]models.Character, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, characterColumns, r.tables.Characters)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var characters []models.Character
	for rows.Next() {
		character, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		characters = append(characters, *character)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}

	if characters == nil {
		characters = []models.Character{}
	}

	return characters, nil
}

// Update persists a character's mutable fields and stamps updated_at
func (r *PostgresCharacterRepository) Update(ctx context.Context, character *models.Character) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, age = $3, appearance = $4,
		    personality = $5, background = $6, goals = $7, conflicts = $8,
		    updated_at = $9
		WHERE id = $10 AND user_id = $11
	`, r.tables.Characters)

	result, err := r.pool.Exec(ctx, query,
		character.Name,
		character.Description,
		character.Age,
		character.Appearance,
		character.Personality,
		character.Background,
		character.Goals,
		character.Conflicts,
		character.UpdatedAt,
		character.ID,
		character.UserID,
	)

	if err != nil {
		return fmt.Errorf("update character: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("character %s: %w", character.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a character scoped by (id, user_id)
func (r *PostgresCharacterRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Characters)

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete character: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("character %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
