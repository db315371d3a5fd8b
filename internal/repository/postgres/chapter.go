package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/repositories"
)

// PostgresChapterRepository implements the ChapterRepository interface
type PostgresChapterRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewChapterRepository creates a new chapter repository
func NewChapterRepository(config *RepositoryConfig) repositories.ChapterRepository {
	return &PostgresChapterRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const chapterColumns = `id, user_id, story_id, title, content, word_count, last_modified, created_at, updated_at`

func scanChapter(row interface{ Scan(...any) error }) (*models.Chapter, error) {
	var chapter models.Chapter
	err := row.Scan(
		&chapter.ID,
		&chapter.UserID,
		&chapter.StoryID,
		&chapter.Title,
		&chapter.Content,
		&chapter.WordCount,
		&chapter.LastModified,
		&chapter.CreatedAt,
		&chapter.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// Create creates a new chapter
func (r *PostgresChapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, story_id, title, content, word_count, last_modified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, r.tables.Chapters)

	err := r.pool.QueryRow(ctx, query,
		chapter.UserID,
		chapter.StoryID,
		chapter.Title,
		chapter.Content,
		chapter.WordCount,
		chapter.LastModified,
		chapter.CreatedAt,
		chapter.UpdatedAt,
	).Scan(&chapter.ID, &chapter.CreatedAt, &chapter.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create chapter: %w", err)
	}

	return nil
}

// GetByID retrieves a chapter by ID
func (r *PostgresChapterRepository) GetByID(ctx context.Context, id, userID string) (*models.Chapter, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, chapterColumns, r.tables.Chapters)

	chapter, err := scanChapter(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("chapter %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get chapter: %w", err)
	}

	return chapter, nil
}

// List retrieves chapters for a user, newest-created first. A non-nil
// storyID narrows the list to that story's chapters.
func (r *PostgresChapterRepository) List(ctx context.Context, userID string, storyID *string) ([]models.Chapter, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1 AND ($2::uuid IS NULL OR story_id = $2)
		ORDER BY created_at DESC
	`, chapterColumns, r.tables.Chapters)

	rows, err := r.pool.Query(ctx, query, userID, storyID)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	defer rows.Close()

	var chapters []models.Chapter
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chapter: %w", err)
		}
		chapters = append(chapters, *chapter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chapters: %w", err)
	}

	if chapters == nil {
		chapters = []models.Chapter{}
	}

	return chapters, nil
}

// Update persists all mutable chapter fields, including the recomputed
// word_count and the fresh last_modified stamp
func (r *PostgresChapterRepository) Update(ctx context.Context, chapter *models.Chapter) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET story_id = $1, title = $2, content = $3, word_count = $4,
		    last_modified = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`, r.tables.Chapters)

	result, err := r.pool.Exec(ctx, query,
		chapter.StoryID,
		chapter.Title,
		chapter.Content,
		chapter.WordCount,
		chapter.LastModified,
		chapter.UpdatedAt,
		chapter.ID,
		chapter.UserID,
	)

	if err != nil {
		return fmt.Errorf("update chapter: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("chapter %s: %w", chapter.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a chapter scoped by (id, user_id)
func (r *PostgresChapterRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Chapters)

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete chapter: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("chapter %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
