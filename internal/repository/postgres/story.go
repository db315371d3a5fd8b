package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storyloom/internal/domain"
	"storyloom/internal/domain/models"
	"storyloom/internal/domain/repositories"
)

// PostgresStoryRepository implements the StoryRepository interface
type PostgresStoryRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewStoryRepository creates a new story repository
func NewStoryRepository(config *RepositoryConfig) repositories.StoryRepository {
	return &PostgresStoryRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// storyColumns is the aggregate projection shared by GetByID and List:
// story fields plus chapter count and total words joined in. The join is
// scoped to the story owner's chapters so another user's rows can never
// inflate the aggregates.
func (r *PostgresStoryRepository) storyColumns() string {
	return fmt.Sprintf(`
		s.id, s.user_id, s.title, s.description, s.synopsis, s.genre,
		s.target_words, s.created_at, s.updated_at,
		COUNT(c.id) AS chapter_count,
		COALESCE(SUM(c.word_count), 0) AS total_words
		FROM %s s
		LEFT JOIN %s c ON c.story_id = s.id AND c.user_id = s.user_id
	`, r.tables.Stories, r.tables.Chapters)
}

func scanStory(row interface{ Scan(...any) error }) (*models.Story, error) {
	var story models.Story
	var totalWords int64
	err := row.Scan(
		&story.ID,
		&story.UserID,
		&story.Title,
		&story.Description,
		&story.Synopsis,
		&story.Genre,
		&story.TargetWords,
		&story.CreatedAt,
		&story.UpdatedAt,
		&story.ChapterCount,
		&totalWords,
	)
	if err != nil {
		return nil, err
	}
	story.TotalWords = int(totalWords)
	return &story, nil
}

// Create creates a new story
func (r *PostgresStoryRepository) Create(ctx context.Context, story *models.Story) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, title, description, synopsis, genre, target_words, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, r.tables.Stories)

	err := r.pool.QueryRow(ctx, query,
		story.UserID,
		story.Title,
		story.Description,
		story.Synopsis,
		story.Genre,
		story.TargetWords,
		story.CreatedAt,
		story.UpdatedAt,
	).Scan(&story.ID, &story.CreatedAt, &story.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create story: %w", err)
	}

	return nil
}

// GetByID retrieves a story with chapter aggregates joined in
func (r *PostgresStoryRepository) GetByID(ctx context.Context, id, userID string) (*models.Story, error) {
	query := fmt.Sprintf(`
		SELECT %s
		WHERE s.id = $1 AND s.user_id = $2
		GROUP BY s.id
	`, r.storyColumns())

	story, err := scanStory(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get story: %w", err)
	}

	return story, nil
}

// List retrieves all stories for a user with chapter aggregates,
// ordered by updated_at DESC
func (r *PostgresStoryRepository) List(ctx context.Context, userID string) ([]models.Story, error) {
	query := fmt.Sprintf(`
		SELECT %s
		WHERE s.user_id = $1
		GROUP BY s.id
		ORDER BY s.updated_at DESC
	`, r.storyColumns())

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	var stories []models.Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		stories = append(stories, *story)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stories: %w", err)
	}

	// Return empty slice instead of nil if no stories
	if stories == nil {
		stories = []models.Story{}
	}

	return stories, nil
}

// Update persists a story's mutable fields and stamps updated_at
func (r *PostgresStoryRepository) Update(ctx context.Context, story *models.Story) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2, synopsis = $3, genre = $4,
		    target_words = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`, r.tables.Stories)

	result, err := r.pool.Exec(ctx, query,
		story.Title,
		story.Description,
		story.Synopsis,
		story.Genre,
		story.TargetWords,
		story.UpdatedAt,
		story.ID,
		story.UserID,
	)

	if err != nil {
		return fmt.Errorf("update story: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("story %s: %w", story.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a story scoped by (id, user_id)
func (r *PostgresStoryRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Stories)

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete story: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
