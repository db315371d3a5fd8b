package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Stories    string
	Chapters   string
	Characters string
	Locations  string
	Objects    string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Stories:    fmt.Sprintf("%sstories", prefix),
		Chapters:   fmt.Sprintf("%schapters", prefix),
		Characters: fmt.Sprintf("%scharacters", prefix),
		Locations:  fmt.Sprintf("%slocations", prefix),
		Objects:    fmt.Sprintf("%sobjects", prefix),
	}
}

// CreateConnectionPool creates a new pgx connection pool.
//
// Port 6543 is the Supabase transaction pooler (PgBouncer), which does not
// support prepared statements. When detected, the pool switches to
// QueryExecModeCacheDescribe: extended protocol with cached statement
// descriptions instead of prepared statements. An explicit
// default_query_exec_mode in the connection string takes precedence.
//
// Dynamic table prefixes (dev_, test_, prod_) are interpolated into SQL
// before it reaches the database, so each environment gets its own
// statements; the prefix never rides along as a parameter.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
