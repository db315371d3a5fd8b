package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The chapter aggregates are owner-scoped in SQL: a chapter row pointing
// at someone else's story must not count toward that story's totals, so
// the join condition has to carry the user filter alongside the story id.
func TestStoryProjectionScopesAggregatesToOwner(t *testing.T) {
	repo := &PostgresStoryRepository{tables: NewTableNames("")}

	projection := repo.storyColumns()
	assert.Contains(t, projection, "c.story_id = s.id AND c.user_id = s.user_id")
}

func TestStoryProjectionUsesPrefixedTables(t *testing.T) {
	repo := &PostgresStoryRepository{tables: NewTableNames("test_")}

	projection := repo.storyColumns()
	assert.Contains(t, projection, "FROM test_stories s")
	assert.Contains(t, projection, "LEFT JOIN test_chapters c")
}
