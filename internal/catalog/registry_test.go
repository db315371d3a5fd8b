package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	levels := r.ImportanceLevels()
	require.Len(t, levels, 4)
	assert.Equal(t, "critical", levels[0].Key)

	assert.True(t, r.IsValidImportance("critical"))
	assert.True(t, r.IsValidImportance("decorative"))
	assert.False(t, r.IsValidImportance("legendary"))
	assert.False(t, r.IsValidImportance(""))

	assert.Contains(t, r.Genres(), "fantasy")
}
